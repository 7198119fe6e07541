package navigation

import "strings"

// ResolveURL substitutes every SDK placeholder in template with sdk.
// Templates without a placeholder are returned unchanged. The result never
// contains a placeholder, so resolving it again is a no-op.
//
// Substitution repeats until no placeholder remains, so templates such as
// "${${sdk}dk}" resolve fully. An sdk containing '$' can form new tokens
// with the surrounding text; it is substituted once and any token it forms
// is removed. Config validation rejects such identifiers.
func ResolveURL(template, sdk string) string {
	if !strings.Contains(sdk, "$") {
		for strings.Contains(template, SDKPlaceholder) {
			template = strings.ReplaceAll(template, SDKPlaceholder, sdk)
		}
		return template
	}
	template = strings.ReplaceAll(template, SDKPlaceholder, sdk)
	for strings.Contains(template, SDKPlaceholder) {
		template = strings.ReplaceAll(template, SDKPlaceholder, "")
	}
	return template
}

// resolveOrSentinel resolves template, or returns NoDestination when it is empty.
func resolveOrSentinel(template, sdk string) string {
	if template == "" {
		return NoDestination
	}
	return ResolveURL(template, sdk)
}
