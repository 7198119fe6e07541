package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ternsecure/docsite/internal/progress"
	"github.com/ternsecure/docsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static documentation site",
	Long: `Renders every markdown page under the content directory into
<output>/<url>/index.html, each with the sidebar for its own URL, plus
style.css and search-index.json. Navigation entries without a page and
pages missing from the navigation are reported as warnings.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("content-dir", "", "override the markdown content directory")
	buildCmd.Flags().String("output-dir", "", "override the output directory")
	buildCmd.Flags().Bool("strict", false, "fail when the navigation and content disagree")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "path", cfgFile, "content", cfg.ContentDir, "output", cfg.OutputDir)

	start := time.Now()
	gen := site.NewGenerator(cfg)
	if !verbose {
		gen.Reporter = progress.NewReporter()
	}
	result, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	elapsed(logger, start, "site built", "pages", len(result.Pages), "output", cfg.OutputDir)

	for _, issue := range result.Issues {
		logger.Warn(styleWarning.Render(string(issue.Kind)), "url", issue.URL, "detail", issue.Detail)
	}
	strict, _ := cmd.Flags().GetBool("strict")
	if strict && len(result.Issues) > 0 {
		return fmt.Errorf("%d navigation issues", len(result.Issues))
	}

	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(fmt.Sprintf("Static site generated: %s (%d pages)", cfg.OutputDir, len(result.Pages))))
	return nil
}
