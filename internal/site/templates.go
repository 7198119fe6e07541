package site

// pageTemplate is the html/template for each documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BaseURL}}/style.css">
</head>
<body{{if .SDK}} data-sdk="{{.SDK}}"{{end}}>
  <aside class="sidebar{{if .Sidebar.Collapsed}} collapsed{{end}}{{if .Sidebar.Open}} open{{end}}" id="sidebar">
    <div class="sidebar-header">
      <a class="site-title" href="{{.BaseURL}}/">{{.SiteTitle}}</a>
      <input type="search" id="search-input" placeholder="Search docs..." autocomplete="off">
      <ul id="search-results" class="search-results"></ul>
    </div>
    {{.SidebarHTML}}
  </aside>
  <main class="content">
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
  <script>
  (function () {
    var input = document.getElementById("search-input");
    var list = document.getElementById("search-results");
    var index = null;
    input.addEventListener("input", function () {
      var q = input.value.trim().toLowerCase();
      if (!q) { list.innerHTML = ""; return; }
      var run = function () {
        list.innerHTML = "";
        index.filter(function (e) {
          return e.title.toLowerCase().indexOf(q) >= 0 || e.content.toLowerCase().indexOf(q) >= 0;
        }).slice(0, 10).forEach(function (e) {
          var li = document.createElement("li");
          var a = document.createElement("a");
          a.href = "{{.BaseURL}}" + e.path;
          a.textContent = e.title;
          li.appendChild(a);
          list.appendChild(li);
        });
      };
      if (index) { run(); return; }
      fetch("{{.BaseURL}}/search-index.json").then(function (r) { return r.json(); }).then(function (data) {
        index = data || [];
        run();
      });
    });
    document.querySelectorAll(".sidebar .dir > .dir-toggle").forEach(function (el) {
      el.addEventListener("click", function () { el.parentElement.classList.toggle("expanded"); });
    });
  })();
  </script>
  {{- if .LiveReload}}
  <script>
  (function () {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "{{.BaseURL}}/ws/reload");
    ws.onmessage = function () { location.reload(); };
  })();
  </script>
  {{- end}}
</body>
</html>`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f6f7f9;
  --text: #1f2328;
  --text-muted: #6e7781;
  --border: #d8dee4;
  --accent: #0969da;
  --accent-light: #ddf4ff;
  --sidebar-width: 280px;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
}
.sidebar {
  width: var(--sidebar-width);
  min-height: 100vh;
  padding: 16px;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  font-size: 14px;
}
.sidebar.collapsed { width: 56px; overflow: hidden; }
.sidebar ul { list-style: none; margin: 0; padding-left: 12px; }
.sidebar > ul, .sidebar-body > ul { padding-left: 0; }
.sidebar a { color: var(--text); text-decoration: none; display: block; padding: 4px 8px; border-radius: 6px; }
.sidebar a:hover { background: var(--accent-light); }
.sidebar a.active, .sidebar .entry.active > a, .sidebar .tab.active > a {
  color: var(--accent);
  background: var(--accent-light);
  font-weight: 600;
}
.site-title { font-weight: 700; font-size: 16px; }
#search-input { width: 100%; margin: 8px 0; padding: 6px 8px; border: 1px solid var(--border); border-radius: 6px; }
.search-results { padding-left: 0; }
.sidebar-tabs { margin-bottom: 12px; }
.tab-description { display: block; color: var(--text-muted); font-size: 12px; font-weight: 400; }
.dir > ul { display: none; }
.dir.expanded > ul { display: block; }
.dir-toggle { display: block; padding: 4px 8px; cursor: pointer; }
.dir-toggle::before { content: "\25B8"; display: inline-block; width: 1em; }
.dir.expanded > .dir-toggle::before { content: "\25BE"; }
.separator { color: var(--text-muted); font-size: 12px; text-transform: uppercase; padding: 4px 8px; }
.separator.spaced { margin-top: 16px; }
.sidebar-divider { border: 0; border-top: 1px solid var(--border); margin: 12px 0; }
.icon { display: inline-block; width: 1em; margin-right: 6px; }
.content { flex: 1; padding: 32px 48px; max-width: 900px; line-height: 1.6; }
.content pre { padding: 12px; border-radius: 6px; overflow-x: auto; background: #f6f8fa; }
.content code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 90%; }
.content table { border-collapse: collapse; }
.content th, .content td { border: 1px solid var(--border); padding: 6px 12px; }
`
