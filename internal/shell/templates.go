package shell

// pageTemplate is the Go html/template for the viewer shell. The sidebar is
// pre-rendered for the home state; the client script takes over from the
// address fragment once loaded.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/app.css">
  <link rel="stylesheet" href="/assets/chroma-light.css" id="chroma-light"{{if eq .Theme "dark"}} disabled{{end}}>
  <link rel="stylesheet" href="/assets/chroma-dark.css" id="chroma-dark"{{if eq .Theme "light"}} disabled{{end}}>
  <script>window.DOCVIEW_BREAKPOINT = {{.Breakpoint}};</script>
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.Title}}</h2>
      <input type="text" id="filter-input" placeholder="Filter..." autocomplete="off">
    </div>
    <div class="sidebar-nav" id="sidebar-nav">
      {{.NavHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <article class="page-content" id="page-content">
      <div class="loading" id="loading">Loading…</div>
    </article>
  </main>
  <script src="/assets/app.js"></script>
</body>
</html>`

// cssContent is the viewer stylesheet.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --mark-bg: #fff3bf;
  --sidebar-width: 280px;
  --content-max-width: 860px;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --code-bg: #1f2030;
  --mark-bg: #5c5320;
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

html { font-size: 16px; scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  display: flex;
  min-height: 100vh;
}

/* ============ Sidebar ============ */
.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0; bottom: 0; left: 0;
  overflow-y: auto;
  z-index: 20;
  transition: transform 0.2s ease;
}

.sidebar-header { padding: 1rem; border-bottom: 1px solid var(--border); }
.project-title { font-size: 1.1rem; margin-bottom: 0.75rem; }

#filter-input {
  width: 100%;
  padding: 0.4rem 0.6rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}

.sidebar-nav { padding: 0.5rem 0; }
.sidebar-nav ul { list-style: none; }
.sidebar-nav li a {
  display: block;
  padding: 0.35rem 1rem;
  color: var(--text);
  text-decoration: none;
  font-size: 0.9rem;
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
}
.sidebar-nav li a:hover { background: var(--accent-light); }
.sidebar-nav li a.active {
  background: var(--accent-light);
  color: var(--accent);
  font-weight: 600;
  border-left: 3px solid var(--accent);
}
.nav-section-title {
  padding: 0.6rem 1rem 0.2rem;
  font-size: 0.75rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.04em;
  color: var(--text-muted);
}
.nav-placeholder { padding: 0.35rem 1rem; color: var(--text-muted); font-style: italic; }

.sidebar-overlay {
  display: none;
  position: fixed; inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 15;
}
body.sidebar-open .sidebar-overlay { display: block; }

/* ============ Content ============ */
.content {
  flex: 1;
  margin-left: var(--sidebar-width);
  padding: 0 2rem 4rem;
}

.top-bar {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 0.75rem 0;
  position: sticky; top: 0;
  background: var(--bg);
  z-index: 10;
}

.menu-toggle, .theme-toggle {
  background: none; border: none;
  color: var(--text);
  cursor: pointer;
  padding: 0.4rem;
  border-radius: 6px;
}
.menu-toggle:hover, .theme-toggle:hover { background: var(--accent-light); }
.menu-toggle { display: none; }

[data-theme="dark"] .sun-icon { display: none; }
[data-theme="light"] .moon-icon, :root:not([data-theme="dark"]) .moon-icon { display: none; }

.page-content { max-width: var(--content-max-width); margin: 0 auto; }
.page-content h1, .page-content h2, .page-content h3 { margin: 1.5rem 0 0.75rem; line-height: 1.3; }
.page-content p, .page-content ul, .page-content ol { margin-bottom: 1rem; }
.page-content ul, .page-content ol { padding-left: 1.5rem; }
.page-content a { color: var(--accent); }
.page-content code {
  background: var(--code-bg);
  padding: 0.15em 0.35em;
  border-radius: 4px;
  font-size: 0.875em;
}
.page-content pre {
  background: var(--code-bg);
  padding: 1rem;
  border-radius: 8px;
  overflow-x: auto;
  margin-bottom: 1rem;
}
.page-content pre code { background: none; padding: 0; }
.page-content table { border-collapse: collapse; margin-bottom: 1rem; width: 100%; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 0.4rem 0.7rem; text-align: left; }
.page-content blockquote {
  border-left: 4px solid var(--border);
  padding: 0.25rem 1rem;
  color: var(--text-muted);
  margin-bottom: 1rem;
}
mark { background: var(--mark-bg); color: inherit; padding: 0 0.15em; border-radius: 3px; }

/* ============ Callouts ============ */
.callout {
  border-left: 4px solid var(--accent);
  background: var(--accent-light);
  border-radius: 0 8px 8px 0;
  padding: 0.75rem 1rem;
  margin-bottom: 1rem;
}
.callout-title { font-weight: 700; margin-bottom: 0.25rem; }
.callout-warn, .callout-warning { border-left-color: #f59f00; background: rgba(245,159,0,0.08); }
.callout-important { border-left-color: #e03131; background: rgba(224,49,49,0.08); }
.callout-tip { border-left-color: #2f9e44; background: rgba(47,158,68,0.08); }

/* ============ Loading & errors ============ */
.loading { color: var(--text-muted); padding: 2rem 0; }
.page-content.is-loading { opacity: 0.5; }

.load-error {
  border: 1px solid #e03131;
  border-radius: 8px;
  padding: 1rem 1.25rem;
  margin: 1rem 0;
}
.load-error .hint { color: var(--text-muted); font-size: 0.9rem; }

.placeholder { color: var(--text-muted); padding: 2rem 0; }

.recent { margin-top: 3rem; border-top: 1px solid var(--border); padding-top: 1rem; }
.recent ul { list-style: none; padding-left: 0; }
.recent li a { color: var(--accent); text-decoration: none; }

/* ============ Narrow viewport ============ */
@media (max-width: 900px) {
  .sidebar { transform: translateX(-100%); }
  body.sidebar-open .sidebar { transform: translateX(0); }
  .content { margin-left: 0; padding: 0 1rem 3rem; }
  .menu-toggle { display: block; }
}`

// jsContent is the client script. It owns no navigation logic: every event
// (fragment change, filter input, theme toggle) is forwarded to the server
// session, and the HTML it pushes back is painted as-is.
const jsContent = `(function () {
  var nav = document.getElementById('sidebar-nav');
  var contentEl = document.getElementById('page-content');
  var filterInput = document.getElementById('filter-input');
  var breakpoint = window.DOCVIEW_BREAKPOINT || 900;

  var osTheme = window.matchMedia && window.matchMedia('(prefers-color-scheme: dark)').matches
    ? 'dark' : 'light';

  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/ws');

  function send(msg) {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify(msg));
    }
  }

  function navigate() {
    send({ type: 'navigate', fragment: location.hash || '#', os_theme: osTheme });
  }

  ws.onopen = navigate;
  window.addEventListener('hashchange', navigate);

  ws.onmessage = function (e) {
    var u = JSON.parse(e.data);
    switch (u.type) {
      case 'nav':
        nav.innerHTML = u.html;
        break;
      case 'loading':
        contentEl.classList.add('is-loading');
        break;
      case 'doc':
        contentEl.classList.remove('is-loading');
        contentEl.innerHTML = u.html;
        window.scrollTo(0, 0);
        break;
      case 'theme':
        applyTheme(u.theme);
        break;
    }
  };

  function applyTheme(mode) {
    document.documentElement.setAttribute('data-theme', mode);
    document.getElementById('chroma-light').disabled = mode !== 'light';
    document.getElementById('chroma-dark').disabled = mode !== 'dark';
  }

  filterInput.addEventListener('input', function () {
    send({ type: 'filter', filter: filterInput.value });
  });

  document.getElementById('theme-toggle').addEventListener('click', function () {
    send({ type: 'theme', os_theme: osTheme });
  });

  // Sidebar open/close on narrow viewports.
  document.getElementById('menu-toggle').addEventListener('click', function () {
    document.body.classList.toggle('sidebar-open');
  });
  document.getElementById('sidebar-overlay').addEventListener('click', function () {
    document.body.classList.remove('sidebar-open');
  });
  nav.addEventListener('click', function (e) {
    if (e.target.tagName === 'A' && window.innerWidth < breakpoint) {
      document.body.classList.remove('sidebar-open');
    }
  });
})();`
