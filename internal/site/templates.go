package site

// pageTemplate renders the three-view report. Views are plain containers
// toggled by the navigation state; selectors are links so the page works
// without scripting.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="masthead">
    <h1>{{.Title}}</h1>
    {{if .Intro}}<div class="intro">{{.Intro}}</div>{{end}}
    <nav class="tabs">
      {{range .Tabs}}<a href="{{.Href}}" class="tab{{if .Active}} active{{end}}" id="tab-{{.ID}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
      {{end}}
    </nav>
  </header>
  <main>
    {{range .Texts}}
    <section class="view{{if not .Visible}} hidden{{end}}" id="{{.ID}}-view">
      <h2>{{.Label}}</h2>
      {{if .Title}}<p class="work"><cite>{{.Title}}</cite>{{if .Author}} by {{.Author}}{{end}}</p>{{end}}
      <div class="stats">
        <div class="stat"><span class="stat-value" id="{{.ID}}-total-words">{{.Total}}</span><span class="stat-label">Total words</span></div>
        <div class="stat"><span class="stat-value" id="{{.ID}}-unique-words">{{.Unique}}</span><span class="stat-label">Unique words</span></div>
        <div class="stat"><span class="stat-value" id="{{.ID}}-lexical-diversity">{{.Diversity}}</span><span class="stat-label">Lexical diversity</span></div>
      </div>
      <h3>Sentiment</h3>
      <div class="sentiment">
        {{range .Bars}}<div class="bar-row">
          <span class="bar-name">{{.Name}}</span>
          <div class="bar-track"><div class="bar {{.Name}}" id="{{.Slot}}" style="width: {{.Width}}"></div></div>
          <span class="bar-value" id="{{.ValueSlot}}">{{.Value}}</span>
        </div>
        {{end}}
        <p class="compound">Compound score: <strong id="{{.ID}}-compound">{{.Compound}}</strong></p>
      </div>
      {{if .Wordcloud}}<figure class="wordcloud"><img src="{{$.AssetPath}}{{.Wordcloud}}" alt="Word cloud for {{.Label}}"></figure>{{end}}
      <h3>Most frequent words</h3>
      <ol class="word-list" id="{{.ID}}-top-words">
        {{range .TopWords}}<li class="word-item">{{.}}</li>
        {{end}}
      </ol>
    </section>
    {{end}}
    {{with .Comparison}}
    <section class="view{{if not .Visible}} hidden{{end}}" id="{{.ID}}-view">
      <h2>{{.Label}}</h2>
      <p class="overlap">Vocabulary overlap: <strong id="comparison-overlap">{{.Overlap}}</strong></p>
      <p class="summary" id="comparison-summary">{{.Summary}}</p>
      <div class="venn" id="venn-diagram">{{.Venn}}</div>
      <h3>Most frequent shared words</h3>
      <ol class="word-list" id="comparison-shared-words">
        {{range .SharedWords}}<li class="word-item">{{.}}</li>
        {{end}}
      </ol>
      {{if or .UniqueFirst .UniqueSecond}}
      <div class="unique-columns">
        <div><h3>Only in {{.FirstName}}</h3><ul class="word-list" id="comparison-unique-first">{{range .UniqueFirst}}<li>{{.}}</li>{{end}}</ul></div>
        <div><h3>Only in {{.SecondName}}</h3><ul class="word-list" id="comparison-unique-second">{{range .UniqueSecond}}<li>{{.}}</li>{{end}}</ul></div>
      </div>
      {{end}}
    </section>
    {{end}}
  </main>
  <footer>
    {{if .Method}}<p>Sentiment method: {{.Method}}{{if .Stopwords}} · stopwords removed{{end}}</p>{{end}}
    <p>Source texts: Project Gutenberg (public domain).</p>
  </footer>
</body>
</html>`

// cssContent styles the report.
const cssContent = `:root {
  --bg: #f5f5dc;
  --ink: #3b2f2f;
  --muted: #6b5d4f;
  --accent: #556b2f;
  --card: #fffdf5;
  --border: #d8cfb4;
  --positive: #6b8e23;
  --negative: #a0522d;
  --neutral: #8b8378;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--ink);
  font-family: Georgia, "Times New Roman", serif;
  line-height: 1.5;
}

.masthead { padding: 2rem 2rem 0; max-width: 960px; margin: 0 auto; }
.masthead h1 { margin: 0 0 .5rem; font-size: 2rem; }
.intro { color: var(--muted); }

.tabs { display: flex; gap: .5rem; margin-top: 1.5rem; border-bottom: 2px solid var(--border); }
.tab {
  padding: .5rem 1rem;
  color: var(--muted);
  text-decoration: none;
  border: 2px solid transparent;
  border-bottom: none;
  border-radius: 6px 6px 0 0;
}
.tab.active { color: var(--ink); background: var(--card); border-color: var(--border); }

main { max-width: 960px; margin: 0 auto; padding: 1.5rem 2rem; }
.view.hidden { display: none; }
.work { color: var(--muted); }

.stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.stat { background: var(--card); border: 1px solid var(--border); border-radius: 6px; padding: 1rem; text-align: center; }
.stat-value { display: block; font-size: 1.6rem; font-weight: bold; color: var(--accent); }
.stat-label { font-size: .85rem; color: var(--muted); text-transform: uppercase; letter-spacing: .05em; }

.bar-row { display: grid; grid-template-columns: 6rem 1fr 4rem; align-items: center; gap: .75rem; margin: .4rem 0; }
.bar-name { text-transform: capitalize; }
.bar-track { background: var(--card); border: 1px solid var(--border); border-radius: 4px; height: 1rem; overflow: hidden; }
.bar { height: 100%; }
.bar.positive { background: var(--positive); }
.bar.negative { background: var(--negative); }
.bar.neutral { background: var(--neutral); }
.bar-value { text-align: right; font-variant-numeric: tabular-nums; }

.wordcloud img { max-width: 100%; border: 1px solid var(--border); border-radius: 6px; }

.word-list { columns: 3; padding-left: 1.5rem; }
.word-item { break-inside: avoid; }

.venn { display: flex; justify-content: center; margin: 1rem 0; }
.venn svg { max-width: 100%; height: auto; }

.unique-columns { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; }
.unique-columns .word-list { columns: 2; }

footer { max-width: 960px; margin: 0 auto; padding: 1rem 2rem 2rem; color: var(--muted); font-size: .85rem; }

@media (max-width: 640px) {
  .stats { grid-template-columns: 1fr; }
  .word-list { columns: 1; }
  .unique-columns { grid-template-columns: 1fr; }
}
`
