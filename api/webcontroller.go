package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeseo/config"
)

// RegisterWebRoutes serves the single-page UI at the root.
func RegisterWebRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", gin.H{
			"Languages":    config.SupportedLanguages,
			"CloudModel":   config.DefaultCloudModel,
			"LocalModel":   config.DefaultLocalModel,
		})
	})
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Video SEO Optimizer</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #f5f7fa; color: #1b2733; }
  header { background: #1E88E5; color: #fff; padding: 1rem 2rem; }
  main { max-width: 960px; margin: 0 auto; padding: 1.5rem; }
  form { background: #fff; border-radius: 8px; padding: 1.25rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
  label { display: block; margin: .75rem 0 .25rem; font-weight: 600; }
  input[type=text], select { width: 100%; padding: .5rem; border: 1px solid #cdd5df; border-radius: 4px; }
  button { margin-top: 1rem; background: #1E88E5; color: #fff; border: 0; padding: .6rem 1.4rem; border-radius: 4px; cursor: pointer; }
  button:disabled { background: #9bbde0; }
  .tag { background: #E3F2FD; color: #1565C0; padding: 4px 10px; border-radius: 15px; margin: 2px; display: inline-block; }
  .ts { background: #2196F3; color: #fff; padding: 8px; border-radius: 5px; margin-bottom: 5px; }
  .concept { border: 1px solid #ddd; border-radius: 8px; padding: 12px; margin-bottom: 12px; background: #fff; }
  .swatch { height: 20px; width: 20px; display: inline-block; margin-right: 4px; border: 1px solid #ccc; vertical-align: middle; }
  .warn { background: #FFF3E0; border-left: 4px solid #FB8C00; padding: .5rem .75rem; margin: .5rem 0; }
  .error { background: #FFEBEE; border-left: 4px solid #E53935; padding: .5rem .75rem; margin: .5rem 0; }
  section { margin-top: 1.5rem; }
  h2 { color: #0D47A1; }
  textarea { width: 100%; min-height: 220px; }
</style>
</head>
<body>
<header><h1>Video SEO Optimizer</h1></header>
<main>
  <form id="analyze-form">
    <label for="url">Video URL</label>
    <input type="text" id="url" placeholder="https://www.youtube.com/watch?v=..." required>
    <label for="language">Output language</label>
    <select id="language">{{range .Languages}}<option>{{.}}</option>{{end}}</select>
    <label for="backend">Backend</label>
    <select id="backend">
      <option value="openai">OpenAI (cloud)</option>
      <option value="ollama">Ollama (local)</option>
    </select>
    <label for="model">Model (blank for default: {{.CloudModel}} / {{.LocalModel}})</label>
    <input type="text" id="model">
    <label><input type="checkbox" id="image"> Generate thumbnail image</label>
    <button type="submit" id="go">Generate SEO Recommendations</button>
  </form>
  <div id="messages"></div>
  <section id="results" hidden>
    <h2>Video</h2><div id="meta"></div>
    <h2>Content Analysis</h2><p id="analysis"></p>
    <h2>Tags</h2><div id="tags"></div>
    <h2>Description</h2><textarea id="description" readonly></textarea>
    <h2>Timestamps</h2><div id="timestamps"></div>
    <h2>Titles</h2><ol id="titles"></ol>
    <h2>Thumbnail Concepts</h2><div id="thumbnails"></div>
  </section>
</main>
<script>
const form = document.getElementById('analyze-form');
const msg = document.getElementById('messages');
form.addEventListener('submit', async (e) => {
  e.preventDefault();
  msg.innerHTML = '';
  document.getElementById('results').hidden = true;
  const btn = document.getElementById('go');
  btn.disabled = true; btn.textContent = 'Analyzing...';
  try {
    const resp = await fetch('/api/analyze', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({
        url: document.getElementById('url').value,
        language: document.getElementById('language').value,
        backend: document.getElementById('backend').value,
        model: document.getElementById('model').value,
        generate_image: document.getElementById('image').checked,
      }),
    });
    const data = await resp.json();
    if (!resp.ok) { show(msg, 'error', data.error || 'request failed'); return; }
    (data.warnings || []).forEach(w => show(msg, 'warn', w));
    render(data);
  } catch (err) {
    show(msg, 'error', err.message);
  } finally {
    btn.disabled = false; btn.textContent = 'Generate SEO Recommendations';
  }
});
function show(el, cls, text) {
  const d = document.createElement('div'); d.className = cls; d.textContent = text; el.appendChild(d);
}
function render(data) {
  const m = data.metadata, r = data.result;
  document.getElementById('results').hidden = false;
  const dur = m.duration_seconds ? Math.floor(m.duration_seconds/60)+'m '+(m.duration_seconds%60)+'s' : 'unknown';
  document.getElementById('meta').innerHTML =
    '<b>' + esc(m.title) + '</b><br>' + esc(m.author || '') + ' · ' + esc(m.platform) +
    ' · ' + dur + (m.transcript_present ? ' · transcript available' : ' · no transcript');
  document.getElementById('analysis').textContent = r.analysis;
  document.getElementById('tags').innerHTML = r.tags.map(t => '<span class="tag">#' + esc(t) + '</span>').join('');
  document.getElementById('description').value = r.description;
  document.getElementById('timestamps').innerHTML = r.timestamps.map(t =>
    '<div class="ts"><b>' + clock(t.offset_seconds) + '</b> — ' + esc(t.label) + '</div>').join('');
  document.getElementById('titles').innerHTML = r.titles.map(t =>
    '<li><b>' + esc(t.text) + '</b>' + (t.reason ? '<br><small>' + esc(t.reason) + '</small>' : '') + '</li>').join('');
  document.getElementById('thumbnails').innerHTML = r.thumbnails.map(c =>
    '<div class="concept"><b>' + esc(c.overlay_text) + '</b><p>' + esc(c.visual_idea) + '</p>' +
    (c.color_palette || []).map(h => '<span class="swatch" style="background:' + esc(h) + '"></span>').join('') +
    (c.tone ? ' <small>' + esc(c.tone) + '</small>' : '') +
    (c.image_url ? '<br><img src="' + esc(c.image_url) + '" width="320">' : '') + '</div>').join('');
}
function clock(s) {
  const m = Math.floor(s/60), r = s%60;
  return String(m).padStart(2,'0') + ':' + String(r).padStart(2,'0');
}
function esc(s) {
  return String(s ?? '').replace(/[&<>"']/g, c => ({'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;',"'":'&#39;'}[c]));
}
</script>
</body>
</html>`
