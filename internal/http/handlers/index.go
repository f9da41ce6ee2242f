package handlers

import (
	"net/http"
)

// Index serves the single-page UI. Everything the browser needs is inlined so
// the binary stays self-contained.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>AI Image &amp; Video Studio</title>
<style>
  :root { color-scheme: dark; }
  body { font-family: system-ui, sans-serif; background: #0f1117; color: #e5e7eb; margin: 0; padding: 2rem 1rem; display: flex; justify-content: center; }
  main { width: 100%; max-width: 640px; }
  h1 { font-size: 1.4rem; margin-bottom: 0.25rem; }
  p.sub { color: #9ca3af; margin-top: 0; }
  .card { background: #181b24; border: 1px solid #2a2e3b; border-radius: 12px; padding: 1.25rem; margin-bottom: 1rem; }
  label { display: block; font-size: 0.85rem; color: #9ca3af; margin-bottom: 0.35rem; }
  textarea { width: 100%; box-sizing: border-box; background: #0f1117; color: inherit; border: 1px solid #2a2e3b; border-radius: 8px; padding: 0.6rem; min-height: 4.5rem; resize: vertical; }
  select, input[type=file] { width: 100%; margin-bottom: 0.75rem; color: inherit; }
  .modes { display: flex; gap: 1.25rem; margin: 0.75rem 0; }
  .modes label { display: flex; align-items: center; gap: 0.4rem; color: inherit; cursor: pointer; }
  button { background: #4f6ef7; color: white; border: none; border-radius: 8px; padding: 0.65rem 1.4rem; font-size: 1rem; cursor: pointer; }
  button:disabled { background: #374151; cursor: not-allowed; }
  a.download { display: inline-block; margin-top: 0.75rem; color: #8ab4ff; }
  #preview, #result img, #result video { max-width: 100%; border-radius: 8px; margin-top: 0.75rem; }
  #status { display: none; align-items: center; gap: 0.6rem; margin-top: 1rem; color: #9ca3af; }
  .spinner { width: 18px; height: 18px; border: 3px solid #2a2e3b; border-top-color: #4f6ef7; border-radius: 50%; animation: spin 0.8s linear infinite; }
  @keyframes spin { to { transform: rotate(360deg); } }
  #error { display: none; margin-top: 1rem; padding: 0.6rem 0.9rem; border-radius: 8px; background: #3b1219; color: #fda4af; }
  #message { margin-top: 0.75rem; color: #9ca3af; }
</style>
</head>
<body>
<main>
  <h1>AI Image &amp; Video Studio</h1>
  <p class="sub">Upload an image, describe the change, and let the model edit it or bring it to life.</p>

  <div class="card">
    <label for="file">Image</label>
    <input type="file" id="file" accept="image/*">
    <img id="preview" alt="" hidden>

    <div class="modes">
      <label><input type="radio" name="mode" value="edit" checked> Edit Image</label>
      <label><input type="radio" name="mode" value="video"> Generate Video</label>
    </div>

    <label for="preset">Example prompts</label>
    <select id="preset"><option value="">Choose an example...</option></select>

    <label for="prompt">Prompt</label>
    <textarea id="prompt" placeholder="Describe what you want..."></textarea>

    <button id="action">Edit Image</button>

    <div id="status"><div class="spinner"></div><span id="statusText"></span></div>
    <div id="error"></div>
  </div>

  <div class="card" id="resultCard" hidden>
    <div id="result"></div>
    <div id="message"></div>
    <a class="download" id="download" hidden></a>
    <a class="download" id="archive" hidden>Download All (zip)</a>
  </div>
</main>

<script>
const fileInput = document.getElementById('file');
const preview = document.getElementById('preview');
const promptBox = document.getElementById('prompt');
const presetSel = document.getElementById('preset');
const actionBtn = document.getElementById('action');
const statusBox = document.getElementById('status');
const statusText = document.getElementById('statusText');
const errorBox = document.getElementById('error');
const resultCard = document.getElementById('resultCard');
const resultBox = document.getElementById('result');
const messageBox = document.getElementById('message');
const downloadLink = document.getElementById('download');
const archiveLink = document.getElementById('archive');

let imageDataURL = '';
let statusTimer = null;

function currentMode() {
  return document.querySelector('input[name=mode]:checked').value;
}

function showError(msg) {
  errorBox.textContent = msg;
  errorBox.style.display = msg ? 'block' : 'none';
}

fileInput.addEventListener('change', () => {
  showError('');
  const file = fileInput.files[0];
  if (!file) { imageDataURL = ''; preview.hidden = true; return; }
  const reader = new FileReader();
  reader.onload = () => {
    imageDataURL = reader.result;
    preview.src = imageDataURL;
    preview.hidden = false;
  };
  reader.readAsDataURL(file);
});

async function loadPresets() {
  try {
    const res = await fetch('/api/presets?mode=' + currentMode());
    const body = await res.json();
    presetSel.innerHTML = '<option value="">Choose an example...</option>';
    for (const p of body.presets) {
      const opt = document.createElement('option');
      opt.value = p.text;
      opt.textContent = p.label;
      presetSel.appendChild(opt);
    }
  } catch (_) { /* presets are optional */ }
}

presetSel.addEventListener('change', () => {
  if (presetSel.value) promptBox.value = presetSel.value;
});

for (const radio of document.querySelectorAll('input[name=mode]')) {
  radio.addEventListener('change', () => {
    actionBtn.textContent = currentMode() === 'video' ? 'Generate Video' : 'Edit Image';
    loadPresets();
  });
}

function startStatusPolling() {
  statusBox.style.display = 'flex';
  statusTimer = setInterval(async () => {
    try {
      const res = await fetch('/api/status');
      const body = await res.json();
      if (body.busy && body.message) statusText.textContent = body.message;
    } catch (_) { /* keep last message */ }
  }, 1000);
}

function stopStatusPolling() {
  if (statusTimer) { clearInterval(statusTimer); statusTimer = null; }
  statusBox.style.display = 'none';
  statusText.textContent = '';
}

function renderResult(body) {
  resultBox.innerHTML = '';
  messageBox.textContent = body.message || '';
  downloadLink.hidden = true;
  archiveLink.hidden = true;

  for (const part of body.parts || []) {
    if (part.type === 'media' && part.data) {
      const src = 'data:' + part.mimeType + ';base64,' + part.data;
      if (part.mimeType.startsWith('video/')) {
        const video = document.createElement('video');
        video.src = src;
        video.controls = true;
        video.autoplay = true;
        video.muted = true;
        video.loop = true;
        resultBox.appendChild(video);
      } else {
        const img = document.createElement('img');
        img.src = src;
        resultBox.appendChild(img);
      }
    } else if (part.type === 'text' && part.text) {
      const p = document.createElement('p');
      p.textContent = part.text;
      resultBox.appendChild(p);
    }
  }

  if (body.downloadUrl) {
    downloadLink.href = body.downloadUrl;
    downloadLink.download = body.downloadName || '';
    downloadLink.textContent = currentMode() === 'video' ? 'Download Video' : 'Download Image';
    downloadLink.hidden = false;
  }
  if (body.archiveUrl) {
    archiveLink.href = body.archiveUrl;
    archiveLink.hidden = false;
  }
  resultCard.hidden = false;
}

actionBtn.addEventListener('click', async () => {
  showError('');
  if (!imageDataURL) { showError('Please upload an image first.'); return; }
  if (!promptBox.value.trim()) { showError('Please enter a prompt.'); return; }

  actionBtn.disabled = true;
  resultCard.hidden = true;
  statusText.textContent = currentMode() === 'video' ? 'Submitting video job...' : 'Editing your image...';
  startStatusPolling();

  try {
    const res = await fetch('/api/generate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ mode: currentMode(), prompt: promptBox.value, image: imageDataURL })
    });
    const body = await res.json();
    if (!res.ok && body.error) {
      showError(body.error);
    } else {
      renderResult(body);
    }
  } catch (err) {
    showError('The request failed. Please try again.');
  } finally {
    stopStatusPolling();
    actionBtn.disabled = false;
  }
});

loadPresets();
</script>
</body>
</html>
`
