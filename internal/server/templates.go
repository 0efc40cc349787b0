package server

import (
	"html/template"
)

// indexTemplate is the UI shell. It is a thin client of the JSON API;
// all browsing decisions happen server-side.
const indexTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>fsbrowse</title>
    <link rel="stylesheet" href="/static/bootstrap.min.css"
          onerror="this.href='https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css'">
  </head>
  <body class="p-3">
    <div class="container">
      <div class="d-flex gap-2 mb-3">
        <select id="root" class="form-select w-auto"></select>
        <button id="up" class="btn btn-outline-secondary" disabled>Up</button>
        <code id="path" class="align-self-center"></code>
      </div>
      <table class="table table-sm table-hover">
        <thead><tr><th>Name</th><th>Size</th><th>Type</th><th>Modified</th></tr></thead>
        <tbody id="entries"></tbody>
      </table>
      <pre id="preview" class="border p-2 d-none"></pre>
    </div>
    <script>
    let state = { root: "", path: "", parent: null };

    async function fetchJSON(url) {
      const resp = await fetch(url);
      const body = await resp.json();
      if (!resp.ok) throw new Error(body.error || resp.statusText);
      return body;
    }

    function fileURL(endpoint, path) {
      return endpoint + "?root=" + encodeURIComponent(state.root) +
        "&path=" + encodeURIComponent(path);
    }

    async function list(path) {
      const data = await fetchJSON(fileURL("/api/list", path));
      state.path = data.path;
      state.parent = data.parent;
      document.getElementById("path").textContent = data.path;
      document.getElementById("up").disabled = !data.parent;
      document.getElementById("preview").classList.add("d-none");
      const tbody = document.getElementById("entries");
      tbody.innerHTML = "";
      for (const e of data.entries) {
        const tr = document.createElement("tr");
        const name = document.createElement("td");
        const link = document.createElement("a");
        link.href = "#";
        link.textContent = (e.is_dir ? "📁 " : "") + e.name;
        const entryPath = data.path.replace(/\/$/, "") + "/" + e.name;
        link.onclick = (ev) => { ev.preventDefault(); open(e, entryPath); };
        name.appendChild(link);
        tr.appendChild(name);
        tr.insertAdjacentHTML("beforeend",
          "<td>" + (e.is_dir ? "—" : e.size) + "</td>" +
          "<td>" + (e.mime || "") + "</td>" +
          "<td>" + new Date(e.mtime * 1000).toLocaleString() + "</td>");
        tbody.appendChild(tr);
      }
    }

    async function open(entry, path) {
      if (entry.is_dir) return list(path);
      if (entry.is_image || !(entry.mime || "").startsWith("text/")) {
        window.open(fileURL("/api/file", path), "_blank");
        return;
      }
      const data = await fetchJSON(fileURL("/api/text_preview", path));
      const pre = document.getElementById("preview");
      pre.textContent = data.content + (data.truncated ? "\n… truncated" : "");
      pre.classList.remove("d-none");
    }

    async function init() {
      const cfg = await fetchJSON("/api/config");
      const select = document.getElementById("root");
      const roots = cfg.allowed_roots.length ? cfg.allowed_roots : ["/"];
      for (const r of roots) {
        const opt = document.createElement("option");
        opt.value = opt.textContent = r;
        select.appendChild(opt);
      }
      select.onchange = () => { state.root = select.value; list(""); };
      document.getElementById("up").onclick = () => {
        if (state.parent) list(state.parent);
      };
      state.root = roots[0];
      await list("");
    }

    init().catch((err) => {
      document.getElementById("path").textContent = err.message;
    });
    </script>
  </body>
</html>`

func newIndexTemplate() (*template.Template, error) {
	return template.New("index").Parse(indexTemplate)
}
