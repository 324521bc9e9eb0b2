package devserver

// pageTemplate is the devtools page. %s is the rendered body markup.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>vrec devserver</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
#status { color: #888; font-size: 0.8rem; }
.todo.done { text-decoration: line-through; }
.theme-dark { background: #222; color: #eee; }
</style>
</head>
<body>
<div id="status">connecting</div>
<div id="vrec-root">%s</div>
<script>
(function() {
    'use strict';

    var root = document.getElementById('vrec-root');
    var status = document.getElementById('status');
    var seq = 0;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');
        ws.onopen = function() { status.textContent = 'live'; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.seq <= seq) { return; }
            seq = msg.seq;
            root.innerHTML = msg.html;
            status.textContent = msg.type + (msg.reason ? ' (' + msg.reason + ')' : '') + (msg.error ? ': ' + msg.error : '');
        };
        ws.onclose = function() {
            status.textContent = 'disconnected';
            setTimeout(connect, 1000);
        };
    }

    function forward(type) {
        root.addEventListener(type, function(e) {
            var el = e.target.closest('[id]');
            if (!el || !root.contains(el)) { return; }
            fetch('/events/' + encodeURIComponent(el.id) + '/' + type, { method: 'POST' });
        });
    }

    forward('click');
    forward('dblclick');
    connect();
})();
</script>
</body>
</html>
`
