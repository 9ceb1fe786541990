// Package dashboard holds the static HTML page for the heatwave dashboard.
// The page is a thin consumer of the JSON API; all computation stays server-side.
package dashboard

// HTML returns the dashboard page. Chart.js is loaded from CDN.
func HTML() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Heatwave Dashboard (SDG 13)</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            background: #ffffff;
            color: #111827;
        }
        .header { padding: 1.2rem 2rem 0.5rem; }
        .header h1 { font-size: 1.4rem; }
        .header h2 { font-size: 1rem; font-weight: 600; margin-top: 0.25rem; }
        .muted { color: #6b7280; font-size: 0.92rem; margin-top: 0.25rem; }
        hr { border: none; border-top: 1px solid #eee; margin: 1rem 2rem; }

        .layout { display: grid; grid-template-columns: 220px 2fr 1fr; gap: 1.25rem; padding: 0 2rem 2rem; }
        @media (max-width: 1024px) { .layout { grid-template-columns: 1fr; } }

        .card {
            border: 1px solid #eee;
            border-radius: 14px;
            padding: 14px 16px;
            background: #fff;
            margin-bottom: 1rem;
        }
        .card h3 { font-size: 0.95rem; margin-bottom: 0.75rem; }

        .sidebar label { display: block; font-size: 0.8rem; color: #374151; margin: 0.6rem 0 0.2rem; }
        .sidebar input, .sidebar select {
            width: 100%; padding: 6px 8px; border: 1px solid #ddd; border-radius: 8px; font-size: 0.85rem;
        }
        .sidebar button {
            width: 100%; margin-top: 0.9rem; padding: 8px; border: none; border-radius: 8px;
            background: #111827; color: #fff; font-weight: 600; cursor: pointer;
        }
        .error { color: #b42318; font-size: 0.8rem; margin-top: 0.5rem; }

        .metrics { display: grid; grid-template-columns: 1fr 1fr; gap: 0.75rem; margin-bottom: 0.75rem; }
        .metric-label { color: #6b7280; font-size: 0.75rem; }
        .metric-value { font-size: 1.5rem; font-weight: 700; margin-top: 0.25rem; }

        .badge { display: inline-block; padding: 6px 10px; border-radius: 999px; font-weight: 700; font-size: 0.85rem; }
        .badge-high { background: #ffe8e8; color: #b42318; }
        .badge-med  { background: #fff7e6; color: #b54708; }
        .badge-low  { background: #ecfdf3; color: #027a48; }

        table { width: 100%; border-collapse: collapse; font-size: 0.82rem; margin-top: 0.25rem; }
        th { text-align: left; color: #6b7280; font-weight: 500; padding: 6px 8px; border-bottom: 1px solid #eee; }
        td { padding: 6px 8px; border-bottom: 1px solid #f4f4f5; }
        .caption { color: #6b7280; font-size: 0.75rem; margin-top: 0.5rem; }
        .advice { background: #eff6ff; border-radius: 10px; padding: 10px 12px; font-size: 0.85rem; margin-top: 0.75rem; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Who Made Heatwaves Hotter?</h1>
        <h2>A Data Science Approach to Climate Action (SDG 13)</h2>
        <div class="muted">Using data analytics and predictive modeling to understand and forecast extreme heatwaves.</div>
    </div>
    <hr>
    <div class="layout">
        <div class="sidebar">
            <div class="card">
                <h3>INPUT</h3>
                <label for="location">Location</label>
                <select id="location"></select>
                <label for="start">Start date</label>
                <input type="date" id="start">
                <label for="end">End date</label>
                <input type="date" id="end">
                <label for="seed">Seed</label>
                <input type="number" id="seed" value="7">
                <button id="submit">SUBMIT</button>
                <div class="error" id="error"></div>
            </div>
        </div>
        <div>
            <div class="card">
                <h3>ANALYTICS</h3>
                <canvas id="tempChart" height="110"></canvas>
                <canvas id="hiChart" height="110" style="margin-top:1rem"></canvas>
            </div>
            <div class="card">
                <h3>Global Heatwaves data</h3>
                <table id="referenceTable">
                    <thead><tr><th>Year</th><th>Max Temp (&deg;C)</th><th>Humidity (%)</th><th>Heat Index</th><th>Heatwave</th></tr></thead>
                    <tbody></tbody>
                </table>
                <div class="caption">Data from meteorological stations and climate databases. (Sample/hypothetical for mock-up)</div>
            </div>
        </div>
        <div>
            <div class="card">
                <h3>OUTPUTS &amp; ALERTS</h3>
                <div class="metrics">
                    <div><div class="metric-label">Peak Max Temp (&deg;C)</div><div class="metric-value" id="peakTemp">&ndash;</div></div>
                    <div><div class="metric-label">Peak Heat Index</div><div class="metric-value" id="peakHI">&ndash;</div></div>
                </div>
                <h3>Heatwave Risk Level</h3>
                <span class="badge badge-low" id="riskBadge">&ndash;</span>
                <h3 style="margin-top:1rem">3-Day Forecast (Mock)</h3>
                <table id="forecastTable">
                    <thead><tr><th>Date</th><th>Max Temp (&deg;C)</th><th>Risk</th></tr></thead>
                    <tbody></tbody>
                </table>
                <h3 style="margin-top:1rem">Health Alert</h3>
                <div class="advice" id="advice">&ndash;</div>
            </div>
        </div>
    </div>

    <script>
        const badges = {
            HIGH:   { cls: 'badge-high', text: 'HIGH — Extreme heat likely' },
            MEDIUM: { cls: 'badge-med',  text: 'MEDIUM — Heat stress possible' },
            LOW:    { cls: 'badge-low',  text: 'LOW — Normal conditions' },
        };

        let tempChart, hiChart;

        function isoDay(d) { return d.toISOString().slice(0, 10); }

        function initDates() {
            const end = new Date();
            const start = new Date(end.getTime() - 7 * 86400000);
            document.getElementById('start').value = isoDay(start);
            document.getElementById('end').value = isoDay(end);
        }

        function params() {
            return new URLSearchParams({
                start: document.getElementById('start').value,
                end: document.getElementById('end').value,
                seed: document.getElementById('seed').value,
            });
        }

        function renderChart(existing, canvasId, label, labels, data, fill) {
            if (existing) existing.destroy();
            return new Chart(document.getElementById(canvasId), {
                type: 'line',
                data: {
                    labels: labels,
                    datasets: [{
                        label: label,
                        data: data,
                        borderColor: fill ? '#f97316' : '#2563eb',
                        backgroundColor: fill ? 'rgba(249,115,22,0.25)' : 'transparent',
                        fill: fill,
                        pointRadius: 3,
                        tension: 0.2,
                    }],
                },
                options: { plugins: { legend: { display: false } } },
            });
        }

        async function refresh() {
            const errorBox = document.getElementById('error');
            errorBox.textContent = '';

            const start = document.getElementById('start').value;
            const end = document.getElementById('end').value;
            if (start > end) {
                errorBox.textContent = 'Start date must be <= end date.';
                return;
            }

            const q = params();
            const seriesResp = await fetch('/api/series?' + q);
            if (!seriesResp.ok) {
                const body = await seriesResp.json().catch(() => ({}));
                errorBox.textContent = body.error || 'request failed';
                return;
            }
            const series = await seriesResp.json();
            const summary = await (await fetch('/api/summary?' + q)).json();

            const labels = series.records.map(r => r.date.slice(0, 10));
            tempChart = renderChart(tempChart, 'tempChart', 'Max Temp (°C)',
                labels, series.records.map(r => r.max_temp_c), false);
            hiChart = renderChart(hiChart, 'hiChart', 'Heat Index',
                labels, series.records.map(r => r.heat_index), true);

            document.getElementById('peakTemp').textContent = summary.peak_max_temp_c.toFixed(1);
            document.getElementById('peakHI').textContent = summary.peak_heat_index.toFixed(1);

            const badge = badges[summary.risk] || badges.LOW;
            const badgeEl = document.getElementById('riskBadge');
            badgeEl.className = 'badge ' + badge.cls;
            badgeEl.textContent = badge.text;

            document.getElementById('advice').textContent = summary.advice;

            const tbody = document.querySelector('#forecastTable tbody');
            tbody.innerHTML = '';
            for (const day of summary.forecast) {
                const row = tbody.insertRow();
                row.insertCell().textContent = day.date.slice(0, 10);
                row.insertCell().textContent = day.max_temp_c.toFixed(1);
                row.insertCell().textContent = day.risk;
            }
        }

        async function loadLocations() {
            const names = await (await fetch('/api/locations')).json();
            const select = document.getElementById('location');
            for (const name of names) {
                const opt = document.createElement('option');
                opt.textContent = name;
                select.appendChild(opt);
            }
        }

        async function loadReference() {
            const rows = await (await fetch('/api/reference')).json();
            const tbody = document.querySelector('#referenceTable tbody');
            for (const r of rows) {
                const row = tbody.insertRow();
                row.insertCell().textContent = r.year;
                row.insertCell().textContent = r.max_temp_c;
                row.insertCell().textContent = r.humidity;
                row.insertCell().textContent = r.heat_index;
                row.insertCell().textContent = r.heatwave ? 'Yes' : 'No';
            }
        }

        document.getElementById('submit').addEventListener('click', refresh);
        initDates();
        loadLocations();
        loadReference();
        refresh();
    </script>
</body>
</html>`
}
