package report

// htmlTemplate renders a standalone page. The bar under each zone shows its
// inclusive share of the session with the exclusive share drawn on top.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f8fafc;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
            --accent-primary: #3b82f6;
            --accent-exclusive: #1d4ed8;
            --accent-warning: #f59e0b;
        }

        @media (prefers-color-scheme: dark) {
            :root {
                --bg-primary: #1e293b;
                --bg-secondary: #0f172a;
                --text-primary: #f1f5f9;
                --text-secondary: #94a3b8;
                --border-color: #334155;
            }
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            margin: 0;
            padding: 2rem;
        }

        .summary {
            display: flex;
            gap: 2rem;
            margin-bottom: 1.5rem;
        }

        .summary div span {
            display: block;
            color: var(--text-secondary);
            font-size: 0.8rem;
            text-transform: uppercase;
        }

        .warning { color: var(--accent-warning); }

        table {
            width: 100%;
            border-collapse: collapse;
            background-color: var(--bg-primary);
        }

        th, td {
            padding: 0.5rem 0.75rem;
            border-bottom: 1px solid var(--border-color);
            text-align: right;
            white-space: nowrap;
        }

        th:first-child, td:first-child { text-align: left; }

        .bar {
            position: relative;
            height: 6px;
            margin-top: 4px;
            background-color: var(--border-color);
        }

        .bar .inclusive, .bar .exclusive {
            position: absolute;
            left: 0;
            top: 0;
            height: 100%;
        }

        .bar .inclusive { background-color: var(--accent-primary); }
        .bar .exclusive { background-color: var(--accent-exclusive); }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="summary">
        <div><span>Total</span>{{.Total}}</div>
        {{if .Calibrated}}<div><span>Frequency</span>{{.Frequency}}</div>
        {{else}}<div class="warning"><span>Frequency</span>failed to estimate CPU frequency</div>
        {{end}}{{if .Faults}}<div><span>Page faults</span>{{.Faults}}</div>
        {{end}}<div><span>Zones</span>{{len .Rows}}</div>
    </div>
    <table>
        <thead>
            <tr>
                <th>Zone</th>
                <th>Hits</th>
                <th>Inclusive</th>
                <th>Incl %</th>
                <th>Exclusive</th>
                <th>Excl %</th>
                <th>Avg</th>
                <th>Bandwidth</th>
                <th>Faults</th>
                <th>Min</th>
                <th>Max</th>
            </tr>
        </thead>
        <tbody>
        {{range .Rows}}
            <tr class="zone">
                <td>{{.Name}}
                    <div class="bar">
                        <div class="inclusive" style="width: {{pct .InclusivePercent}}%"></div>
                        <div class="exclusive" style="width: {{pct .ExclusivePercent}}%"></div>
                    </div>
                </td>
                <td>{{.Hits}}</td>
                <td>{{.Inclusive}}</td>
                <td>{{pct .InclusivePercent}}</td>
                <td>{{.Exclusive}}</td>
                <td>{{pct .ExclusivePercent}}</td>
                <td>{{or .Average "-"}}</td>
                <td>{{or .Bandwidth "-"}}</td>
                <td>{{or .Faults "-"}}</td>
                <td>{{or .Min "-"}}</td>
                <td>{{or .Max "-"}}</td>
            </tr>
        {{end}}
        </tbody>
    </table>
</body>
</html>
`
