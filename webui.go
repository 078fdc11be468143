package main

// webUIHTML is the embedded web interface
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Financial Tools Suite</title>
    <style>
        :root {
            --primary: #6366f1;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
            --excellent: #10b981;
            --good: #eab308;
            --average: #f97316;
            --poor: #ef4444;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }
        header { background: var(--primary); color: #fff; padding: 1.25rem 2rem; display: flex; justify-content: space-between; align-items: center; }
        header h1 { font-size: 1.5rem; }
        .container { max-width: 1100px; margin: 0 auto; padding: 2rem; }
        .screen { display: none; }
        .screen.active { display: block; }
        .cards { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .tool-card { cursor: pointer; transition: transform 0.15s; }
        .tool-card:hover { transform: translateY(-3px); }
        .grid-2 { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1.5rem; }
        @media (max-width: 768px) { .cards, .grid-2 { grid-template-columns: 1fr; } }
        label { display: block; font-weight: 600; margin: 0.75rem 0 0.25rem; font-size: 0.9rem; }
        input[type=text], select { width: 100%; padding: 0.5rem; border: 1px solid var(--border); border-radius: 6px; font-size: 1rem; }
        .checks label, .radios label { display: inline-block; font-weight: 400; margin-right: 1rem; }
        button { background: var(--primary); color: #fff; border: none; border-radius: 6px; padding: 0.5rem 1rem; cursor: pointer; font-size: 0.9rem; }
        button.secondary { background: #fff; color: var(--primary); border: 1px solid var(--primary); }
        .actions { display: flex; gap: 0.5rem; flex-wrap: wrap; margin-top: 1rem; }
        .score-total { font-size: 2.5rem; font-weight: 700; }
        .badge { display: inline-block; padding: 0.2rem 0.75rem; border-radius: 999px; color: #fff; font-weight: 600; }
        .bar { background: var(--border); border-radius: 4px; height: 10px; }
        .bar > span { display: block; height: 100%; border-radius: 4px; background: var(--primary); }
        .factor { margin-bottom: 0.75rem; }
        .factor-head { display: flex; justify-content: space-between; font-size: 0.9rem; }
        .muted { color: var(--text-muted); font-size: 0.85rem; }
        table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
        th { background: var(--primary); color: #fff; text-align: left; padding: 0.5rem; }
        td { padding: 0.5rem; border-bottom: 1px solid var(--border); }
        .status { font-weight: 700; text-transform: uppercase; }
        .surplus { color: #b45309; }
        .deficit { color: #dc2626; }
        .balanced { color: #10b981; }
        .chart { text-align: center; }
        .legend { list-style: none; font-size: 0.85rem; text-align: left; display: inline-block; margin-top: 0.5rem; }
        .swatch { display: inline-block; width: 10px; height: 10px; border-radius: 2px; margin-right: 6px; }
        .advisory { border-left: 4px solid var(--primary); }
        #message { margin-top: 0.5rem; }
    </style>
</head>
<body>
<header>
    <h1>Financial Tools Suite</h1>
    <button class="secondary" id="back" style="display:none" onclick="go('home')">&larr; Back</button>
</header>
<div class="container">

<section id="screen-home" class="screen active">
    <p class="muted" style="margin-bottom:1.5rem">Choose a calculator to analyze your financial well-being</p>
    <div class="cards">
        <div class="card tool-card" onclick="go('health')">
            <h2>Financial Health Calculator</h2>
            <p class="muted">Evaluate your overall financial health score across six factors.</p>
        </div>
        <div class="card tool-card" onclick="go('portfolio')">
            <h2>Investment Portfolio Analyzer</h2>
            <p class="muted">Compare your asset allocation against an ideal portfolio.</p>
        </div>
    </div>
</section>

<section id="screen-health" class="screen">
    <div class="grid-2">
        <div class="card" id="health-form">
            <h2>Your Details</h2>
            <label>Monthly Income</label><input type="text" name="monthlyIncome">
            <label>Income Source</label>
            <select name="incomeSource"><option>Salaried</option><option>Business</option><option>Mixed</option></select>
            <label>Income Stability (1-5)</label>
            <select name="incomeStability"><option>1</option><option>2</option><option>3</option><option>4</option><option>5</option></select>
            <label>Monthly Expenses (excluding EMIs)</label><input type="text" name="monthlyExpenses">
            <label>Emergency Fund</label><input type="text" name="emergencyFund">
            <label>Monthly EMIs</label><input type="text" name="monthlyEMIs">
            <label>Investments Held</label>
            <div class="checks">
                <label><input type="checkbox" data-inv="fd"> FD</label>
                <label><input type="checkbox" data-inv="mf"> MF</label>
                <label><input type="checkbox" data-inv="shares"> Shares</label>
                <label><input type="checkbox" data-inv="pf"> PF</label>
                <label><input type="checkbox" data-inv="ppf"> PPF</label>
                <label><input type="checkbox" data-inv="others"> Others</label>
            </div>
            <label>Regular Investments</label>
            <select name="regularInvestments"><option>No</option><option>Yes</option></select>
            <label>Health Insurance</label>
            <select name="healthInsurance"><option>No</option><option>Yes</option></select>
            <label>Life Insurance</label>
            <select name="lifeInsurance"><option>No</option><option>Yes</option></select>
            <div class="actions">
                <button class="secondary" onclick="resetHealth()">Reset</button>
                <button onclick="download('/api/health/pdf', healthForm(), 'Financial_Health_Report.pdf')">Download PDF</button>
                <button class="secondary" onclick="exportReport('health')">Save to exports</button>
            </div>
        </div>
        <div>
            <div class="card">
                <div class="score-total" id="health-total">0 / 30</div>
                <p><span class="badge" id="health-tier"></span> <span id="health-interpretation"></span></p>
                <p class="muted" id="health-ratios"></p>
            </div>
            <div class="card" id="health-factors"></div>
            <div class="card advisory">
                <h3>Advisory Note</h3>
                <p class="muted">This calculator provides an indicative overview of your financial health. Detailed financial planning should consider tax efficiency, risk profile, age, life goals, and other personal circumstances. Consult a certified financial advisor for personalized recommendations.</p>
            </div>
        </div>
    </div>
</section>

<section id="screen-portfolio" class="screen">
    <div class="grid-2">
        <div class="card" id="portfolio-form">
            <h2>Your Portfolio</h2>
            <div id="portfolio-inputs"></div>
            <div class="actions">
                <button class="secondary" onclick="resetPortfolio()">Reset</button>
                <button onclick="download('/api/portfolio/pdf', portfolioForm(), 'Portfolio_Analysis_Report.pdf')">Download PDF</button>
                <button class="secondary" onclick="download('/api/portfolio/csv', portfolioForm(), 'Portfolio_Analysis.csv')">Download CSV</button>
                <button class="secondary" onclick="exportReport('portfolio')">Save to exports</button>
            </div>
        </div>
        <div class="card">
            <h2>Ideal Asset Allocation</h2>
            <table id="ideal-table"></table>
        </div>
    </div>
    <div id="portfolio-empty" class="card muted">Enter your investment amounts to see the analysis.</div>
    <div id="portfolio-results" style="display:none">
        <div class="card">
            <p><strong>Total Investment:</strong> <span id="portfolio-total"></span></p>
            <p><strong>Risk Profile:</strong> <span class="badge" id="portfolio-risk"></span></p>
            <p class="muted" id="portfolio-risk-summary"></p>
        </div>
        <div class="grid-2">
            <div class="card chart"><h3>Your Current Portfolio</h3><div id="pie-actual"></div></div>
            <div class="card chart"><h3>Ideal Portfolio</h3><div id="pie-ideal"></div></div>
        </div>
        <div class="card">
            <h2>Portfolio Analysis &amp; Recommendations</h2>
            <table id="analysis-table"></table>
        </div>
        <div class="card">
            <h3>Key Recommendations</h3>
            <ul id="recommendations" style="margin-left:1.25rem"></ul>
        </div>
        <div class="card advisory">
            <h3>Important Disclaimer</h3>
            <p class="muted">This analysis is based on general investment principles and your stated portfolio. Actual investment decisions should consider your age, financial goals, risk tolerance, tax situation, and other personal factors. Please consult a certified financial advisor before making any investment decisions.</p>
        </div>
    </div>
</section>

<p id="message" class="muted"></p>
</div>

<script>
let cfg = null;
const tierColors = { excellent: 'var(--excellent)', good: 'var(--good)', average: 'var(--average)', poor: 'var(--poor)' };

function go(screen) {
    document.querySelectorAll('.screen').forEach(s => s.classList.remove('active'));
    document.getElementById('screen-' + screen).classList.add('active');
    document.getElementById('back').style.display = screen === 'home' ? 'none' : 'inline-block';
    if (screen === 'health') scoreHealth();
    if (screen === 'portfolio') analyzePortfolio();
}

function esc(s) {
    return String(s).replace(/[&<>"']/g, c => ({'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;',"'":'&#39;'}[c]));
}

async function postJSON(url, body) {
    const res = await fetch(url, { method: 'POST', headers: { 'Content-Type': 'application/json' }, body: JSON.stringify(body) });
    return { status: res.status, body: await res.json() };
}

function healthForm() {
    const f = {};
    document.querySelectorAll('#health-form [name]').forEach(el => { f[el.name] = el.value; });
    f.investments = {};
    document.querySelectorAll('#health-form [data-inv]').forEach(el => { f.investments[el.dataset.inv] = el.checked ? 'yes' : 'no'; });
    return f;
}

function fillHealthForm(f) {
    document.querySelectorAll('#health-form [name]').forEach(el => { el.value = f[el.name] || ''; });
    document.querySelectorAll('#health-form [data-inv]').forEach(el => {
        el.checked = ['yes', 'true', 'on', '1', 'y'].includes(String((f.investments || {})[el.dataset.inv]).toLowerCase());
    });
}

function renderHealth(rep) {
    const color = tierColors[rep.color_key];
    const total = document.getElementById('health-total');
    total.textContent = rep.total + ' / ' + rep.max_total;
    total.style.color = color;
    const tier = document.getElementById('health-tier');
    tier.textContent = rep.tier;
    tier.style.background = color;
    document.getElementById('health-interpretation').textContent = rep.interpretation;
    const r = rep.ratios;
    document.getElementById('health-ratios').textContent =
        'Savings ratio ' + r.savings_ratio.toFixed(1) + '% | Emergency cover ' + r.emergency_cover.toFixed(1) +
        ' months | Debt ratio ' + r.debt_ratio.toFixed(1) + '%';
    document.getElementById('health-factors').innerHTML = '<h3>Score Breakdown</h3>' + rep.factors.map(f =>
        '<div class="factor"><div class="factor-head"><span>' + esc(f.label) + '</span><span>' + f.score + '/5</span></div>' +
        '<div class="bar"><span style="width:' + (f.score * 20) + '%"></span></div></div>').join('');
}

async function scoreHealth() {
    const res = await postJSON('/api/health/score', healthForm());
    if (res.body.success) renderHealth(res.body.report);
}

async function resetHealth() {
    const res = await postJSON('/api/health/reset', {});
    fillHealthForm(res.body.form);
    renderHealth(res.body.report);
}

function portfolioForm() {
    const f = {};
    document.querySelectorAll('#portfolio-inputs input').forEach(el => { f[el.name] = el.value; });
    return f;
}

function resetPortfolio() {
    document.querySelectorAll('#portfolio-inputs input').forEach(el => { el.value = ''; });
    analyzePortfolio();
}

function pie(values) {
    const total = cfg.assets.reduce((s, a) => s + Math.max(values[a.asset] || 0, 0), 0);
    if (total <= 0) return '';
    const r = 90;
    let angle = 0, paths = '';
    cfg.assets.forEach(a => {
        const v = Math.max(values[a.asset] || 0, 0);
        if (v === 0) return;
        const frac = v / total;
        if (frac >= 0.9999) {
            paths += '<circle cx="' + r + '" cy="' + r + '" r="' + r + '" fill="' + a.color + '"/>';
            return;
        }
        const end = angle + frac * 2 * Math.PI;
        const x1 = r + r * Math.sin(angle), y1 = r - r * Math.cos(angle);
        const x2 = r + r * Math.sin(end), y2 = r - r * Math.cos(end);
        paths += '<path d="M' + r + ',' + r + ' L' + x1 + ',' + y1 + ' A' + r + ',' + r + ' 0 ' + (frac > 0.5 ? 1 : 0) +
            ',1 ' + x2 + ',' + y2 + ' Z" fill="' + a.color + '" stroke="#fff" stroke-width="2"/>';
        angle = end;
    });
    const legend = cfg.assets.map(a => '<li><span class="swatch" style="background:' + a.color + '"></span>' +
        esc(a.short_label) + ': ' + (values[a.asset] || 0).toFixed(1) + '%</li>').join('');
    return '<svg width="180" height="180" viewBox="0 0 180 180">' + paths + '</svg><br><ul class="legend">' + legend + '</ul>';
}

async function analyzePortfolio() {
    const res = await postJSON('/api/portfolio/analyze', portfolioForm());
    const empty = res.status === 422;
    document.getElementById('portfolio-empty').style.display = empty ? 'block' : 'none';
    document.getElementById('portfolio-results').style.display = empty ? 'none' : 'block';
    if (empty || !res.body.success) return;

    const p = res.body;
    document.getElementById('portfolio-total').textContent = p.total_formatted;
    const risk = document.getElementById('portfolio-risk');
    risk.textContent = p.risk_label + ' Investor';
    risk.style.background = p.risk_color;
    document.getElementById('portfolio-risk-summary').textContent = p.risk_summary;

    const actual = {}, ideal = {};
    p.allocations.forEach(a => { actual[a.asset] = a.actual_percent; ideal[a.asset] = a.ideal_percent; });
    document.getElementById('pie-actual').innerHTML = pie(actual);
    document.getElementById('pie-ideal').innerHTML = pie(ideal);

    document.getElementById('analysis-table').innerHTML =
        '<tr><th>Asset Class</th><th>Your Allocation</th><th>Ideal</th><th>Difference</th><th>Status</th><th></th></tr>' +
        p.allocations.map(a => '<tr><td>' + esc(a.label) + '</td><td>' + a.actual_percent.toFixed(1) + '%</td><td>' +
            a.ideal_percent + '%</td><td class="' + a.status + '">' + (a.difference_percent > 0 ? '+' : '') +
            a.difference_percent.toFixed(1) + '%</td><td class="status ' + a.status + '">' + a.status +
            '</td><td>' + esc(a.status_note) + '</td></tr>').join('');

    const recs = p.recommendations || [];
    document.getElementById('recommendations').innerHTML = recs.length
        ? recs.map(r => '<li>' + esc(r.text) + '</li>').join('')
        : '<li>Your portfolio is well balanced. No changes needed.</li>';
}

async function download(url, body, filename) {
    const res = await fetch(url, { method: 'POST', headers: { 'Content-Type': 'application/json' }, body: JSON.stringify(body) });
    if (!res.ok) {
        const err = await res.json();
        document.getElementById('message').textContent = err.error;
        return;
    }
    const blob = await res.blob();
    const a = document.createElement('a');
    a.href = URL.createObjectURL(blob);
    a.download = filename;
    a.click();
    URL.revokeObjectURL(a.href);
}

async function exportReport(kind) {
    const res = await postJSON('/api/export', { kind: kind, format: 'pdf', health: healthForm(), portfolio: portfolioForm() });
    document.getElementById('message').textContent = res.body.success ? res.body.message : res.body.error;
}

async function init() {
    const res = await fetch('/api/config');
    cfg = await res.json();
    fillHealthForm(cfg.health_form);

    document.getElementById('ideal-table').innerHTML =
        '<tr><th>Asset Class</th><th>Ideal Range</th><th>Purpose</th></tr>' +
        cfg.assets.map(a => '<tr><td>' + esc(a.label) + '</td><td>' + esc(a.range_label) + '</td><td>' + esc(a.purpose) + '</td></tr>').join('');
    document.getElementById('portfolio-inputs').innerHTML = cfg.assets.map(a =>
        '<label>' + esc(a.label) + ' (' + esc(cfg.currency.symbol) + ')</label><input type="text" name="' + a.asset + '" value="' +
        esc(cfg.portfolio_form[a.asset] || '') + '">').join('');

    document.getElementById('health-form').addEventListener('input', scoreHealth);
    document.getElementById('health-form').addEventListener('change', scoreHealth);
    document.getElementById('portfolio-inputs').addEventListener('input', analyzePortfolio);
}

init();
</script>
</body>
</html>
`
