package web

const filmsHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Highest-Grossing Films</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Inter', -apple-system, system-ui, sans-serif; background: #0f172a; color: #e2e8f0; min-height: 100vh; padding: 2rem; }
        h1 { font-size: 1.5rem; margin-bottom: 1rem; background: linear-gradient(135deg, #38bdf8, #818cf8); background-clip: text; -webkit-background-clip: text; -webkit-text-fill-color: transparent; }
        #titleFilter { width: 100%; max-width: 420px; padding: 0.6rem 1rem; margin-bottom: 1rem; border-radius: 8px; border: 1px solid #334155; background: #1e293b; color: #e2e8f0; font-size: 0.95rem; }
        #titleFilter:focus { outline: none; border-color: #38bdf8; }
        table { width: 100%; border-collapse: collapse; background: #1e293b; border: 1px solid #334155; border-radius: 12px; overflow: hidden; }
        th { padding: 0.75rem 1rem; text-align: left; font-size: 0.75rem; text-transform: uppercase; letter-spacing: 0.05em; color: #94a3b8; background: #273449; cursor: pointer; user-select: none; }
        th:hover { color: #e2e8f0; }
        th.sorted { color: #38bdf8; }
        td { padding: 0.6rem 1rem; border-top: 1px solid #334155; font-size: 0.9rem; }
        td a { color: #38bdf8; text-decoration: none; }
        td a:hover { text-decoration: underline; }
        .footer { text-align: center; padding: 1rem; color: #475569; font-size: 0.75rem; }
    </style>
</head>
<body>
    <h1>Highest-Grossing Films</h1>
    <input type="text" id="titleFilter" placeholder="Filter by title...">
    <table id="films">
        <thead>
            <tr>
                <th>Title</th>
                <th>Year</th>
                <th>Director</th>
                <th>Box Office</th>
                <th>Country</th>
            </tr>
        </thead>
        <tbody></tbody>
    </table>
    <div class="footer">filmboard</div>
    <script>
        function render(tbody, films) {
            tbody.innerHTML = '';
            for (const film of films) {
                const tr = document.createElement('tr');

                const titleCell = document.createElement('td');
                const link = document.createElement('a');
                link.href = film.url || '#';
                link.textContent = film.title;
                titleCell.appendChild(link);
                tr.appendChild(titleCell);

                for (const key of ['release_year', 'director', 'box_office', 'country']) {
                    const td = document.createElement('td');
                    td.textContent = film[key] == null ? '' : film[key];
                    tr.appendChild(td);
                }
                tbody.appendChild(tr);
            }
        }

        // Filter hides rows via display:none; nothing is removed from the
        // DOM and the current sort order is untouched.
        function applyFilter(tbody, query) {
            const q = query.toLowerCase();
            for (const row of tbody.rows) {
                const title = row.cells[0].textContent.toLowerCase();
                row.style.display = title.includes(q) ? '' : 'none';
            }
        }

        // Sort state lives in a per-table object keyed by column index, not
        // in a module-level variable.
        function sortByColumn(table, state, index) {
            const ascending = !(state.ascending[index] ?? false);
            state.ascending[index] = ascending;

            const tbody = table.tBodies[0];
            const rows = Array.from(tbody.rows);
            rows.sort((a, b) => {
                const cmp = a.cells[index].textContent.localeCompare(b.cells[index].textContent);
                return ascending ? cmp : -cmp;
            });
            for (const row of rows) tbody.appendChild(row);

            const headers = table.tHead.rows[0].cells;
            for (let i = 0; i < headers.length; i++) {
                headers[i].classList.toggle('sorted', i === index);
            }
        }

        async function init() {
            const resp = await fetch('grossing_films.json');
            const films = await resp.json();

            const table = document.getElementById('films');
            const tbody = table.tBodies[0];
            const state = { ascending: {} };

            render(tbody, films);

            const filter = document.getElementById('titleFilter');
            filter.addEventListener('input', () => applyFilter(tbody, filter.value));

            const headers = table.tHead.rows[0].cells;
            for (let i = 0; i < headers.length; i++) {
                headers[i].addEventListener('click', () => sortByColumn(table, state, i));
            }
        }

        init();
    </script>
</body>
</html>`
