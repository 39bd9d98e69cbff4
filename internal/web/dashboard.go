package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/fuelview/fuelview/internal/render"
	"github.com/fuelview/fuelview/internal/selector"
)

const pageTitle = "KMPL vs Estimated Fuel Consumed Explorer"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; display: flex; min-height: 100vh; }
aside { width: 260px; padding: 20px; background: #f3f4f6; }
main { flex: 1; padding: 20px 40px; }
table { border-collapse: collapse; }
th, td { padding: 4px 12px; border-bottom: 1px solid #ddd; }
td.num { text-align: right; }
.info { background: #e0f2fe; padding: 12px; }
.error { background: #fee2e2; padding: 12px; }
</style>
</head>
<body>
<aside>
<form method="get" action="/">
<label for="vehicle">Vehicle Number</label><br>
<input id="vehicle" name="vehicle" list="vehicles" value="{{.Vehicle}}" autofocus>
<datalist id="vehicles">{{range .Vehicles}}<option value="{{.}}">{{end}}</datalist>
<button type="submit">Show</button>
</form>
</aside>
<main>
<h1>{{.Title}}</h1>
<p>Enter a <b>Vehicle Number</b> to see how its fuel consumption (Est_fuel_Consumed)
varies with kilometers-per-liter (Last_Tnx_Kmpl).</p>
{{if not .Vehicle}}
<p class="info">Enter a vehicle number in the sidebar to get started.</p>
{{else if not .Rows}}
<p class="error">{{.NotFound}}</p>
{{else}}
<img src="{{.ChartURL}}" alt="{{.ChartTitle}}" width="960" height="540">
<h2>Underlying Data</h2>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>
<td>{{index . 0}}</td><td class="num" title="{{index . 1}}">{{index . 1}}</td><td class="num" title="{{index . 2}}">{{index . 2}}</td><td>{{index . 3}}</td>
</tr>{{end}}
</table>
{{end}}
</main>
</body>
</html>
`))

type dashboardView struct {
	Title      string
	Vehicle    string
	Vehicles   []string
	NotFound   string
	ChartTitle string
	ChartURL   string
	Headers    []string
	Rows       [][]string
}

// Dashboard renders the HTML page: a prompt without a vehicle, a
// no-records message for an unknown one, otherwise chart and table.
// GET /?vehicle=...
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	vehicle := selector.NormalizeInput(r.URL.Query().Get("vehicle"), h.opts.CaseInsensitive)

	view := dashboardView{
		Title:    pageTitle,
		Vehicle:  vehicle,
		Vehicles: selector.Vehicles(h.records, h.opts.CaseInsensitive),
		Headers:  render.TableHeaders,
	}
	if vehicle != "" {
		records := selector.Query(h.records, vehicle, h.opts)
		for _, rec := range records {
			view.Rows = append(view.Rows, render.Row(rec))
		}
		view.NotFound = noRecordsMessage(vehicle)
		view.ChartTitle = render.ChartTitle(vehicle)
		view.ChartURL = "/api/vehicles/" + url.PathEscape(vehicle) + "/chart.png"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, view); err != nil {
		h.logger.Error("dashboard render failed", zap.Error(err))
	}
}

func noRecordsMessage(vehicle string) string {
	return fmt.Sprintf("No records found for vehicle %s.", vehicle)
}
