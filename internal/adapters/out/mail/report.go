package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"fanstore/internal/core/application/usecases/queries"
)

var reportTemplate = template.Must(template.New("salesReport").Parse(`<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Sales report</h2>
  <p>{{.From}} &ndash; {{.To}}</p>
  <table cellpadding="4">
    <tr><td>Orders</td><td><strong>{{.TotalOrders}}</strong></td></tr>
    <tr><td>Delivered</td><td><strong>{{.DeliveredOrders}}</strong></td></tr>
    <tr><td>Revenue</td><td><strong>{{.Revenue}}</strong></td></tr>
  </table>
  {{if .Statuses}}<table cellpadding="4">
  {{range .Statuses}}<tr><td>{{.Status}}</td><td>{{.Count}}</td></tr>
  {{end}}</table>{{end}}
</body>
</html>`))

type reportStatusRow struct {
	Status string
	Count  int64
}

type reportData struct {
	From            string
	To              string
	TotalOrders     int64
	DeliveredOrders int64
	Revenue         string
	Statuses        []reportStatusRow
}

// ReportSubject builds the subject line for a sales report email.
func ReportSubject(report queries.GetSalesReportQueryResponse) string {
	return fmt.Sprintf("Sales report for %s", report.From.Format("2006-01-02"))
}

// RenderSalesReportEmail renders the HTML body of a sales report.
func RenderSalesReportEmail(report queries.GetSalesReportQueryResponse) (string, error) {
	statuses := make([]reportStatusRow, 0, len(report.OrdersByStatus))
	for status, count := range report.OrdersByStatus {
		statuses = append(statuses, reportStatusRow{Status: status, Count: count})
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Status < statuses[j].Status
	})

	var body bytes.Buffer
	err := reportTemplate.Execute(&body, reportData{
		From:            report.From.Format("2006-01-02 15:04"),
		To:              report.To.Format("2006-01-02 15:04"),
		TotalOrders:     report.TotalOrders,
		DeliveredOrders: report.DeliveredOrders,
		Revenue:         report.Revenue,
		Statuses:        statuses,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render sales report email: %w", err)
	}

	return body.String(), nil
}
