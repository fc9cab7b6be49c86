// Package mail renders and delivers order lifecycle emails over SMTP.
package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
)

// statusLines maps each notifiable status to the sentence the customer sees.
var statusLines = map[order.Status]string{
	order.StatusPending:     "We received your order and are waiting for payment confirmation.",
	order.StatusPaid:        "Your payment was confirmed. We are preparing your order for shipping.",
	order.StatusShipped:     "Your order is on its way with one of our riders.",
	order.StatusDelivered:   "Your order has been delivered. Enjoy!",
	order.StatusUndelivered: "We could not deliver your order. Our team will contact you to arrange a new attempt.",
	order.StatusCancelled:   "Your order has been cancelled.",
}

var statusTemplate = template.Must(template.New("orderStatus").Parse(`<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Hi {{.Name}},</h2>
  <p>{{.Line}}</p>
  <table cellpadding="4">
    <tr><td>Order</td><td><strong>{{.OrderID}}</strong></td></tr>
    <tr><td>Status</td><td><strong>{{.Status}}</strong></td></tr>
    <tr><td>Total</td><td><strong>{{.Total}}</strong></td></tr>
  </table>
  {{if .Items}}<ul>
  {{range .Items}}<li>{{.Quantity}} &times; {{.Name}}{{if .Variant}} ({{.Variant}}){{end}} @ {{.UnitPrice}}</li>
  {{end}}</ul>{{end}}
  <p>Thanks for shopping with FanStore.</p>
</body>
</html>`))

type templateItem struct {
	Name      string
	Variant   string
	Quantity  int
	UnitPrice string
}

type templateData struct {
	Name    string
	Line    string
	OrderID string
	Status  string
	Total   string
	Items   []templateItem
}

// StatusSubject builds the subject line for a status notification.
func StatusSubject(aggregate *order.Order) string {
	return fmt.Sprintf("Your order is now %s", aggregate.Status())
}

// RenderStatusEmail renders the HTML body of a status notification for the
// given customer.
func RenderStatusEmail(aggregate *order.Order, customer *user.User) (string, error) {
	line, ok := statusLines[aggregate.Status()]
	if !ok {
		return "", fmt.Errorf("no email template for status %s", aggregate.Status())
	}

	items := make([]templateItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, templateItem{
			Name:      item.Name(),
			Variant:   item.Variant(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
		})
	}

	var buf bytes.Buffer
	err := statusTemplate.Execute(&buf, templateData{
		Name:    customer.Name(),
		Line:    line,
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
		Total:   aggregate.Total().String(),
		Items:   items,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
