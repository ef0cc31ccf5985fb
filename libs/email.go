package libs

import (
	"bookmart/models"
	"bookmart/utils"
	"errors"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

// OrderMailer sends the order confirmation shown after checkout.
type OrderMailer interface {
	SendOrderConfirmation(to, name, orderNumber string, order *models.Order) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, user, pass, from string) (*EmailService, error) {
	if host == "" || user == "" || pass == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	return &EmailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}, nil
}

func (s *EmailService) SendOrderConfirmation(to, name, orderNumber string, order *models.Order) error {
	m := BuildOrderConfirmation(s.from, to, name, orderNumber, order)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}
	return nil
}

func BuildOrderConfirmation(from, to, name, orderNumber string, order *models.Order) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your BookMart order %s", orderNumber))

	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>",
			html.EscapeString(item.BookTitle), html.EscapeString(item.BookAuthor),
			item.Quantity, utils.FormatPrice(item.Subtotal))
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thank you for your order, %s!</h2>
    <p>Order number: <strong>%s</strong></p>
    <p>Status: %s</p>
    <table>
        <tr><th>Title</th><th>Author</th><th>Qty</th><th>Subtotal</th></tr>
        %s
    </table>
    <p>Total: <strong>%s</strong></p>
</body>
</html>`, html.EscapeString(name), orderNumber, order.Status, rows.String(), utils.FormatPrice(order.TotalAmount))

	m.SetBody("text/html", body)
	return m
}
