package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/homebase-labs/seller-marketplace/internal/models"
	sendgridgo "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier mails low-stock alerts to the ops inbox after an order drains a
// listing below the alert threshold.
type Notifier struct {
	client     *sendgridgo.Client
	fromEmail  string
	fromName   string
	alertEmail string
}

func NewNotifier(apiKey, fromEmail, fromName, alertEmail string) *Notifier {
	return &Notifier{
		client:     sendgridgo.NewSendClient(apiKey),
		fromEmail:  fromEmail,
		fromName:   fromName,
		alertEmail: alertEmail,
	}
}

// GetSendGridClient exposes the underlying client so callers can redirect the
// request base URL, mainly for tests.
func (n *Notifier) GetSendGridClient() *sendgridgo.Client {
	return n.client
}

func (n *Notifier) NotifyLowStock(ctx context.Context, alerts []models.LowStockAlert) error {

	if len(alerts) == 0 {
		return nil
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail("", n.alertEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = fmt.Sprintf("Low stock: %d listing(s) below threshold", len(alerts))
	message.AddPersonalizations(personalization)

	var body strings.Builder

	body.WriteString("The following listings dropped below the low-stock threshold:\n\n")

	for _, alert := range alerts {
		fmt.Fprintf(&body, "- %s (listing %s, seller %s): %d left\n",
			alert.ProductName, alert.ListingID, alert.SellerID, alert.Stock)
	}

	message.AddContent(mail.NewContent("text/plain", body.String()))

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
