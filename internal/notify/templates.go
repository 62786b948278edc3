package notify

import (
	"context"
	"fmt"

	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

// SendPaymentReceipt queues a receipt with the payment's coverage window.
func (s *Service) SendPaymentReceipt(ctx context.Context, email, name string, p payment.Payment) error {
	coverage := "valid on the payment date only"
	if p.HasCoverage() {
		coverage = fmt.Sprintf("valid from %s through %s",
			p.StartDate.Format(vigency.DateLayout),
			p.EndDate.Format(vigency.DateLayout))
	}

	subject := fmt.Sprintf("Payment received - %s", s.gymName)
	body := fmt.Sprintf(`Hi %s,

We received your payment. Thank you!

Type: %s
Amount: $%.0f
Method: %s
Coverage: %s

See you in class!

- %s`, name, p.PaymentType, p.Amount, p.PaymentMethod, coverage, s.gymName)

	return s.enqueue(ctx, Job{
		Type:    "payment_receipt",
		To:      email,
		Name:    name,
		Subject: subject,
		Body:    body,
	})
}

// SendInactivityReminder queues a we-miss-you note. A nil daysSinceLastVisit
// means the member has never attended.
func (s *Service) SendInactivityReminder(ctx context.Context, email, name string, daysSinceLastVisit *int) error {
	line := "We haven't seen you in class yet."
	if daysSinceLastVisit != nil {
		line = fmt.Sprintf("It's been %d days since your last visit.", *daysSinceLastVisit)
	}

	subject := fmt.Sprintf("We miss you at %s!", s.gymName)
	body := fmt.Sprintf(`Hi %s,

%s

Come back soon, your spot is waiting.

- %s`, name, line, s.gymName)

	return s.enqueue(ctx, Job{
		Type:    "inactivity",
		To:      email,
		Name:    name,
		Subject: subject,
		Body:    body,
	})
}
