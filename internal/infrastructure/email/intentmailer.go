// Package email delivers notification intents over SMTP.
package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"warrantly/internal/domain/notification"
	"warrantly/internal/infrastructure/cache"
	"warrantly/internal/shared/logger"
	"warrantly/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// IntentMailer implements notification.Dispatcher over SMTP. Each intent
// becomes one message with every recipient on the To line; the dedupe key is
// checked against Redis first so replayed events stay quiet.
type IntentMailer struct {
	config    SMTPConfig
	dialer    *gomail.Dialer
	dedup     *cache.IntentDeduplicator
	dedupeTTL time.Duration
	markdown  markdown.Service
	logger    logger.Interface
}

func NewIntentMailer(
	config SMTPConfig,
	dedup *cache.IntentDeduplicator,
	dedupeTTL time.Duration,
	markdownService markdown.Service,
	logger logger.Interface,
) *IntentMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &IntentMailer{
		config:    config,
		dialer:    dialer,
		dedup:     dedup,
		dedupeTTL: dedupeTTL,
		markdown:  markdownService,
		logger:    logger,
	}
}

// Dispatch sends each intent independently; one failed send does not stop the
// rest. The last error is returned so callers can log it.
func (m *IntentMailer) Dispatch(ctx context.Context, intents []notification.Intent) error {
	var lastErr error
	for _, intent := range intents {
		if intent.IsEmpty() {
			continue
		}

		if intent.DedupeKey != "" && m.dedup != nil {
			acquired, err := m.dedup.TryAcquire(ctx, intent.DedupeKey, m.dedupeTTL)
			if err != nil {
				// Redis being down must not silence notifications.
				m.logger.Warnw("notification dedupe check failed, sending anyway",
					"dedupe_key", intent.DedupeKey, "error", err)
			} else if !acquired {
				m.logger.Debugw("suppressing duplicate notification", "dedupe_key", intent.DedupeKey)
				continue
			}
		}

		if err := m.send(intent); err != nil {
			m.logger.Errorw("failed to send notification email",
				"template_id", intent.TemplateID,
				"recipients", len(intent.Recipients),
				"error", err,
			)
			if intent.DedupeKey != "" && m.dedup != nil {
				if clearErr := m.dedup.Clear(ctx, intent.DedupeKey); clearErr != nil {
					m.logger.Warnw("failed to release dedupe key after send failure",
						"dedupe_key", intent.DedupeKey, "error", clearErr)
				}
			}
			lastErr = err
		}
	}
	return lastErr
}

func (m *IntentMailer) send(intent notification.Intent) error {
	subject, htmlBody, plainBody := m.render(intent)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.FromAddress, m.config.FromName)
	msg.SetHeader("To", intent.Recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *IntentMailer) render(intent notification.Intent) (subject, htmlBody, plainBody string) {
	p := intent.Payload

	switch intent.TemplateID {
	case notification.TemplateClaimCreatedCustomer:
		subject = fmt.Sprintf("We received your warranty claim %s", p["claim_number"])
		plainBody = fmt.Sprintf(`Hi %s,

We received your warranty claim %s for order %s and our team will review it shortly.

You will hear from us as soon as the review is done.
`, p["customer_name"], p["claim_number"], p["order_id"])
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Claim Received</h2>
			<p>Hi %s,</p>
			<p>We received your warranty claim <strong>%s</strong> for order %s and our team will review it shortly.</p>
			<p>You will hear from us as soon as the review is done.</p>
		</body>
		</html>
	`, p["customer_name"], p["claim_number"], p["order_id"])

	case notification.TemplateClaimCreatedInternal:
		subject = fmt.Sprintf("New warranty claim %s awaiting review", p["claim_number"])
		plainBody = fmt.Sprintf(`A new warranty claim needs review.

Claim:    %s
Order:    %s
Customer: %s
Category: %s
`, p["claim_number"], p["order_id"], p["customer_name"], p["category_name"])
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>New Warranty Claim</h2>
			<p>A new warranty claim needs review.</p>
			<ul>
				<li>Claim: <strong>%s</strong></li>
				<li>Order: %s</li>
				<li>Customer: %s</li>
				<li>Category: %s</li>
			</ul>
		</body>
		</html>
	`, p["claim_number"], p["order_id"], p["customer_name"], p["category_name"])

	case notification.TemplateClaimStatusChanged:
		subject = fmt.Sprintf("Claim %s: %s -> %s", p["claim_number"], p["from_status"], p["to_status"])
		// Notes are operator-written markdown; render and sanitize before
		// embedding in the HTML body.
		noteHTML, err := m.markdown.ToHTMLSanitized(p["note"])
		if err != nil {
			noteHTML = m.markdown.Sanitize(p["note"])
		}
		plainBody = fmt.Sprintf(`Claim %s moved from %s to %s.

Note:
%s
`, p["claim_number"], p["from_status"], p["to_status"], p["note"])
		htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Claim Status Changed</h2>
			<p>Claim <strong>%s</strong> moved from %s to %s.</p>
			<div>%s</div>
		</body>
		</html>
	`, p["claim_number"], p["from_status"], p["to_status"], noteHTML)

	default:
		subject = fmt.Sprintf("Warranty claim update %s", p["claim_number"])
		plainBody = fmt.Sprintf("Claim %s was updated.\n", p["claim_number"])
		htmlBody = fmt.Sprintf("<html><body><p>Claim %s was updated.</p></body></html>", p["claim_number"])
	}

	return subject, htmlBody, plainBody
}
