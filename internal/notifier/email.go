package notifier

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"jobdigest/internal/model"
	"jobdigest/internal/report"
)

// ErrNoRecipient means email delivery was requested without a recipient
// address configured.
var ErrNoRecipient = errors.New("email recipient not configured")

// Ensure EmailNotifier implements model.Notifier.
var _ model.Notifier = (*EmailNotifier)(nil)

// EmailNotifier sends the digest as an HTML email over SMTP with
// STARTTLS. Credentials use plain auth, which is what Gmail app
// passwords expect.
type EmailNotifier struct {
	host      string
	port      int
	username  string
	password  string
	recipient string
	now       func() time.Time

	// sendMail is swapped out in tests.
	sendMail func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailNotifier returns a notifier that emails the digest to recipient.
func NewEmailNotifier(host string, port int, username, password, recipient string) *EmailNotifier {
	return &EmailNotifier{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		recipient: recipient,
		now:       time.Now,
		sendMail:  smtp.SendMail,
	}
}

// Notify renders the digest and sends it as a single HTML email. An
// empty batch still sends, so the recipient knows the run happened.
func (n *EmailNotifier) Notify(jobs []model.Job) error {
	if strings.TrimSpace(n.recipient) == "" {
		return ErrNoRecipient
	}

	now := n.now()
	html, err := report.Render(jobs, now)
	if err != nil {
		return err
	}

	msg := buildMessage(n.username, n.recipient, report.Subject(len(jobs), now), html)
	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	auth := smtp.PlainAuth("", n.username, n.password, n.host)

	if err := n.sendMail(addr, auth, n.username, []string{n.recipient}, msg); err != nil {
		return fmt.Errorf("sending digest email: %w", err)
	}
	return nil
}

// SendTest sends a short plain message to verify SMTP credentials and
// connectivity without running the pipeline.
func (n *EmailNotifier) SendTest() error {
	if strings.TrimSpace(n.recipient) == "" {
		return ErrNoRecipient
	}

	body := "<p>This is a test message from jobdigest. Your email settings work.</p>"
	msg := buildMessage(n.username, n.recipient, "jobdigest test message", body)
	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	auth := smtp.PlainAuth("", n.username, n.password, n.host)

	if err := n.sendMail(addr, auth, n.username, []string{n.recipient}, msg); err != nil {
		return fmt.Errorf("sending test email: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
