package utils

import (
	"fmt"
	"html"
	"log"
	"strings"

	"travel-backend/models"

	"gopkg.in/gomail.v2"
)

// InquiryMailer notifies the sales desk about new leads over SMTP.
type InquiryMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	To       string
}

func safeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}

// BuildInquiryMessage renders the notification as plain text with an HTML
// alternative.
func (m *InquiryMailer) BuildInquiryMessage(inq models.Inquiry) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.Username, m.FromName)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Reply-To", safeHeader(inq.Email))
	msg.SetHeader("Subject", fmt.Sprintf("New inquiry from %s (%s)", safeHeader(inq.Name), safeHeader(inq.Source)))

	plainBody := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nSource: %s\nReceived: %s\n\n%s\n",
		inq.Name, inq.Email, inq.Phone, inq.Source,
		inq.CreatedAt.Format("02 Jan 2006 15:04"), inq.Message,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>New inquiry</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
td { padding:4px 12px 4px 0; vertical-align:top; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>New inquiry</h2>
    <table>
      <tr><td><strong>Name</strong></td><td>%s</td></tr>
      <tr><td><strong>Email</strong></td><td>%s</td></tr>
      <tr><td><strong>Phone</strong></td><td>%s</td></tr>
      <tr><td><strong>Source</strong></td><td>%s</td></tr>
    </table>
    <p>%s</p>
  </div>
</div>
</body>
</html>`,
		html.EscapeString(inq.Name), html.EscapeString(inq.Email),
		html.EscapeString(inq.Phone), html.EscapeString(inq.Source),
		html.EscapeString(inq.Message),
	)

	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)
	return msg
}

func (m *InquiryMailer) NotifyInquiry(inq models.Inquiry) error {
	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := d.DialAndSend(m.BuildInquiryMessage(inq)); err != nil {
		log.Printf("❌ Failed to send inquiry email for %s: %v", inq.Email, err)
		return err
	}
	log.Printf("✅ Inquiry email sent to %s", m.To)
	return nil
}
