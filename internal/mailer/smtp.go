package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/emlakofis/backend/internal/model"
	"github.com/jordan-wright/email"
)

// SMTPConfig holds the transactional relay settings.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	SSL  bool
	From string
	To   string // fixed operator address
}

// SMTPNotifier sends contact notifications through an SMTP relay.
type SMTPNotifier struct {
	cfg SMTPConfig
	loc *time.Location
}

// NewSMTPNotifier creates a notifier for the given relay configuration.
// Timestamps in the email body are rendered in Europe/Istanbul.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		loc = time.UTC
	}
	return &SMTPNotifier{cfg: cfg, loc: loc}
}

var htmlTmpl = template.Must(template.New("contact").Parse(`<h2>Yeni iletişim formu mesajı</h2>
<table>
  <tr><td><b>İsim</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>E-posta</b></td><td>{{.Email}}</td></tr>
  {{if .Phone}}<tr><td><b>Telefon</b></td><td>{{.Phone}}</td></tr>{{end}}
  <tr><td><b>Konu</b></td><td>{{.Subject}}</td></tr>
  <tr><td><b>Tarih</b></td><td>{{.Date}}</td></tr>
</table>
<p>{{.Message}}</p>
`))

type templateData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Date    string
}

// NotifyContact implements Notifier. The underlying SMTP client has no
// context support; ctx is accepted for interface symmetry only.
func (n *SMTPNotifier) NotifyContact(_ context.Context, msg *model.ContactMessage) error {
	e, err := n.compose(msg)
	if err != nil {
		return fmt.Errorf("mailer: compose: %w", err)
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Pass, n.cfg.Host)

	if n.cfg.SSL {
		err = e.SendWithTLS(addr, auth, nil)
	} else {
		err = e.Send(addr, auth)
	}
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

// compose builds the notification email with HTML and plain-text bodies,
// ReplyTo pointing at the submitter.
func (n *SMTPNotifier) compose(msg *model.ContactMessage) (*email.Email, error) {
	date := msg.CreatedAt.In(n.loc).Format("02.01.2006 15:04")

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, templateData{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Message,
		Date:    date,
	}); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Yeni iletişim formu mesajı\n\nİsim: %s\nE-posta: %s\nTelefon: %s\nKonu: %s\nTarih: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Subject, date, msg.Message)

	e := email.NewEmail()
	e.From = n.cfg.From
	e.To = []string{n.cfg.To}
	e.ReplyTo = []string{fmt.Sprintf("%s <%s>", msg.Name, msg.Email)}
	e.Subject = "[İletişim] " + msg.Subject
	e.Text = []byte(text)
	e.HTML = html.Bytes()
	return e, nil
}
