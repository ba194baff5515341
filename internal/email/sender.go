// Package email delivers verification and password-reset mails over SMTP. It
// is a side-channel collaborator: callers log a failed send and move on.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/annguyen2k3/project-api-twitter/config"
)

const verifyEmailBody = `
<p>Hi {{.Name}},</p>
<p>Welcome! Please confirm your email address by clicking the link below:</p>
<p><a href="{{.Link}}">Verify my email</a></p>
<p>The link expires in 7 days. If you did not create an account, you can ignore this email.</p>
`

const forgotPasswordBody = `
<p>Hi {{.Name}},</p>
<p>We received a request to reset your password. Click the link below to continue:</p>
<p><a href="{{.Link}}">Reset my password</a></p>
<p>The link expires in 1 hour. If you did not request a reset, you can ignore this email.</p>
`

var (
	verifyEmailTmpl    = template.Must(template.New("verify_email").Parse(verifyEmailBody))
	forgotPasswordTmpl = template.Must(template.New("forgot_password").Parse(forgotPasswordBody))
)

type Sender struct {
	dialer    *gomail.Dialer
	from      string
	clientURL string
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:      cfg.MailFrom,
		clientURL: cfg.ClientURL,
	}
}

func (s *Sender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func (s *Sender) render(tmpl *template.Template, name, link string) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]string{"Name": name, "Link": link})
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

func (s *Sender) SendVerifyEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?email_verify_token=%s", s.clientURL, token)
	body, err := s.render(verifyEmailTmpl, name, link)
	if err != nil {
		return err
	}
	return s.send(to, "Verify your email address", body)
}

func (s *Sender) SendForgotPasswordEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?forgot_password_token=%s", s.clientURL, token)
	body, err := s.render(forgotPasswordTmpl, name, link)
	if err != nil {
		return err
	}
	return s.send(to, "Reset your password", body)
}
