package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender šalje poruke direktno preko SMTP servera sa PLAIN autentikacijom.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send šalje poruku. SMTP ne vraća ID poruke pa je prva vrednost uvek prazna.
// Kontekst se proverava pre slanja; samo slanje se ne može prekinuti.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	recipients := make([]string, 0, len(msg.To))
	for _, to := range msg.To {
		recipients = append(recipients, to.Email)
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	if err := smtp.SendMail(addr, auth, msg.From.Email, recipients, buildMIME(msg, recipients)); err != nil {
		return "", fmt.Errorf("smtp: slanje nije uspelo: %w", err)
	}
	return "", nil
}

// buildMIME sastavlja sirovu MIME poruku sa HTML telom.
func buildMIME(msg Message, recipients []string) []byte {
	var b strings.Builder

	if msg.From.Name != "" {
		fmt.Fprintf(&b, "From: %q <%s>\r\n", msg.From.Name, msg.From.Email)
	} else {
		fmt.Fprintf(&b, "From: %s\r\n", msg.From.Email)
	}
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ", "))
	if msg.ReplyTo != nil {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo.Email)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)

	return []byte(b.String())
}
