package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"

	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/middleware"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/config"
)

const verificationSubject = "Weekly log verification request"

// verificationBodyTmpl renders the mail sent to supervisors. Each link works
// exactly once; using either one invalidates both.
var verificationBodyTmpl = template.Must(template.New("verification").Parse(`<html>
<body>
<p>Hello,</p>
<p>{{.StudentName}} ({{.StudentEmail}}) submitted a weekly log for period <strong>{{.PeriodKey}}</strong> and listed you as supervisor.</p>
<blockquote style="white-space: pre-wrap; border-left: 3px solid #ccc; padding-left: 1em;">{{.Content}}</blockquote>
<p>
<a href="{{.ApproveLink}}">Approve this log</a><br>
<a href="{{.RejectLink}}">Reject this log</a>
</p>
<p>Each link can be used once. Clicking either link finalizes the decision.</p>
</body>
</html>
`))

// SMTPMailer sends verification requests over plain SMTP. When no host is
// configured it degrades to logging the mail, which keeps local development
// working without a mail server.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates the mail dispatcher from configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

var _ portssvc.VerificationMailer = (*SMTPMailer)(nil)

// SendVerificationRequest renders and dispatches one verification mail.
func (m *SMTPMailer) SendVerificationRequest(ctx context.Context, mail portssvc.VerificationMail) error {
	var body bytes.Buffer
	if err := verificationBodyTmpl.Execute(&body, mail); err != nil {
		return fmt.Errorf("failed to render verification mail: %w", err)
	}

	if m.host == "" {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Info("SMTP not configured, verification mail not dispatched",
			slog.String("recipient", mail.Recipient),
			slog.String("period_key", mail.PeriodKey))
		return nil
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", mail.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", verificationSubject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.from, []string{mail.Recipient}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}
	return nil
}
