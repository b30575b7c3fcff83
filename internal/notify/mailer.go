// Package notify sends best-effort mail: a greeting on registration and a
// scheduled digest of current postings. Failures are logged, never surfaced
// to API callers.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/techforing/jobboard/internal/config"
	"github.com/techforing/jobboard/internal/models"
)

// Mailer handles sending emails via SMTP
type Mailer struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewMailer creates a new mailer
func NewMailer(cfg *config.Config, logger *logrus.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether SMTP is configured
func (m *Mailer) Enabled() bool {
	return m.cfg.SMTPHost != ""
}

// SendWelcome greets a freshly registered user
func (m *Mailer) SendWelcome(to string) error {
	e := email.NewEmail()
	e.From = m.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to the job board"
	e.Text = []byte(fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your account has been created. Sign in to browse openings\n"+
			"and post new positions.\n\nBest regards,\nThe job board team\n",
		to,
	))
	return m.send(e)
}

// SendJobDigest mails the current postings to each recipient
func (m *Mailer) SendJobDigest(recipients []string, jobs []models.Job) error {
	if len(recipients) == 0 || len(jobs) == 0 {
		return nil
	}
	body := DigestBody(jobs)
	for _, to := range recipients {
		e := email.NewEmail()
		e.From = m.cfg.SenderEmail
		e.To = []string{to}
		e.Subject = fmt.Sprintf("Job digest: %d open positions", len(jobs))
		e.Text = []byte(body)
		if err := m.send(e); err != nil {
			return err
		}
	}
	return nil
}

// DigestBody formats postings grouped under their category names.
func DigestBody(jobs []models.Job) string {
	var b strings.Builder
	b.WriteString("Currently open positions:\n")
	lastCategory := ""
	for _, j := range jobs {
		if j.Category.Name != lastCategory {
			fmt.Fprintf(&b, "\n%s\n", j.Category.Name)
			lastCategory = j.Category.Name
		}
		fmt.Fprintf(&b, "  - %s (min %d yrs experience)\n", j.Title, j.MinYOE)
	}
	b.WriteString("\nBest regards,\nThe job board team\n")
	return b.String()
}

func (m *Mailer) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		m.logger.Errorf("Failed to send email to %v: %v", e.To, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.logger.Infof("Email sent to %v: %s", e.To, e.Subject)
	return nil
}
