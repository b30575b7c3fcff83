package notify

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/techforing/jobboard/internal/models"
)

// RecipientSource lists the addresses the digest goes to.
type RecipientSource interface {
	ListUserEmails(ctx context.Context) ([]string, error)
}

// JobSource lists the postings the digest covers.
type JobSource interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
}

// Digest mails the list of open postings to every registered user.
type Digest struct {
	mailer     *Mailer
	recipients RecipientSource
	jobs       JobSource
	logger     *logrus.Logger
}

// NewDigest wires the digest job
func NewDigest(mailer *Mailer, recipients RecipientSource, jobs JobSource, logger *logrus.Logger) *Digest {
	return &Digest{mailer: mailer, recipients: recipients, jobs: jobs, logger: logger}
}

// Run sends one digest round. Errors are logged; the next scheduled run
// simply tries again.
func (d *Digest) Run(ctx context.Context) {
	emails, err := d.recipients.ListUserEmails(ctx)
	if err != nil {
		d.logger.Errorf("Digest: listing recipients failed: %v", err)
		return
	}
	jobs, err := d.jobs.ListJobs(ctx)
	if err != nil {
		d.logger.Errorf("Digest: listing jobs failed: %v", err)
		return
	}
	if err := d.mailer.SendJobDigest(emails, jobs); err != nil {
		d.logger.Errorf("Digest: sending failed: %v", err)
		return
	}
	d.logger.Infof("Digest sent to %d users covering %d jobs", len(emails), len(jobs))
}
