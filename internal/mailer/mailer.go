package mailer

import (
	"fmt"

	"leave-management-backend/config"
	"leave-management-backend/internal/model"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends best-effort notification mail. With no SMTP_HOST configured it
// silently does nothing, so local setups work without a mail server.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return &Mailer{}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// SendLeaveDecision mails the request owner the review outcome. Failures are
// logged, never surfaced: the decision is already persisted.
func (m *Mailer) SendLeaveDecision(leave *model.LeaveRequest) {
	if m.dialer == nil {
		return
	}

	subject := fmt.Sprintf("Your %s leave request was %s", leave.LeaveType, leave.Status)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour leave request for %s to %s (%d days) was %s.",
		leave.Employee.Name,
		leave.StartDate.Format("2006-01-02"),
		leave.EndDate.Format("2006-01-02"),
		leave.TotalDays,
		leave.Status,
	)
	if leave.ReviewComment != "" {
		body += fmt.Sprintf("\n\nReviewer comment: %s", leave.ReviewComment)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", leave.Employee.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("leave_id", leave.ID).Error("Failed to send decision mail")
	}
}
