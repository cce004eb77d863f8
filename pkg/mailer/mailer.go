// Package mailer implements the outbound email send capabilities over SMTP.
// Each method renders one notification template and returns the message id
// recorded in the delivery log.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	mail "gopkg.in/mail.v2"

	"github.com/skycruzer/fleet-notify/internal/model"
)

// Provider identifies this sender in delivery-log entries.
const Provider = "smtp"

// Client sends templated notification emails through an SMTP relay. Sends
// are rate limited so a large batch cannot flood the relay.
type Client struct {
	dialer  *mail.Dialer
	from    string
	limiter *rate.Limiter
}

// NewClient creates an SMTP mailer. ratePerSecond bounds outbound sends;
// values <= 0 disable limiting.
func NewClient(smtpHost string, smtpPort int, username, password, from string, ratePerSecond int) *Client {
	dialer := mail.NewDialer(smtpHost, smtpPort, username, password)
	dialer.TLSConfig = &tls.Config{ServerName: smtpHost}

	limit := rate.Inf
	burst := 1
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
		burst = ratePerSecond
	}

	return &Client{
		dialer:  dialer,
		from:    from,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *Client) send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	m := mail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	// The relay does not hand back an id, so one is minted here for the
	// delivery log.
	return uuid.New().String(), nil
}

// SendCertificationExpiryAlert notifies about an expiring check.
func (c *Client) SendCertificationExpiryAlert(ctx context.Context, to string, data model.CertificationExpiryData) (string, error) {
	subject := fmt.Sprintf("Certification expiry: %s expires in %d days", data.CheckCode, data.DaysRemaining)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your <strong>%s</strong> check (%s) expires on %s — %d days remaining.</p><p>Please arrange renewal with Fleet Operations.</p>",
		data.PilotName, data.CheckCode, data.CheckDescription, data.ExpiryDate, data.DaysRemaining,
	)
	return c.send(ctx, to, subject, body)
}

// SendLeaveRequestNotification notifies approvers about a new leave request.
func (c *Client) SendLeaveRequestNotification(ctx context.Context, to string, data model.LeaveRequestData) (string, error) {
	subject := fmt.Sprintf("Leave request: %s (%s)", data.PilotName, data.LeaveType)
	body := fmt.Sprintf(
		"<p>%s (%s) has requested <strong>%s</strong> leave from %s to %s.</p><p>Roster period: %s</p>",
		data.PilotName, data.EmployeeID, data.LeaveType, data.StartDate, data.EndDate, data.RosterPeriod,
	)
	return c.send(ctx, to, subject, body)
}

// SendLeaveApprovalNotification notifies a pilot about a leave decision.
func (c *Client) SendLeaveApprovalNotification(ctx context.Context, to string, data model.LeaveApprovalData) (string, error) {
	decision := "declined"
	if data.Approved {
		decision = "approved"
	}

	subject := fmt.Sprintf("Leave request %s: %s", decision, data.LeaveType)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your %s leave from %s to %s has been <strong>%s</strong>.</p>",
		data.PilotName, data.LeaveType, data.StartDate, data.EndDate, decision,
	)
	if data.Comments != "" {
		body += fmt.Sprintf("<p>Comments: %s</p>", data.Comments)
	}
	return c.send(ctx, to, subject, body)
}

// SendSystemNotification delivers a generic announcement.
func (c *Client) SendSystemNotification(ctx context.Context, to string, data model.SystemNoticeData) (string, error) {
	body := fmt.Sprintf("<p>%s</p>", data.Message)
	if data.ActionURL != "" {
		body += fmt.Sprintf(`<p><a href="%s">View details</a></p>`, data.ActionURL)
	}
	return c.send(ctx, to, data.Title, body)
}

// SendWelcomeEmail greets a newly provisioned user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to string, data model.WelcomeData) (string, error) {
	body := fmt.Sprintf(
		"<p>Welcome %s,</p><p>Your %s account is ready.</p>",
		data.Name, data.Role,
	)
	if data.LoginURL != "" {
		body += fmt.Sprintf(`<p><a href="%s">Sign in</a></p>`, data.LoginURL)
	}
	return c.send(ctx, to, "Welcome to the Pilot Management System", body)
}

// SendPasswordResetEmail delivers a reset link.
func (c *Client) SendPasswordResetEmail(ctx context.Context, to string, data model.PasswordResetData) (string, error) {
	body := fmt.Sprintf(
		`<p>Dear %s,</p><p>A password reset was requested for your account. <a href="%s">Reset your password</a>.</p><p>If you did not request this, ignore this email.</p>`,
		data.Name, data.ResetURL,
	)
	return c.send(ctx, to, "Password reset request", body)
}
