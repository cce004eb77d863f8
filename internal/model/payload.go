// Typed template payloads, one variant per notification type. The wire form
// of template_data is an open key/value map; the dispatcher reconstructs the
// variant matching notification_type so the processor never touches untyped
// data.
package model

import (
	"encoding/json"
	"fmt"
)

// CertificationExpiryData alerts a pilot about an expiring check.
type CertificationExpiryData struct {
	PilotName        string `json:"pilot_name" validate:"required"`
	EmployeeID       string `json:"employee_id"`
	CheckCode        string `json:"check_code" validate:"required"`
	CheckDescription string `json:"check_description"`
	ExpiryDate       string `json:"expiry_date" validate:"required"`
	DaysRemaining    int    `json:"days_remaining"`
}

// LeaveRequestData notifies approvers about a submitted leave request.
type LeaveRequestData struct {
	PilotName    string `json:"pilot_name" validate:"required"`
	EmployeeID   string `json:"employee_id"`
	LeaveType    string `json:"leave_type" validate:"required"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
	RosterPeriod string `json:"roster_period"`
}

// LeaveApprovalData notifies a pilot about a leave decision.
type LeaveApprovalData struct {
	PilotName string `json:"pilot_name" validate:"required"`
	LeaveType string `json:"leave_type" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Approved  bool   `json:"approved"`
	Comments  string `json:"comments"`
}

// SystemNoticeData is the generic announcement payload.
type SystemNoticeData struct {
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	ActionURL string `json:"action_url"`
}

// WelcomeData greets a newly provisioned user.
type WelcomeData struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
	LoginURL string `json:"login_url"`
}

// PasswordResetData carries the reset link for an account.
type PasswordResetData struct {
	Name     string `json:"name" validate:"required"`
	ResetURL string `json:"reset_url" validate:"required"`
}

// DecodeTemplateData reconstructs a typed payload from the record's open
// template_data map. dst must be a pointer to one of the payload variants.
func (n QueuedNotification) DecodeTemplateData(dst any) error {
	raw, err := json.Marshal(n.TemplateData)
	if err != nil {
		return fmt.Errorf("marshal template data: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode template data: %w", err)
	}

	return nil
}
