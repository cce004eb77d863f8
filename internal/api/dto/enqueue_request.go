package dto

// EnqueueRequest is the payload for queueing a single notification.
type EnqueueRequest struct {
	UserID           string         `json:"user_id"`
	EmailAddress     string         `json:"email_address" validate:"required,email"`
	NotificationType string         `json:"notification_type" validate:"required"`
	Subject          string         `json:"subject"`
	TemplateName     string         `json:"template_name"`
	TemplateData     map[string]any `json:"template_data"`
	Priority         int            `json:"priority" validate:"omitempty,min=1,max=10"`
	ScheduledFor     string         `json:"scheduled_for"`
	MaxAttempts      int            `json:"max_attempts" validate:"omitempty,min=1"`
}

// EnqueueBatchRequest queues several notifications in one store round trip.
type EnqueueBatchRequest struct {
	Notifications []EnqueueRequest `json:"notifications" validate:"required,min=1,dive"`
}

// ProcessRequest triggers one processing batch.
type ProcessRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1"`
}
