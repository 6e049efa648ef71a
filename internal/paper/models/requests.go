package models

import (
	"strings"

	dErrors "paperflow/pkg/domain-errors"
)

// CreatePaperRequest registers a new paper. Slots may be omitted; the intake
// UI always sends five unfilled slots but the engine does not require them.
type CreatePaperRequest struct {
	PaperID string `json:"paperId"`
	Title   string `json:"title"`
	Domain  string `json:"domain"`
	Slots   []Slot `json:"slots"`
}

func (r *CreatePaperRequest) Normalize() {
	r.PaperID = strings.TrimSpace(r.PaperID)
	r.Title = strings.TrimSpace(r.Title)
	r.Domain = strings.TrimSpace(r.Domain)
}

func (r *CreatePaperRequest) Validate() error {
	if r.PaperID == "" {
		return dErrors.New(dErrors.CodeValidation, "paperId is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	return nil
}

// FillSlotRequest assigns a reviewer email to a named slot. The engine does
// not validate email syntax, only presence.
type FillSlotRequest struct {
	SlotNumber string `json:"slotNumber"`
	Email      string `json:"email"`
}

func (r *FillSlotRequest) Validate() error {
	if strings.TrimSpace(r.SlotNumber) == "" {
		return dErrors.New(dErrors.CodeValidation, "slotNumber is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	return nil
}

// AdvanceStageRequest moves a paper to a target stage.
type AdvanceStageRequest struct {
	Stage Stage `json:"stage"`
}

// NotificationOutcome records what happened to the fan-out after a stage
// change was persisted.
type NotificationOutcome string

const (
	NotificationSent    NotificationOutcome = "sent"
	NotificationSkipped NotificationOutcome = "skipped"
)

// AdvanceResult reports both steps of a stage advance separately: the status
// write and the notification dispatch are not atomic.
type AdvanceResult struct {
	Message         string              `json:"message"`
	Paper           *Paper              `json:"paper"`
	StatusPersisted bool                `json:"statusPersisted"`
	Notification    NotificationOutcome `json:"notification"`
}
