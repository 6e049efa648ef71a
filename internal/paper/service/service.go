// Package service implements the paper lifecycle engine: creation, reviewer
// slot assignment, and the slot-gated stage advancement with notification
// fan-out. The engine holds no process-wide state; every operation loads the
// paper fresh, mutates it, and persists the result (last write wins).
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"paperflow/internal/notify"
	"paperflow/internal/paper/models"
	"paperflow/internal/paper/store"
	"paperflow/internal/platform/metrics"
	dErrors "paperflow/pkg/domain-errors"
	"paperflow/pkg/platform/sentinel"
)

// Notifier delivers one stage-change email to a list of recipients. Delivery
// is blocking and never retried here.
type Notifier interface {
	Send(ctx context.Context, recipients []string, subject, htmlBody string) error
}

// Service orchestrates paper lifecycle operations.
type Service struct {
	papers   store.PaperStore
	notifier Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(papers store.PaperStore, notifier Notifier, opts ...Option) *Service {
	s := &Service{papers: papers, notifier: notifier}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new paper in the pending stage.
func (s *Service) Create(ctx context.Context, req *models.CreatePaperRequest) (*models.Paper, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := models.NewPaper(req.PaperID, req.Title, req.Domain, req.Slots)
	if err != nil {
		// Convert invariant violations to validation errors for API response
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}

	created, err := s.papers.Create(ctx, p)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "paperId must be unique")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create paper")
	}

	s.log(ctx, "paper created", "paper_id", created.PaperID, "id", created.ID)
	if s.metrics != nil {
		s.metrics.PapersCreated.Inc()
	}
	return created, nil
}

// List returns every paper.
func (s *Service) List(ctx context.Context) ([]*models.Paper, error) {
	papers, err := s.papers.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list papers")
	}
	return papers, nil
}

// ListFullySlotted returns papers whose slot sequence is non-empty and fully
// filled, feeding the tracking view.
func (s *Service) ListFullySlotted(ctx context.Context) ([]*models.Paper, error) {
	papers, err := s.papers.ListFullySlotted(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list papers")
	}
	return papers, nil
}

// FillSlot assigns a reviewer to a named slot and persists the paper. An
// already-filled slot is overwritten silently; an unknown slot number is
// appended as a new filled slot. The paper's status is deliberately not
// checked, so assignments remain possible after publication.
func (s *Service) FillSlot(ctx context.Context, id string, req *models.FillSlotRequest) (*models.Paper, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.loadPaper(ctx, id)
	if err != nil {
		return nil, err
	}

	p.FillSlot(req.SlotNumber, req.Email)

	saved, err := s.papers.Save(ctx, p)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save paper")
	}

	s.log(ctx, "slot filled", "paper_id", saved.PaperID, "slot", req.SlotNumber)
	if s.metrics != nil {
		s.metrics.SlotsFilled.Inc()
	}
	return saved, nil
}

// AdvanceStage moves a paper to the target stage and fans out one email to
// every slot's address. The accepted targets are submit, reviewing, accepted,
// and published; any of them is valid from any current status. The only gate
// is the slot precondition: every slot filled, vacuously true for a paper
// with no slots.
//
// The status write and the notification are two separate steps. A delivery
// failure is returned as an error after the stage change has already been
// persisted; callers must treat this operation as non-atomic.
func (s *Service) AdvanceStage(ctx context.Context, id string, target models.Stage) (*models.AdvanceResult, error) {
	if !target.ValidTarget() {
		return nil, dErrors.New(dErrors.CodeInvalidStage, "invalid stage value")
	}

	p, err := s.loadPaper(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.CanAdvance(); err != nil {
		return nil, err
	}

	p.ApplyAdvance(target)
	saved, err := s.papers.Save(ctx, p)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save paper")
	}
	if s.metrics != nil {
		s.metrics.StagesAdvanced.WithLabelValues(target.String()).Inc()
	}

	recipients := saved.RecipientEmails()
	if len(recipients) == 0 {
		s.log(ctx, "stage advanced, nobody to notify", "paper_id", saved.PaperID, "stage", target)
		return &models.AdvanceResult{
			Message:         fmt.Sprintf("Paper status updated to %s, but no users to notify", target),
			Paper:           saved,
			StatusPersisted: true,
			Notification:    models.NotificationSkipped,
		}, nil
	}

	tmpl := notify.ForStage(saved, target)
	if err := s.notifier.Send(ctx, recipients, tmpl.Subject, tmpl.HTML); err != nil {
		if s.metrics != nil {
			s.metrics.NotificationsFailed.Inc()
		}
		s.log(ctx, "notification delivery failed after stage persist",
			"paper_id", saved.PaperID, "stage", target, "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeDeliveryFailed,
			fmt.Sprintf("stage updated to %s but notification delivery failed", target))
	}

	s.log(ctx, "stage advanced", "paper_id", saved.PaperID, "stage", target, "recipients", len(recipients))
	if s.metrics != nil {
		s.metrics.NotificationsSent.Inc()
	}
	return &models.AdvanceResult{
		Message:         fmt.Sprintf("Paper status updated to %s and notifications sent", target),
		Paper:           saved,
		StatusPersisted: true,
		Notification:    models.NotificationSent,
	}, nil
}

func (s *Service) loadPaper(ctx context.Context, id string) (*models.Paper, error) {
	p, err := s.papers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "paper not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load paper")
	}
	return p, nil
}

func (s *Service) log(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, msg, args...)
	}
}
