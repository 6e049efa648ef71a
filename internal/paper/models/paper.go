package models

import (
	"fmt"

	dErrors "paperflow/pkg/domain-errors"
)

// Paper is the aggregate root tracked through the review pipeline.
//
// Invariants:
//   - PaperID is non-empty and unique across all papers (store-enforced)
//   - Title is non-empty
//   - Status starts at pending and only ever leaves it through ApplyAdvance;
//     no operation moves a paper back to pending
//   - A stage advance requires every slot to be filled; an empty slot
//     sequence satisfies the precondition vacuously
//
// Slots are owned by the paper and have no identity outside it. SlotNumber
// labels are unique within one paper's sequence but not globally. Filling a
// slot number that is absent from the sequence appends a new, already-filled
// slot rather than failing.
type Paper struct {
	ID      string `json:"id"`
	PaperID string `json:"paperId"`
	Title   string `json:"title"`
	Domain  string `json:"domain"`
	Status  Stage  `json:"status"`
	Slots   []Slot `json:"slots"`
}

// Slot is a named reviewer assignment attached to a paper.
type Slot struct {
	SlotNumber string `json:"slotNumber"`
	Email      string `json:"email"`
	IsFilled   bool   `json:"isFilled"`
}

// NewPaper validates required fields and returns a pending paper. The store
// assigns ID on create. A nil slot sequence becomes an empty one; the engine
// does not enforce slot count or naming.
func NewPaper(paperID, title, domain string, slots []Slot) (*Paper, error) {
	if paperID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "paperId is required")
	}
	if title == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "title is required")
	}
	if slots == nil {
		slots = []Slot{}
	}
	return &Paper{
		PaperID: paperID,
		Title:   title,
		Domain:  domain,
		Status:  StagePending,
		Slots:   slots,
	}, nil
}

// DefaultSlots returns the five unfilled reviewer slots S1..S5 the intake
// form supplies at creation time.
func DefaultSlots() []Slot {
	slots := make([]Slot, 0, 5)
	for i := 1; i <= 5; i++ {
		slots = append(slots, Slot{SlotNumber: fmt.Sprintf("S%d", i)})
	}
	return slots
}

// FillSlot assigns email to the named slot, overwriting any previous reviewer
// without a conflict signal. An unknown slot number appends a new filled slot.
// There is no status check: a slot can be filled at any stage, published
// included.
func (p *Paper) FillSlot(slotNumber, email string) {
	for i := range p.Slots {
		if p.Slots[i].SlotNumber == slotNumber {
			p.Slots[i].Email = email
			p.Slots[i].IsFilled = true
			return
		}
	}
	p.Slots = append(p.Slots, Slot{SlotNumber: slotNumber, Email: email, IsFilled: true})
}

// AllSlotsFilled reports whether every slot in the sequence is filled. An
// empty sequence is vacuously true; this is the advance-stage precondition.
func (p *Paper) AllSlotsFilled() bool {
	for _, s := range p.Slots {
		if !s.IsFilled {
			return false
		}
	}
	return true
}

// FullySlotted is the stricter read-side filter used by the tracking view: a
// non-empty slot sequence with every slot filled.
func (p *Paper) FullySlotted() bool {
	return len(p.Slots) > 0 && p.AllSlotsFilled()
}

// CanAdvance checks the advancement precondition. Use with ApplyAdvance so
// the service controls persistence ordering.
func (p *Paper) CanAdvance() error {
	if !p.AllSlotsFilled() {
		return dErrors.New(dErrors.CodeSlotsIncomplete, "not all slots are filled")
	}
	return nil
}

// ApplyAdvance moves the paper to the target stage. Call CanAdvance first;
// target validity is checked at the service boundary.
func (p *Paper) ApplyAdvance(target Stage) {
	p.Status = target
}

// RecipientEmails collects every slot's email in sequence order, filled or
// not, mirroring the notification fan-out contract.
func (p *Paper) RecipientEmails() []string {
	emails := make([]string, 0, len(p.Slots))
	for _, s := range p.Slots {
		emails = append(emails, s.Email)
	}
	return emails
}

// Clone returns a deep copy so stores can hand out papers without sharing the
// slot backing array with callers.
func (p *Paper) Clone() *Paper {
	cp := *p
	cp.Slots = append([]Slot(nil), p.Slots...)
	return &cp
}
