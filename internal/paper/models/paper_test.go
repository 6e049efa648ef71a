package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "paperflow/pkg/domain-errors"
)

func TestNewPaper(t *testing.T) {
	t.Run("starts pending with empty slots", func(t *testing.T) {
		p, err := NewPaper("P1", "T", "AI", nil)
		require.NoError(t, err)
		assert.Equal(t, StagePending, p.Status)
		assert.NotNil(t, p.Slots)
		assert.Empty(t, p.Slots)
	})

	t.Run("requires paperId", func(t *testing.T) {
		_, err := NewPaper("", "T", "AI", nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := NewPaper("P1", "", "AI", nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()
	require.Len(t, slots, 5)
	assert.Equal(t, "S1", slots[0].SlotNumber)
	assert.Equal(t, "S5", slots[4].SlotNumber)
	for _, s := range slots {
		assert.False(t, s.IsFilled)
		assert.Empty(t, s.Email)
	}
}

func TestFillSlot(t *testing.T) {
	t.Run("updates existing slot in place", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
		p.FillSlot("S2", "reviewer@example.org")

		require.Len(t, p.Slots, 5)
		assert.Equal(t, "reviewer@example.org", p.Slots[1].Email)
		assert.True(t, p.Slots[1].IsFilled)
	})

	t.Run("overwrites a filled slot silently", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
		p.FillSlot("S1", "first@example.org")
		p.FillSlot("S1", "second@example.org")

		require.Len(t, p.Slots, 5)
		assert.Equal(t, "second@example.org", p.Slots[0].Email)
		assert.True(t, p.Slots[0].IsFilled)
	})

	t.Run("appends an unknown slot number already filled", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
		p.FillSlot("S6", "extra@example.org")

		require.Len(t, p.Slots, 6)
		last := p.Slots[5]
		assert.Equal(t, "S6", last.SlotNumber)
		assert.Equal(t, "extra@example.org", last.Email)
		assert.True(t, last.IsFilled)
	})

	t.Run("filling twice with same email is idempotent", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
		p.FillSlot("S1", "same@example.org")
		after := p.Clone()
		p.FillSlot("S1", "same@example.org")
		assert.Equal(t, after, p.Clone())
	})
}

func TestAllSlotsFilled(t *testing.T) {
	t.Run("vacuously true for zero slots", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", nil)
		assert.True(t, p.AllSlotsFilled())
		assert.NoError(t, p.CanAdvance())
	})

	t.Run("false when any slot is unfilled", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
		p.FillSlot("S1", "a@example.org")
		p.FillSlot("S2", "b@example.org")
		p.FillSlot("S3", "c@example.org")

		assert.False(t, p.AllSlotsFilled())
		err := p.CanAdvance()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeSlotsIncomplete))
	})
}

func TestFullySlotted(t *testing.T) {
	t.Run("empty sequence does not qualify for the tracking view", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", nil)
		assert.False(t, p.FullySlotted())
	})

	t.Run("all filled qualifies", func(t *testing.T) {
		p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
		for i := 1; i <= 5; i++ {
			p.FillSlot(p.Slots[i-1].SlotNumber, "r@example.org")
		}
		assert.True(t, p.FullySlotted())
	})
}

func TestRecipientEmails(t *testing.T) {
	p, _ := NewPaper("P1", "T", "AI", []Slot{
		{SlotNumber: "S1", Email: "a@example.org", IsFilled: true},
		{SlotNumber: "S2", Email: "", IsFilled: false},
	})

	// Every slot email is collected verbatim, filled or not.
	assert.Equal(t, []string{"a@example.org", ""}, p.RecipientEmails())
}

func TestValidTarget(t *testing.T) {
	assert.False(t, StagePending.ValidTarget(), "pending is initial-only")
	assert.False(t, Stage("archived").ValidTarget())
	for _, s := range []Stage{StageSubmit, StageReviewing, StageAccepted, StagePublished} {
		assert.True(t, s.ValidTarget(), s.String())
	}
}

func TestCloneDoesNotShareSlots(t *testing.T) {
	p, _ := NewPaper("P1", "T", "AI", DefaultSlots())
	cp := p.Clone()
	cp.FillSlot("S1", "other@example.org")

	assert.False(t, p.Slots[0].IsFilled)
	assert.True(t, cp.Slots[0].IsFilled)
}
