package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paperflow/internal/paper/models"
)

func newPaper(t *testing.T) *models.Paper {
	t.Helper()
	p, err := models.NewPaper("PAPER001", "Advanced Neural Networks", "AI", nil)
	if err != nil {
		t.Fatalf("new paper: %v", err)
	}
	return p
}

func TestForStageSubjects(t *testing.T) {
	p := newPaper(t)

	cases := map[models.Stage]string{
		models.StageSubmit:    "Paper Submitted for Review",
		models.StageReviewing: "Paper Under Review",
		models.StageAccepted:  "Paper Accepted",
		models.StagePublished: "Paper Published",
	}
	for stage, subject := range cases {
		assert.Equal(t, subject, ForStage(p, stage).Subject, stage.String())
	}
}

func TestForStageBodies(t *testing.T) {
	p := newPaper(t)

	t.Run("submit body carries title, id and domain", func(t *testing.T) {
		tmpl := ForStage(p, models.StageSubmit)
		assert.Contains(t, tmpl.HTML, "Advanced Neural Networks")
		assert.Contains(t, tmpl.HTML, "PAPER001")
		assert.Contains(t, tmpl.HTML, "Domain: AI")
	})

	t.Run("bodies differ per stage", func(t *testing.T) {
		seen := map[string]models.Stage{}
		for _, stage := range []models.Stage{models.StageSubmit, models.StageReviewing, models.StageAccepted, models.StagePublished} {
			html := ForStage(p, stage).HTML
			if prev, dup := seen[html]; dup {
				t.Fatalf("stages %s and %s share a body", prev, stage)
			}
			seen[html] = stage
		}
	})

	t.Run("unknown stage falls back to submit", func(t *testing.T) {
		assert.Equal(t, ForStage(p, models.StageSubmit), ForStage(p, models.Stage("bogus")))
	})
}
