package models

// Stage is the paper's position in the fixed review pipeline.
type Stage string

const (
	StagePending   Stage = "pending"
	StageSubmit    Stage = "submit"
	StageReviewing Stage = "reviewing"
	StageAccepted  Stage = "accepted"
	StagePublished Stage = "published"
)

// Stages lists the pipeline in order. pending is initial-only.
var Stages = []Stage{StagePending, StageSubmit, StageReviewing, StageAccepted, StagePublished}

// ValidTarget reports whether s may be requested as an advancement target.
// pending is never a valid target. Any other known stage is accepted
// regardless of the paper's current status: the pipeline intentionally does
// not enforce one-step forward transitions, only the slot precondition.
func (s Stage) ValidTarget() bool {
	switch s {
	case StageSubmit, StageReviewing, StageAccepted, StagePublished:
		return true
	default:
		return false
	}
}

func (s Stage) String() string {
	return string(s)
}
