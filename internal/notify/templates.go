package notify

import (
	"fmt"

	"paperflow/internal/paper/models"
)

// Template is a rendered stage-change email.
type Template struct {
	Subject string
	HTML    string
}

// ForStage renders the email for a stage transition, parameterized by the
// paper's title, business key, and domain. Unknown stages fall back to the
// submit template rather than failing; the service rejects invalid targets
// before notification is ever attempted.
func ForStage(p *models.Paper, stage models.Stage) Template {
	switch stage {
	case models.StageReviewing:
		return Template{
			Subject: "Paper Under Review",
			HTML: fmt.Sprintf(`<h2>Paper Review Notification</h2>
<p>Hello,</p>
<p>The paper "<strong>%s</strong>" (ID: %s) is now under review.</p>
<p>You will be notified when the review is complete.</p>`, p.Title, p.PaperID),
		}
	case models.StageAccepted:
		return Template{
			Subject: "Paper Accepted",
			HTML: fmt.Sprintf(`<h2>Paper Acceptance Notification</h2>
<p>Hello,</p>
<p>We are pleased to inform you that the paper "<strong>%s</strong>" (ID: %s) has been accepted.</p>
<p>Congratulations!</p>`, p.Title, p.PaperID),
		}
	case models.StagePublished:
		return Template{
			Subject: "Paper Published",
			HTML: fmt.Sprintf(`<h2>Paper Publication Notification</h2>
<p>Hello,</p>
<p>The paper "<strong>%s</strong>" (ID: %s) has been published.</p>
<p>Thank you for your contribution.</p>`, p.Title, p.PaperID),
		}
	default:
		return Template{
			Subject: "Paper Submitted for Review",
			HTML: fmt.Sprintf(`<h2>Paper Submission Notification</h2>
<p>Hello,</p>
<p>The paper "<strong>%s</strong>" (ID: %s) has been submitted for review.</p>
<p>Domain: %s</p>
<p>Thank you for your participation.</p>`, p.Title, p.PaperID, p.Domain),
		}
	}
}
