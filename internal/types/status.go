package types

// Closed status sets for the two status-bearing entities. The original
// system accepted free text here; values outside these sets are rejected
// with a ValidationError on create and update.

var ProjectStatuses = []string{
	"assessment",
	"proposal",
	"in_progress",
	"on_hold",
	"completed",
	"cancelled",
}

var DocumentStatuses = []string{
	"draft",
	"review",
	"final",
	"signed",
	"archived",
}

const (
	DefaultProjectStatus  = "assessment"
	DefaultDocumentStatus = "draft"
)

func ValidProjectStatus(s string) bool {
	return contains(ProjectStatuses, s)
}

func ValidDocumentStatus(s string) bool {
	return contains(DocumentStatuses, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
