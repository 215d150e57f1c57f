package domain

import "time"

type ReportReason string

const (
	ReasonFakeProfile     ReportReason = "fake_profile"
	ReasonHarmfulBehavior ReportReason = "harmful_behavior"
	ReasonSpam            ReportReason = "spam"
	ReasonOther           ReportReason = "other"
)

func (r ReportReason) Valid() bool {
	switch r {
	case ReasonFakeProfile, ReasonHarmfulBehavior, ReasonSpam, ReasonOther:
		return true
	}
	return false
}

// Report is an append-only moderation record. Resolution happens outside
// this service; records are created with IsResolved=false and never touched
// again here.
type Report struct {
	ID          int          `json:"id" db:"id"`
	ReporterID  int          `json:"reporter_id" db:"reporter_id"`
	ReportedID  int          `json:"reported_id" db:"reported_id"`
	Reason      ReportReason `json:"reason" db:"reason"`
	Description string       `json:"description" db:"description"`
	IsResolved  bool         `json:"is_resolved" db:"is_resolved"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
