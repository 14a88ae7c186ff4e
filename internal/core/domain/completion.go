package domain

import "time"

type CompletionStatus string

const (
	CompletionPending  CompletionStatus = "pending"
	CompletionApproved CompletionStatus = "approved"
	CompletionRejected CompletionStatus = "rejected"
)

// ValidCompletionStatus reports whether the value is a known lifecycle status.
func ValidCompletionStatus(value CompletionStatus) bool {
	switch value {
	case CompletionPending, CompletionApproved, CompletionRejected:
		return true
	}
	return false
}

type Completion struct {
	ID            uint64
	MemberID      uint64
	TaskID        uint64
	VariantID     *uint64
	Status        CompletionStatus
	SubmittedAt   time.Time
	ReviewedAt    *time.Time
	ReviewerID    *uint64
	MemberNote    *string
	AdminNote     *string
	PointsAwarded float64
	Count         int

	// Display-only joins, populated by list queries. Never required for scoring.
	TaskName    *string
	MemberName  *string
	TeamName    *string
	VariantName *string
}

// AwardPoints computes the award for an approved completion: the variant's
// points when one is attached, otherwise the task's base value, times count.
func AwardPoints(task Task, variant *TaskVariant, count int) float64 {
	per := task.PointsPerCompletion
	if variant != nil {
		per = variant.Points
	}
	return per * float64(count)
}

type SubmitInput struct {
	TaskID     uint64
	VariantID  *uint64
	Count      int
	MemberNote *string
}

type ReviewInput struct {
	Status    CompletionStatus
	AdminNote *string
}

type AdminCreateCompletionInput struct {
	TaskID     uint64
	VariantID  *uint64
	Count      int
	Status     CompletionStatus
	MemberNote *string
	AdminNote  *string
}

type AdminUpdateCompletionInput struct {
	Count     *int
	Status    *CompletionStatus
	AdminNote *string
}

// Progress describes a member's usage of a task, including the current
// recurrence window when the task is rate limited.
type Progress struct {
	Current     int
	Remaining   *int
	Limit       *int
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Lifetime    int
}

type Notification struct {
	ID        uint64
	UserID    uint64
	Message   string
	SenderID  *uint64
	CreatedAt time.Time
}
