package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskArchived        = errors.New("task archived")
	ErrTaskRestricted      = errors.New("task restricted to another team")
	ErrTaskNotActive       = errors.New("task not yet active")
	ErrTaskExpired         = errors.New("task has expired")
	ErrPeriodConfig        = errors.New("period_unit and period_count are required when max_per_period is set")
	ErrLimitExceeded       = errors.New("submission limit reached")
	ErrVariantNotFound     = errors.New("variant not found")
	ErrInvalidVariant      = errors.New("invalid variant for this task")
	ErrVariantPosition     = errors.New("variant position already in use")
	ErrCompletionNotFound  = errors.New("completion not found")
	ErrStatusNotTerminal   = errors.New("status must be approved or rejected")
	ErrCompletionOrphaned  = errors.New("completion is missing related task or member")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberInactive      = errors.New("member inactive")
	ErrTeamNotFound        = errors.New("team not found")
	ErrOutsideManagedTeams = errors.New("outside managed teams")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrComponentNotFound   = errors.New("component not found")
	ErrInvalidMetric       = errors.New("invalid metric")
)
