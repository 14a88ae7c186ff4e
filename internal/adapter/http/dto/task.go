package dto

type TaskItem struct {
	ID                  uint64        `json:"id"`
	TeamID              *uint64       `json:"team_id,omitempty"`
	Name                string        `json:"name"`
	Description         *string       `json:"description,omitempty"`
	StartTime           string        `json:"start_time"`
	EndTime             *string       `json:"end_time,omitempty"`
	PointsPerCompletion float64       `json:"points_per_completion"`
	MaxPerPeriod        *int          `json:"max_per_period,omitempty"`
	PeriodUnit          *string       `json:"period_unit,omitempty"`
	PeriodCount         *int          `json:"period_count,omitempty"`
	RequiresApproval    bool          `json:"requires_approval"`
	IsArchived          bool          `json:"is_archived"`
	CreatedAt           string        `json:"created_at"`
	UpdatedAt           string        `json:"updated_at"`
	Variants            []VariantItem `json:"variants,omitempty"`
	Progress            *ProgressItem `json:"progress,omitempty"`
}

type VariantItem struct {
	ID          uint64  `json:"id"`
	TaskID      uint64  `json:"task_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Points      float64 `json:"points"`
	Position    int     `json:"position"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ProgressItem carries the caller's usage of a task. The window fields are
// absent for unlimited tasks.
type ProgressItem struct {
	Current     int     `json:"current"`
	Remaining   *int    `json:"remaining,omitempty"`
	Limit       *int    `json:"limit,omitempty"`
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`
	Lifetime    int     `json:"lifetime"`
}

type CreateTaskRequest struct {
	TeamID              *uint64  `json:"team_id" binding:"omitempty,gt=0"`
	Name                string   `json:"name" binding:"required,max=150"`
	Description         *string  `json:"description" binding:"omitempty,max=65535"`
	StartTime           *string  `json:"start_time" binding:"omitempty"`
	EndTime             *string  `json:"end_time" binding:"omitempty"`
	PointsPerCompletion *float64 `json:"points_per_completion" binding:"omitempty,gt=0"`
	MaxPerPeriod        *int     `json:"max_per_period" binding:"omitempty,gt=0"`
	PeriodUnit          *string  `json:"period_unit" binding:"omitempty,oneof=hour day week month"`
	PeriodCount         *int     `json:"period_count" binding:"omitempty,gt=0"`
	RequiresApproval    *bool    `json:"requires_approval" binding:"omitempty"`
}

type UpdateTaskRequest struct {
	TeamID              *uint64  `json:"team_id" binding:"omitempty,gt=0"`
	Name                *string  `json:"name" binding:"omitempty,max=150"`
	Description         *string  `json:"description" binding:"omitempty,max=65535"`
	StartTime           *string  `json:"start_time" binding:"omitempty"`
	EndTime             *string  `json:"end_time" binding:"omitempty"`
	PointsPerCompletion *float64 `json:"points_per_completion" binding:"omitempty,gt=0"`
	MaxPerPeriod        *int     `json:"max_per_period" binding:"omitempty,gt=0"`
	PeriodUnit          *string  `json:"period_unit" binding:"omitempty,oneof=hour day week month"`
	PeriodCount         *int     `json:"period_count" binding:"omitempty,gt=0"`
	RequiresApproval    *bool    `json:"requires_approval" binding:"omitempty"`
}

type CreateVariantRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Points      float64 `json:"points" binding:"required,gt=0"`
	Position    *int    `json:"position" binding:"omitempty,gte=0"`
}

type UpdateVariantRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=150"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Points      *float64 `json:"points" binding:"omitempty,gt=0"`
	Position    *int     `json:"position" binding:"omitempty,gte=0"`
}
