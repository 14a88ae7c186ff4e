package domain

import "time"

type PeriodUnit string

const (
	PeriodUnitHour  PeriodUnit = "hour"
	PeriodUnitDay   PeriodUnit = "day"
	PeriodUnitWeek  PeriodUnit = "week"
	PeriodUnitMonth PeriodUnit = "month"
)

// ValidPeriodUnit reports whether the value is one of the supported recurrence units.
func ValidPeriodUnit(value PeriodUnit) bool {
	switch value {
	case PeriodUnitHour, PeriodUnitDay, PeriodUnitWeek, PeriodUnitMonth:
		return true
	}
	return false
}

type Task struct {
	ID                  uint64
	TeamID              *uint64
	Name                string
	Description         *string
	StartTime           time.Time
	EndTime             *time.Time
	PointsPerCompletion float64
	MaxPerPeriod        *int
	PeriodUnit          *PeriodUnit
	PeriodCount         *int
	RequiresApproval    bool
	IsArchived          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Variants            []TaskVariant
}

// HasLimit reports whether the task carries a recurrence limit. The three
// recurrence fields are all-or-nothing, enforced at create/update time.
func (t Task) HasLimit() bool {
	return t.MaxPerPeriod != nil && t.PeriodUnit != nil && t.PeriodCount != nil
}

// Variant returns the variant with the given id, nil when the task has none.
func (t Task) Variant(variantID uint64) *TaskVariant {
	for i := range t.Variants {
		if t.Variants[i].ID == variantID {
			return &t.Variants[i]
		}
	}
	return nil
}

type TaskVariant struct {
	ID          uint64
	TaskID      uint64
	Name        string
	Description *string
	Points      float64
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskStatusFilter string

const (
	TaskFilterActive  TaskStatusFilter = "active"
	TaskFilterFuture  TaskStatusFilter = "future"
	TaskFilterExpired TaskStatusFilter = "expired"
)

type ListTasksInput struct {
	Status          *TaskStatusFilter
	IncludeArchived bool
}

type CreateTaskInput struct {
	TeamID              *uint64
	Name                string
	Description         *string
	StartTime           *time.Time
	EndTime             *time.Time
	PointsPerCompletion float64
	MaxPerPeriod        *int
	PeriodUnit          *PeriodUnit
	PeriodCount         *int
	RequiresApproval    bool
}

type UpdateTaskInput struct {
	TeamID              *uint64
	TeamIDSet           bool
	Name                *string
	Description         *string
	DescriptionSet      bool
	StartTime           *time.Time
	EndTime             *time.Time
	EndTimeSet          bool
	PointsPerCompletion *float64
	MaxPerPeriod        *int
	MaxPerPeriodSet     bool
	PeriodUnit          *PeriodUnit
	PeriodUnitSet       bool
	PeriodCount         *int
	PeriodCountSet      bool
	RequiresApproval    *bool
}

type CreateVariantInput struct {
	Name        string
	Description *string
	Points      float64
	Position    *int
}

type UpdateVariantInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Points         *float64
	Position       *int
}
