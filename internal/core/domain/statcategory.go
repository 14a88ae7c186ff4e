package domain

import "time"

type StatMetric string

const (
	StatMetricPoints      StatMetric = "points"
	StatMetricCompletions StatMetric = "completions"
)

func ValidStatMetric(value StatMetric) bool {
	return value == StatMetricPoints || value == StatMetricCompletions
}

type StatCategory struct {
	ID          uint64
	Name        string
	Description *string
	Icon        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Components  []StatCategoryComponent
}

type StatCategoryComponent struct {
	ID         uint64
	CategoryID uint64
	TaskID     uint64
	Metric     StatMetric
	Weight     float64
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	TaskName   *string
}

type StatCategorySummary struct {
	ID             uint64
	Name           string
	Description    *string
	Icon           *string
	ComponentCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateStatCategoryInput struct {
	Name        string
	Description *string
	Icon        *string
	Components  []CreateComponentInput
}

type UpdateStatCategoryInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Icon           *string
	IconSet        bool
}

type CreateComponentInput struct {
	TaskID   uint64
	Metric   StatMetric
	Weight   float64
	Position *int
}

type UpdateComponentInput struct {
	TaskID   *uint64
	Metric   *StatMetric
	Weight   *float64
	Position *int
}
