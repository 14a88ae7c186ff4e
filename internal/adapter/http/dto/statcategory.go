package dto

type StatCategorySummaryItem struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Icon           *string `json:"icon,omitempty"`
	ComponentCount int     `json:"component_count"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type StatCategoryItem struct {
	ID          uint64                     `json:"id"`
	Name        string                     `json:"name"`
	Description *string                    `json:"description,omitempty"`
	Icon        *string                    `json:"icon,omitempty"`
	CreatedAt   string                     `json:"created_at"`
	UpdatedAt   string                     `json:"updated_at"`
	Components  []StatCategoryComponentItem `json:"components"`
}

type StatCategoryComponentItem struct {
	ID         uint64  `json:"id"`
	CategoryID uint64  `json:"category_id"`
	TaskID     uint64  `json:"task_id"`
	Metric     string  `json:"metric"`
	Weight     float64 `json:"weight"`
	Position   int     `json:"position"`
	TaskName   *string `json:"task_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type CreateStatCategoryRequest struct {
	Name        string                       `json:"name" binding:"required,max=100"`
	Description *string                      `json:"description" binding:"omitempty,max=65535"`
	Icon        *string                      `json:"icon" binding:"omitempty,max=50"`
	Components  []CreateStatComponentRequest `json:"components" binding:"omitempty,dive"`
}

type UpdateStatCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
}

type CreateStatComponentRequest struct {
	TaskID   uint64   `json:"task_id" binding:"required,gt=0"`
	Metric   string   `json:"metric" binding:"required,oneof=points completions"`
	Weight   *float64 `json:"weight" binding:"omitempty"`
	Position *int     `json:"position" binding:"omitempty,gte=0"`
}

type UpdateStatComponentRequest struct {
	TaskID   *uint64  `json:"task_id" binding:"omitempty,gt=0"`
	Metric   *string  `json:"metric" binding:"omitempty,oneof=points completions"`
	Weight   *float64 `json:"weight" binding:"omitempty"`
	Position *int     `json:"position" binding:"omitempty,gte=0"`
}
