package dto

type CompletionItem struct {
	ID            uint64  `json:"id"`
	MemberID      uint64  `json:"member_id"`
	TaskID        uint64  `json:"task_id"`
	VariantID     *uint64 `json:"variant_id,omitempty"`
	Status        string  `json:"status"`
	SubmittedAt   string  `json:"submitted_at"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	ReviewerID    *uint64 `json:"reviewer_id,omitempty"`
	MemberNote    *string `json:"member_note,omitempty"`
	AdminNote     *string `json:"admin_note,omitempty"`
	PointsAwarded float64 `json:"points_awarded"`
	Count         int     `json:"count"`
	TaskName      *string `json:"task_name,omitempty"`
	MemberName    *string `json:"member_name,omitempty"`
	TeamName      *string `json:"team_name,omitempty"`
	VariantName   *string `json:"variant_name,omitempty"`
}

type SubmitCompletionRequest struct {
	VariantID  *uint64 `json:"variant_id" binding:"omitempty,gt=0"`
	Count      *int    `json:"count" binding:"omitempty,gte=1,lte=999"`
	MemberNote *string `json:"member_note" binding:"omitempty,max=500"`
}

type ReviewCompletionRequest struct {
	Status    string  `json:"status" binding:"required,oneof=approved rejected"`
	AdminNote *string `json:"admin_note" binding:"omitempty,max=500"`
}

type AdminCreateCompletionRequest struct {
	TaskID     uint64  `json:"task_id" binding:"required,gt=0"`
	VariantID  *uint64 `json:"variant_id" binding:"omitempty,gt=0"`
	Count      *int    `json:"count" binding:"omitempty,gte=1,lte=999"`
	Status     *string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	MemberNote *string `json:"member_note" binding:"omitempty,max=500"`
	AdminNote  *string `json:"admin_note" binding:"omitempty,max=500"`
}

type AdminUpdateCompletionRequest struct {
	Count     *int    `json:"count" binding:"omitempty,gte=1,lte=999"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	AdminNote *string `json:"admin_note" binding:"omitempty,max=500"`
}
