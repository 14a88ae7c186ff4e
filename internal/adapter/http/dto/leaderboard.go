package dto

type LeaderboardEntryItem struct {
	EntityID    uint64   `json:"entity_id"`
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	Rank        int      `json:"rank"`
	MemberCount *int     `json:"member_count,omitempty"`
	TotalPoints *float64 `json:"total_points,omitempty"`
}

type ScoreSummaryItem struct {
	TotalPoints float64 `json:"total_points"`
	MemberRank  *int    `json:"member_rank,omitempty"`
	TeamRank    *int    `json:"team_rank,omitempty"`
}

type TaskBreakdownItem struct {
	TaskID          uint64  `json:"task_id"`
	TaskName        string  `json:"task_name"`
	CompletionCount int     `json:"completion_count"`
	TotalPoints     float64 `json:"total_points"`
}

type TeamActivityEntry struct {
	CompletionID uint64  `json:"completion_id"`
	MemberID     uint64  `json:"member_id"`
	MemberName   string  `json:"member_name"`
	TaskName     string  `json:"task_name"`
	Points       float64 `json:"points"`
	Count        int     `json:"count"`
	ReviewedAt   string  `json:"reviewed_at"`
}

type TeamActivityItem struct {
	Items            []TeamActivityEntry `json:"items"`
	TotalPoints      float64             `json:"total_points"`
	TotalCompletions int                 `json:"total_completions"`
	ActiveMembers    int                 `json:"active_members"`
}
