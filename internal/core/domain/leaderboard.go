package domain

import "time"

type TeamScoreMode string

const (
	TeamScoreTotal   TeamScoreMode = "total"
	TeamScoreAverage TeamScoreMode = "average"
)

type LeaderboardScope string

const (
	ScopeMembers LeaderboardScope = "members"
	ScopeTeams   LeaderboardScope = "teams"
)

// LeaderboardEntry is one ranked row. Rank is the 1-based position after the
// descending sort by score; ties keep iteration order.
type LeaderboardEntry struct {
	EntityID    uint64
	Name        string
	Score       float64
	Rank        int
	MemberCount *int
	TotalPoints *float64
}

// ScoreSummary is the caller's own standing: total approved points plus global
// member and team ranks. Ranks use strictly-greater counting, so tied scores
// share a rank; nil when the underlying score set has no row for the entity.
type ScoreSummary struct {
	TotalPoints float64
	MemberRank  *int
	TeamRank    *int
}

type TaskBreakdownRow struct {
	TaskID          uint64
	TaskName        string
	CompletionCount int
	TotalPoints     float64
}

type TeamActivityItem struct {
	CompletionID uint64
	MemberID     uint64
	MemberName   string
	TaskName     string
	Points       float64
	Count        int
	ReviewedAt   time.Time
}

type TeamActivity struct {
	Items            []TeamActivityItem
	TotalPoints      float64
	TotalCompletions int
	ActiveMembers    int
}
