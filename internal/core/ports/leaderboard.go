package ports

import (
	"context"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

// MemberScoreRow is one member's approved aggregate as read from the ledger.
type MemberScoreRow struct {
	MemberID        uint64
	Name            string
	Score           float64
	CompletionCount int
}

type TeamScoreRow struct {
	TeamID      uint64
	Name        string
	TotalPoints float64
	MemberCount int
}

// MemberTaskAggregate is the per-(member, task) approved sum pair the weighted
// category scoring consumes.
type MemberTaskAggregate struct {
	MemberID  uint64
	TaskID    uint64
	SumCount  float64
	SumPoints float64
}

type EntityScore struct {
	ID    uint64
	Score float64
}

type MemberRef struct {
	ID       uint64
	Username string
	RealName string
	TeamID   *uint64
}

type LeaderboardRepository interface {
	// MemberScores lists every member with their approved points sum, zero
	// included, descending by score.
	MemberScores(ctx context.Context) ([]MemberScoreRow, error)
	// TeamMemberScores is MemberScores restricted to one team, with approved
	// completion counts attached.
	TeamMemberScores(ctx context.Context, teamID uint64) ([]MemberScoreRow, error)
	// TeamScores lists every team with its raw approved points sum and
	// distinct member count; mode math happens in the service.
	TeamScores(ctx context.Context) ([]TeamScoreRow, error)

	MemberTaskAggregates(ctx context.Context, taskIDs []uint64) ([]MemberTaskAggregate, error)
	MemberRefs(ctx context.Context, memberIDs []uint64) ([]MemberRef, error)
	TeamNames(ctx context.Context, teamIDs []uint64) (map[uint64]string, error)

	MemberTotalPoints(ctx context.Context, memberID uint64) (float64, error)
	// ApprovedScoreSet returns one row per member that has at least one
	// approved completion; members without any approved row are absent and
	// therefore unranked.
	ApprovedScoreSet(ctx context.Context) ([]EntityScore, error)
	// TeamScoreSet returns one row per team with its approved points sum.
	TeamScoreSet(ctx context.Context) ([]EntityScore, error)
	TaskBreakdown(ctx context.Context, memberID uint64) ([]domain.TaskBreakdownRow, error)
	TeamActivitySince(ctx context.Context, teamID uint64, since time.Time, limit int) ([]domain.TeamActivityItem, error)
}

type LeaderboardService interface {
	Members(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Teams(ctx context.Context, mode domain.TeamScoreMode) ([]domain.LeaderboardEntry, error)
	TeamMembers(ctx context.Context, teamID uint64) ([]domain.LeaderboardEntry, error)
	StatsCategory(ctx context.Context, categoryID uint64, scope domain.LeaderboardScope, limit int) ([]domain.LeaderboardEntry, error)
	MyScore(ctx context.Context, actor domain.Actor) (domain.ScoreSummary, error)
	TaskBreakdown(ctx context.Context, memberID uint64) ([]domain.TaskBreakdownRow, error)
	TeamActivity(ctx context.Context, actor domain.Actor) (domain.TeamActivity, error)
}
