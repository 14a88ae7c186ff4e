package service

import (
	"context"
	"sort"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

const (
	DefaultLeaderboardLimit = 100
	MaxLeaderboardLimit     = 500

	teamActivityWindow = 7 * 24 * time.Hour
	teamActivityLimit  = 20
)

// LeaderboardService computes every ranking live from the completion ledger;
// nothing is materialized or cached.
type LeaderboardService struct {
	scores     ports.LeaderboardRepository
	categories ports.StatCategoryRepository
	members    ports.MemberRepository
	now        func() time.Time
}

func NewLeaderboardService(scores ports.LeaderboardRepository, categories ports.StatCategoryRepository, members ports.MemberRepository) *LeaderboardService {
	return &LeaderboardService{scores: scores, categories: categories, members: members, now: time.Now}
}

var _ ports.LeaderboardService = (*LeaderboardService)(nil)

func (s *LeaderboardService) Members(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := s.scores.MemberScores(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			EntityID: row.MemberID,
			Name:     row.Name,
			Score:    row.Score,
			Rank:     i + 1,
		})
	}
	return entries, nil
}

func (s *LeaderboardService) Teams(ctx context.Context, mode domain.TeamScoreMode) ([]domain.LeaderboardEntry, error) {
	rows, err := s.scores.TeamScores(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		score := row.TotalPoints
		if mode == domain.TeamScoreAverage && row.MemberCount > 0 {
			score = row.TotalPoints / float64(row.MemberCount)
		}
		memberCount := row.MemberCount
		totalPoints := row.TotalPoints
		entries = append(entries, domain.LeaderboardEntry{
			EntityID:    row.TeamID,
			Name:        row.Name,
			Score:       score,
			MemberCount: &memberCount,
			TotalPoints: &totalPoints,
		})
	}

	sortEntriesByScore(entries)
	rankEntries(entries)
	return entries, nil
}

func (s *LeaderboardService) TeamMembers(ctx context.Context, teamID uint64) ([]domain.LeaderboardEntry, error) {
	if _, err := s.members.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	rows, err := s.scores.TeamMemberScores(ctx, teamID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		completions := row.CompletionCount
		entries = append(entries, domain.LeaderboardEntry{
			EntityID:    row.MemberID,
			Name:        row.Name,
			Score:       row.Score,
			Rank:        i + 1,
			MemberCount: &completions,
		})
	}
	return entries, nil
}

func (s *LeaderboardService) StatsCategory(ctx context.Context, categoryID uint64, scope domain.LeaderboardScope, limit int) ([]domain.LeaderboardEntry, error) {
	if limit < 1 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(category.Components) == 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	taskIDs := make([]uint64, 0, len(category.Components))
	seen := make(map[uint64]bool, len(category.Components))
	for _, component := range category.Components {
		if !seen[component.TaskID] {
			seen[component.TaskID] = true
			taskIDs = append(taskIDs, component.TaskID)
		}
	}

	aggregates, err := s.scores.MemberTaskAggregates(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	if len(aggregates) == 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	type taskMetrics struct {
		points float64
		count  float64
	}
	metricsByMember := make(map[uint64]map[uint64]taskMetrics)
	memberIDs := make([]uint64, 0)
	for _, row := range aggregates {
		taskMap, ok := metricsByMember[row.MemberID]
		if !ok {
			taskMap = make(map[uint64]taskMetrics)
			metricsByMember[row.MemberID] = taskMap
			memberIDs = append(memberIDs, row.MemberID)
		}
		taskMap[row.TaskID] = taskMetrics{points: row.SumPoints, count: row.SumCount}
	}

	refs, err := s.scores.MemberRefs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	refByID := make(map[uint64]ports.MemberRef, len(refs))
	for _, ref := range refs {
		refByID[ref.ID] = ref
	}

	type memberScore struct {
		score float64
		raw   float64
	}
	scoresByMember := make(map[uint64]memberScore)
	for memberID, taskValues := range metricsByMember {
		var total, raw float64
		for _, component := range category.Components {
			values, ok := taskValues[component.TaskID]
			var metricValue float64
			if ok {
				if component.Metric == domain.StatMetricPoints {
					metricValue = values.points
				} else {
					metricValue = values.count
				}
			}
			total += component.Weight * metricValue
			raw += metricValue
		}
		// Members with no activity across the components stay out of the
		// board entirely instead of ranking at zero.
		if _, known := refByID[memberID]; known && (raw != 0 || total != 0) {
			scoresByMember[memberID] = memberScore{score: total, raw: raw}
		}
	}

	if len(scoresByMember) == 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	if scope == domain.ScopeTeams {
		type teamScore struct {
			score     float64
			raw       float64
			memberIDs map[uint64]bool
		}
		teamScores := make(map[uint64]*teamScore)
		for memberID, aggregate := range scoresByMember {
			ref := refByID[memberID]
			if ref.TeamID == nil {
				continue
			}
			entry, ok := teamScores[*ref.TeamID]
			if !ok {
				entry = &teamScore{memberIDs: make(map[uint64]bool)}
				teamScores[*ref.TeamID] = entry
			}
			entry.score += aggregate.score
			entry.raw += aggregate.raw
			entry.memberIDs[memberID] = true
		}
		if len(teamScores) == 0 {
			return []domain.LeaderboardEntry{}, nil
		}

		teamIDs := make([]uint64, 0, len(teamScores))
		for teamID := range teamScores {
			teamIDs = append(teamIDs, teamID)
		}
		names, err := s.scores.TeamNames(ctx, teamIDs)
		if err != nil {
			return nil, err
		}

		entries := make([]domain.LeaderboardEntry, 0, len(teamScores))
		for teamID, aggregate := range teamScores {
			name, ok := names[teamID]
			if !ok {
				continue
			}
			memberCount := len(aggregate.memberIDs)
			raw := aggregate.raw
			entries = append(entries, domain.LeaderboardEntry{
				EntityID:    teamID,
				Name:        name,
				Score:       aggregate.score,
				MemberCount: &memberCount,
				TotalPoints: &raw,
			})
		}
		sortEntriesByScore(entries)
		entries = truncateEntries(entries, limit)
		rankEntries(entries)
		return entries, nil
	}

	entries := make([]domain.LeaderboardEntry, 0, len(scoresByMember))
	for memberID, aggregate := range scoresByMember {
		ref := refByID[memberID]
		name := ref.RealName
		if name == "" {
			name = ref.Username
		}
		raw := aggregate.raw
		entries = append(entries, domain.LeaderboardEntry{
			EntityID:    memberID,
			Name:        name,
			Score:       aggregate.score,
			TotalPoints: &raw,
		})
	}
	sortEntriesByScore(entries)
	entries = truncateEntries(entries, limit)
	rankEntries(entries)
	return entries, nil
}

func (s *LeaderboardService) MyScore(ctx context.Context, actor domain.Actor) (domain.ScoreSummary, error) {
	totalPoints, err := s.scores.MemberTotalPoints(ctx, actor.ID)
	if err != nil {
		return domain.ScoreSummary{}, err
	}

	summary := domain.ScoreSummary{TotalPoints: totalPoints}

	memberSet, err := s.scores.ApprovedScoreSet(ctx)
	if err != nil {
		return domain.ScoreSummary{}, err
	}
	summary.MemberRank = rankWithin(memberSet, actor.ID)

	if actor.TeamID != nil {
		teamSet, err := s.scores.TeamScoreSet(ctx)
		if err != nil {
			return domain.ScoreSummary{}, err
		}
		summary.TeamRank = rankWithin(teamSet, *actor.TeamID)
	}

	return summary, nil
}

func (s *LeaderboardService) TaskBreakdown(ctx context.Context, memberID uint64) ([]domain.TaskBreakdownRow, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.scores.TaskBreakdown(ctx, memberID)
}

func (s *LeaderboardService) TeamActivity(ctx context.Context, actor domain.Actor) (domain.TeamActivity, error) {
	if actor.TeamID == nil {
		return domain.TeamActivity{Items: []domain.TeamActivityItem{}}, nil
	}

	since := s.now().Add(-teamActivityWindow)
	items, err := s.scores.TeamActivitySince(ctx, *actor.TeamID, since, teamActivityLimit)
	if err != nil {
		return domain.TeamActivity{}, err
	}

	activity := domain.TeamActivity{Items: items}
	activeMembers := make(map[uint64]bool)
	for _, item := range items {
		activity.TotalPoints += item.Points
		activity.TotalCompletions++
		activeMembers[item.MemberID] = true
	}
	activity.ActiveMembers = len(activeMembers)
	return activity, nil
}

// rankWithin computes the strictly-greater rank of an entity inside a score
// set: 1 plus the number of entities with a higher score. Tied scores share a
// rank. Entities absent from the set have no rank.
func rankWithin(set []ports.EntityScore, entityID uint64) *int {
	var own *float64
	for _, row := range set {
		if row.ID == entityID {
			score := row.Score
			own = &score
			break
		}
	}
	if own == nil {
		return nil
	}

	higher := 0
	for _, row := range set {
		if row.Score > *own {
			higher++
		}
	}
	rank := higher + 1
	return &rank
}

func sortEntriesByScore(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

func rankEntries(entries []domain.LeaderboardEntry) {
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

func truncateEntries(entries []domain.LeaderboardEntry, limit int) []domain.LeaderboardEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
