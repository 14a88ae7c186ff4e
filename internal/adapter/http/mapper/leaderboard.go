package mapper

import (
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

func ToLeaderboardEntryItems(entries []domain.LeaderboardEntry) []dto.LeaderboardEntryItem {
	items := make([]dto.LeaderboardEntryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToLeaderboardEntryItem(entry))
	}
	return items
}

func ToLeaderboardEntryItem(entry domain.LeaderboardEntry) dto.LeaderboardEntryItem {
	item := dto.LeaderboardEntryItem{
		EntityID: entry.EntityID,
		Name:     entry.Name,
		Score:    entry.Score,
		Rank:     entry.Rank,
	}

	if entry.MemberCount != nil {
		value := *entry.MemberCount
		item.MemberCount = &value
	}

	if entry.TotalPoints != nil {
		value := *entry.TotalPoints
		item.TotalPoints = &value
	}

	return item
}

func ToScoreSummaryItem(summary domain.ScoreSummary) dto.ScoreSummaryItem {
	item := dto.ScoreSummaryItem{TotalPoints: summary.TotalPoints}

	if summary.MemberRank != nil {
		value := *summary.MemberRank
		item.MemberRank = &value
	}

	if summary.TeamRank != nil {
		value := *summary.TeamRank
		item.TeamRank = &value
	}

	return item
}

func ToTaskBreakdownItems(rows []domain.TaskBreakdownRow) []dto.TaskBreakdownItem {
	items := make([]dto.TaskBreakdownItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.TaskBreakdownItem(row))
	}
	return items
}

func ToTeamActivityItem(activity domain.TeamActivity) dto.TeamActivityItem {
	entries := make([]dto.TeamActivityEntry, 0, len(activity.Items))
	for _, item := range activity.Items {
		entries = append(entries, dto.TeamActivityEntry{
			CompletionID: item.CompletionID,
			MemberID:     item.MemberID,
			MemberName:   item.MemberName,
			TaskName:     item.TaskName,
			Points:       item.Points,
			Count:        item.Count,
			ReviewedAt:   item.ReviewedAt.Format(time.RFC3339),
		})
	}

	return dto.TeamActivityItem{
		Items:            entries,
		TotalPoints:      activity.TotalPoints,
		TotalCompletions: activity.TotalCompletions,
		ActiveMembers:    activity.ActiveMembers,
	}
}
