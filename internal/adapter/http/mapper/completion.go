package mapper

import (
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

func ToCompletionItems(completions []domain.Completion) []dto.CompletionItem {
	items := make([]dto.CompletionItem, 0, len(completions))
	for _, completion := range completions {
		items = append(items, ToCompletionItem(completion))
	}
	return items
}

func ToCompletionItem(completion domain.Completion) dto.CompletionItem {
	item := dto.CompletionItem{
		ID:            completion.ID,
		MemberID:      completion.MemberID,
		TaskID:        completion.TaskID,
		Status:        string(completion.Status),
		SubmittedAt:   completion.SubmittedAt.Format(time.RFC3339),
		PointsAwarded: completion.PointsAwarded,
		Count:         completion.Count,
	}

	if completion.VariantID != nil {
		value := *completion.VariantID
		item.VariantID = &value
	}

	if completion.ReviewedAt != nil {
		value := completion.ReviewedAt.Format(time.RFC3339)
		item.ReviewedAt = &value
	}

	if completion.ReviewerID != nil {
		value := *completion.ReviewerID
		item.ReviewerID = &value
	}

	if completion.MemberNote != nil {
		value := *completion.MemberNote
		item.MemberNote = &value
	}

	if completion.AdminNote != nil {
		value := *completion.AdminNote
		item.AdminNote = &value
	}

	if completion.TaskName != nil {
		value := *completion.TaskName
		item.TaskName = &value
	}

	if completion.MemberName != nil {
		value := *completion.MemberName
		item.MemberName = &value
	}

	if completion.TeamName != nil {
		value := *completion.TeamName
		item.TeamName = &value
	}

	if completion.VariantName != nil {
		value := *completion.VariantName
		item.VariantName = &value
	}

	return item
}
