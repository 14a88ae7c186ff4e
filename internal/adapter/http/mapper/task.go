package mapper

import (
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

func ToTaskItems(tasks []ports.TaskWithProgress) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItemWithProgress(task))
	}
	return items
}

func ToTaskItemWithProgress(task ports.TaskWithProgress) dto.TaskItem {
	item := ToTaskItem(task.Task)
	progress := ToProgressItem(task.Progress)
	item.Progress = &progress
	return item
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                  task.ID,
		Name:                task.Name,
		StartTime:           task.StartTime.Format(time.RFC3339),
		PointsPerCompletion: task.PointsPerCompletion,
		RequiresApproval:    task.RequiresApproval,
		IsArchived:          task.IsArchived,
		CreatedAt:           task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           task.UpdatedAt.Format(time.RFC3339),
	}

	if task.TeamID != nil {
		value := *task.TeamID
		item.TeamID = &value
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.EndTime != nil {
		value := task.EndTime.Format(time.RFC3339)
		item.EndTime = &value
	}

	if task.MaxPerPeriod != nil {
		value := *task.MaxPerPeriod
		item.MaxPerPeriod = &value
	}

	if task.PeriodUnit != nil {
		value := string(*task.PeriodUnit)
		item.PeriodUnit = &value
	}

	if task.PeriodCount != nil {
		value := *task.PeriodCount
		item.PeriodCount = &value
	}

	if len(task.Variants) > 0 {
		item.Variants = ToVariantItems(task.Variants)
	}

	return item
}

func ToVariantItems(variants []domain.TaskVariant) []dto.VariantItem {
	items := make([]dto.VariantItem, 0, len(variants))
	for _, variant := range variants {
		items = append(items, ToVariantItem(variant))
	}
	return items
}

func ToVariantItem(variant domain.TaskVariant) dto.VariantItem {
	item := dto.VariantItem{
		ID:        variant.ID,
		TaskID:    variant.TaskID,
		Name:      variant.Name,
		Points:    variant.Points,
		Position:  variant.Position,
		CreatedAt: variant.CreatedAt.Format(time.RFC3339),
		UpdatedAt: variant.UpdatedAt.Format(time.RFC3339),
	}

	if variant.Description != nil {
		value := *variant.Description
		item.Description = &value
	}

	return item
}

func ToProgressItem(progress domain.Progress) dto.ProgressItem {
	item := dto.ProgressItem{
		Current:  progress.Current,
		Lifetime: progress.Lifetime,
	}

	if progress.Remaining != nil {
		value := *progress.Remaining
		item.Remaining = &value
	}

	if progress.Limit != nil {
		value := *progress.Limit
		item.Limit = &value
	}

	if progress.PeriodStart != nil {
		value := progress.PeriodStart.Format(time.RFC3339)
		item.PeriodStart = &value
	}

	if progress.PeriodEnd != nil {
		value := progress.PeriodEnd.Format(time.RFC3339)
		item.PeriodEnd = &value
	}

	return item
}
