package mapper

import (
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

func ToStatCategorySummaryItems(summaries []domain.StatCategorySummary) []dto.StatCategorySummaryItem {
	items := make([]dto.StatCategorySummaryItem, 0, len(summaries))
	for _, summary := range summaries {
		item := dto.StatCategorySummaryItem{
			ID:             summary.ID,
			Name:           summary.Name,
			ComponentCount: summary.ComponentCount,
			CreatedAt:      summary.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      summary.UpdatedAt.Format(time.RFC3339),
		}
		if summary.Description != nil {
			value := *summary.Description
			item.Description = &value
		}
		if summary.Icon != nil {
			value := *summary.Icon
			item.Icon = &value
		}
		items = append(items, item)
	}
	return items
}

func ToStatCategoryItems(categories []domain.StatCategory) []dto.StatCategoryItem {
	items := make([]dto.StatCategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToStatCategoryItem(category))
	}
	return items
}

func ToStatCategoryItem(category domain.StatCategory) dto.StatCategoryItem {
	item := dto.StatCategoryItem{
		ID:         category.ID,
		Name:       category.Name,
		CreatedAt:  category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  category.UpdatedAt.Format(time.RFC3339),
		Components: make([]dto.StatCategoryComponentItem, 0, len(category.Components)),
	}

	if category.Description != nil {
		value := *category.Description
		item.Description = &value
	}

	if category.Icon != nil {
		value := *category.Icon
		item.Icon = &value
	}

	for _, component := range category.Components {
		item.Components = append(item.Components, ToStatCategoryComponentItem(component))
	}

	return item
}

func ToStatCategoryComponentItem(component domain.StatCategoryComponent) dto.StatCategoryComponentItem {
	item := dto.StatCategoryComponentItem{
		ID:         component.ID,
		CategoryID: component.CategoryID,
		TaskID:     component.TaskID,
		Metric:     string(component.Metric),
		Weight:     component.Weight,
		Position:   component.Position,
		CreatedAt:  component.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  component.UpdatedAt.Format(time.RFC3339),
	}

	if component.TaskName != nil {
		value := *component.TaskName
		item.TaskName = &value
	}

	return item
}
