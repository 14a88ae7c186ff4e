package service

import (
	"context"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

type StatCategoryService struct {
	categories ports.StatCategoryRepository
	tasks      ports.TaskRepository
}

func NewStatCategoryService(categories ports.StatCategoryRepository, tasks ports.TaskRepository) *StatCategoryService {
	return &StatCategoryService{categories: categories, tasks: tasks}
}

var _ ports.StatCategoryService = (*StatCategoryService)(nil)

func (s *StatCategoryService) ListSummaries(ctx context.Context) ([]domain.StatCategorySummary, error) {
	return s.categories.ListSummaries(ctx)
}

func (s *StatCategoryService) Manage(ctx context.Context) ([]domain.StatCategory, error) {
	return s.categories.ListWithComponents(ctx)
}

func (s *StatCategoryService) Create(ctx context.Context, input domain.CreateStatCategoryInput) (domain.StatCategory, error) {
	category := domain.StatCategory{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}

	// Inline components get their position from submission order.
	for i, componentInput := range input.Components {
		component, err := s.buildComponent(ctx, componentInput)
		if err != nil {
			return domain.StatCategory{}, err
		}
		component.Position = i
		category.Components = append(category.Components, component)
	}

	return s.categories.Create(ctx, category)
}

func (s *StatCategoryService) Update(ctx context.Context, categoryID uint64, input domain.UpdateStatCategoryInput) (domain.StatCategory, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return domain.StatCategory{}, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.DescriptionSet {
		category.Description = input.Description
	}
	if input.IconSet {
		category.Icon = input.Icon
	}

	return s.categories.Save(ctx, category)
}

func (s *StatCategoryService) Delete(ctx context.Context, categoryID uint64) error {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return s.categories.Delete(ctx, categoryID)
}

func (s *StatCategoryService) AddComponent(ctx context.Context, categoryID uint64, input domain.CreateComponentInput) (domain.StatCategoryComponent, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return domain.StatCategoryComponent{}, err
	}

	component, err := s.buildComponent(ctx, input)
	if err != nil {
		return domain.StatCategoryComponent{}, err
	}
	component.CategoryID = category.ID
	if input.Position != nil {
		component.Position = *input.Position
	} else {
		component.Position = len(category.Components)
	}

	return s.categories.CreateComponent(ctx, component)
}

func (s *StatCategoryService) UpdateComponent(ctx context.Context, componentID uint64, input domain.UpdateComponentInput) (domain.StatCategoryComponent, error) {
	component, err := s.categories.GetComponent(ctx, componentID)
	if err != nil {
		return domain.StatCategoryComponent{}, err
	}

	if input.TaskID != nil && *input.TaskID != component.TaskID {
		if _, err := s.tasks.GetByID(ctx, *input.TaskID); err != nil {
			return domain.StatCategoryComponent{}, err
		}
		component.TaskID = *input.TaskID
	}
	if input.Metric != nil {
		if !domain.ValidStatMetric(*input.Metric) {
			return domain.StatCategoryComponent{}, domain.ErrInvalidMetric
		}
		component.Metric = *input.Metric
	}
	if input.Weight != nil {
		component.Weight = *input.Weight
	}
	if input.Position != nil {
		component.Position = *input.Position
	}

	return s.categories.SaveComponent(ctx, component)
}

func (s *StatCategoryService) DeleteComponent(ctx context.Context, componentID uint64) error {
	if _, err := s.categories.GetComponent(ctx, componentID); err != nil {
		return err
	}
	return s.categories.DeleteComponent(ctx, componentID)
}

func (s *StatCategoryService) buildComponent(ctx context.Context, input domain.CreateComponentInput) (domain.StatCategoryComponent, error) {
	if _, err := s.tasks.GetByID(ctx, input.TaskID); err != nil {
		return domain.StatCategoryComponent{}, err
	}
	if !domain.ValidStatMetric(input.Metric) {
		return domain.StatCategoryComponent{}, domain.ErrInvalidMetric
	}

	component := domain.StatCategoryComponent{
		TaskID: input.TaskID,
		Metric: input.Metric,
		Weight: input.Weight,
	}
	if input.Position != nil {
		component.Position = *input.Position
	}
	return component, nil
}
