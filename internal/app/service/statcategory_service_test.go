package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

func TestStatCategoryService_Create_PositionsFollowSubmissionOrder(t *testing.T) {
	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, uint64(10)).Return(domain.Task{ID: 10}, nil).Once()
	tasks.On("GetByID", mock.Anything, uint64(20)).Return(domain.Task{ID: 20}, nil).Once()

	categories := new(statCategoryRepoMock)
	categories.On("Create", mock.Anything, mock.MatchedBy(func(category domain.StatCategory) bool {
		return len(category.Components) == 2 &&
			category.Components[0].TaskID == 10 && category.Components[0].Position == 0 &&
			category.Components[1].TaskID == 20 && category.Components[1].Position == 1
	})).Return(domain.StatCategory{ID: 1, Name: "Tábornické dovednosti"}, nil).Once()

	svc := NewStatCategoryService(categories, tasks)

	created, err := svc.Create(context.Background(), domain.CreateStatCategoryInput{
		Name: "Tábornické dovednosti",
		Components: []domain.CreateComponentInput{
			{TaskID: 10, Metric: domain.StatMetricPoints, Weight: 2},
			{TaskID: 20, Metric: domain.StatMetricCompletions, Weight: 0.5},
		},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), created.ID)
	categories.AssertExpectations(t)
}

func TestStatCategoryService_Create_ComponentValidation(t *testing.T) {
	t.Run("unknown task", func(t *testing.T) {
		tasks := new(taskRepoMock)
		tasks.On("GetByID", mock.Anything, uint64(99)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

		categories := new(statCategoryRepoMock)
		svc := NewStatCategoryService(categories, tasks)

		_, err := svc.Create(context.Background(), domain.CreateStatCategoryInput{
			Name: "Sport",
			Components: []domain.CreateComponentInput{
				{TaskID: 99, Metric: domain.StatMetricPoints, Weight: 1},
			},
		})
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
		categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid metric", func(t *testing.T) {
		tasks := new(taskRepoMock)
		tasks.On("GetByID", mock.Anything, uint64(10)).Return(domain.Task{ID: 10}, nil).Once()

		categories := new(statCategoryRepoMock)
		svc := NewStatCategoryService(categories, tasks)

		_, err := svc.Create(context.Background(), domain.CreateStatCategoryInput{
			Name: "Sport",
			Components: []domain.CreateComponentInput{
				{TaskID: 10, Metric: domain.StatMetric("hours"), Weight: 1},
			},
		})
		require.ErrorIs(t, err, domain.ErrInvalidMetric)
		categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestStatCategoryService_Update_SetFlagsControlClearing(t *testing.T) {
	description := "starý popis"
	icon := "tent"
	existing := domain.StatCategory{ID: 1, Name: "Sport", Description: &description, Icon: &icon}

	categories := new(statCategoryRepoMock)
	categories.On("GetByID", mock.Anything, uint64(1)).Return(existing, nil).Once()
	categories.On("Save", mock.Anything, mock.MatchedBy(func(category domain.StatCategory) bool {
		return category.Description == nil && category.Icon != nil && *category.Icon == "tent"
	})).Return(domain.StatCategory{ID: 1, Name: "Sport", Icon: &icon}, nil).Once()

	svc := NewStatCategoryService(categories, new(taskRepoMock))

	_, err := svc.Update(context.Background(), 1, domain.UpdateStatCategoryInput{
		DescriptionSet: true,
		Description:    nil,
	})
	require.NoError(t, err)
	categories.AssertExpectations(t)
}

func TestStatCategoryService_AddComponent_DefaultsPositionToEnd(t *testing.T) {
	category := domain.StatCategory{
		ID: 1,
		Components: []domain.StatCategoryComponent{
			{ID: 1, CategoryID: 1, Position: 0},
			{ID: 2, CategoryID: 1, Position: 1},
		},
	}

	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, uint64(30)).Return(domain.Task{ID: 30}, nil).Once()

	categories := new(statCategoryRepoMock)
	categories.On("GetByID", mock.Anything, uint64(1)).Return(category, nil).Once()
	categories.On("CreateComponent", mock.Anything, mock.MatchedBy(func(component domain.StatCategoryComponent) bool {
		return component.CategoryID == 1 && component.TaskID == 30 && component.Position == 2
	})).Return(domain.StatCategoryComponent{ID: 3, CategoryID: 1, Position: 2}, nil).Once()

	svc := NewStatCategoryService(categories, tasks)

	created, err := svc.AddComponent(context.Background(), 1, domain.CreateComponentInput{
		TaskID: 30,
		Metric: domain.StatMetricPoints,
		Weight: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 2, created.Position)
	categories.AssertExpectations(t)
}

func TestStatCategoryService_UpdateComponent_ValidatesNewTask(t *testing.T) {
	existing := domain.StatCategoryComponent{ID: 3, CategoryID: 1, TaskID: 10, Metric: domain.StatMetricPoints, Weight: 1}

	tasks := new(taskRepoMock)
	tasks.On("GetByID", mock.Anything, uint64(99)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	categories := new(statCategoryRepoMock)
	categories.On("GetComponent", mock.Anything, uint64(3)).Return(existing, nil).Once()

	svc := NewStatCategoryService(categories, tasks)

	badTask := uint64(99)
	_, err := svc.UpdateComponent(context.Background(), 3, domain.UpdateComponentInput{TaskID: &badTask})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	categories.AssertNotCalled(t, "SaveComponent", mock.Anything, mock.Anything)
}

func TestStatCategoryService_Delete_UnknownCategory(t *testing.T) {
	categories := new(statCategoryRepoMock)
	categories.On("GetByID", mock.Anything, uint64(8)).Return(domain.StatCategory{}, domain.ErrCategoryNotFound).Once()

	svc := NewStatCategoryService(categories, new(taskRepoMock))

	err := svc.Delete(context.Background(), 8)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
