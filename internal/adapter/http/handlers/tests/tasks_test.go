package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/dto"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/handlers"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
	"github.com/pavelpernicka/scoutcomp/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context, actor domain.Actor, input domain.ListTasksInput) ([]ports.TaskWithProgress, error) {
	args := m.Called(ctx, actor, input)

	var tasks []ports.TaskWithProgress
	if value := args.Get(0); value != nil {
		tasks = value.([]ports.TaskWithProgress)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, actor domain.Actor, taskID uint64) (ports.TaskWithProgress, error) {
	args := m.Called(ctx, actor, taskID)
	return args.Get(0).(ports.TaskWithProgress), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Archive(ctx context.Context, taskID uint64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) Unarchive(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ForceDelete(ctx context.Context, taskID uint64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) CreateVariant(ctx context.Context, taskID uint64, input domain.CreateVariantInput) (domain.TaskVariant, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.TaskVariant), args.Error(1)
}

func (m *taskServiceMock) UpdateVariant(ctx context.Context, taskID, variantID uint64, input domain.UpdateVariantInput) (domain.TaskVariant, error) {
	args := m.Called(ctx, taskID, variantID, input)
	return args.Get(0).(domain.TaskVariant), args.Error(1)
}

func (m *taskServiceMock) DeleteVariant(ctx context.Context, taskID, variantID uint64) error {
	args := m.Called(ctx, taskID, variantID)
	return args.Error(0)
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	description := "naučit se šest základních uzlů"
	startTime := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 20, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 3, 21, 11, 20, 30, 0, time.UTC)
	maxPerPeriod := 3
	periodCount := 1
	unit := domain.PeriodUnitWeek
	remaining := 2
	windowStart := time.Date(2026, 4, 8, 8, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, mock.Anything, domain.ListTasksInput{}).Return(
		[]ports.TaskWithProgress{
			{
				Task: domain.Task{
					ID:                  1,
					Name:                "Uzlování",
					Description:         &description,
					StartTime:           startTime,
					PointsPerCompletion: 2.5,
					MaxPerPeriod:        &maxPerPeriod,
					PeriodUnit:          &unit,
					PeriodCount:         &periodCount,
					RequiresApproval:    true,
					CreatedAt:           createdAt,
					UpdatedAt:           updatedAt,
				},
				Progress: domain.Progress{
					Current:     1,
					Remaining:   &remaining,
					Limit:       &maxPerPeriod,
					PeriodStart: &windowStart,
					PeriodEnd:   &windowEnd,
					Lifetime:    4,
				},
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks", middleware.LanguageMiddleware(), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, uint64(1), got[0].ID)
	require.Equal(t, "Uzlování", got[0].Name)
	require.Equal(t, "naučit se šest základních uzlů", *got[0].Description)
	require.Equal(t, "2026-04-01T08:00:00Z", got[0].StartTime)
	require.Equal(t, 2.5, got[0].PointsPerCompletion)
	require.Equal(t, 3, *got[0].MaxPerPeriod)
	require.Equal(t, "week", *got[0].PeriodUnit)
	require.True(t, got[0].RequiresApproval)
	require.Equal(t, "2026-03-20T10:20:30Z", got[0].CreatedAt)
	require.NotNil(t, got[0].Progress)
	require.Equal(t, 1, got[0].Progress.Current)
	require.Equal(t, 2, *got[0].Progress.Remaining)
	require.Equal(t, "2026-04-08T08:00:00Z", *got[0].Progress.PeriodStart)
	require.Equal(t, "2026-04-15T08:00:00Z", *got[0].Progress.PeriodEnd)
	require.Equal(t, 4, got[0].Progress.Lifetime)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_UnknownStatusFilter(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks", middleware.LanguageMiddleware(), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?status=paused", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid request payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_GetTask_Archived(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Get", mock.Anything, mock.Anything, uint64(7)).
		Return(ports.TaskWithProgress{}, domain.ErrTaskArchived).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id", middleware.LanguageMiddleware(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/7", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusGone, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusGone, got.ErrDetails.Code)
	require.Equal(t, "Task archived", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_BadIDParam(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id", middleware.LanguageMiddleware(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/abc", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateTask_PeriodConfigRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, mock.Anything).
		Return(domain.Task{}, domain.ErrPeriodConfig).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), handler.CreateTask)

	body := `{"name":"Morseovka","max_per_period":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "period_unit and period_count are required when max_per_period is set", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateVariant_PositionTaken(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateVariant", mock.Anything, uint64(6), mock.Anything).
		Return(domain.TaskVariant{}, domain.ErrVariantPosition).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/variants", middleware.LanguageMiddleware(), handler.CreateVariant)

	body := `{"name":"Lehká","points":2,"position":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/6/variants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Variant position already in use", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	startTime := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Name == "Stavba stanu" &&
			input.PointsPerCompletion == 10 &&
			input.RequiresApproval
	})).Return(domain.Task{
		ID:                  3,
		Name:                "Stavba stanu",
		StartTime:           startTime,
		PointsPerCompletion: 10,
		RequiresApproval:    true,
		CreatedAt:           startTime,
		UpdatedAt:           startTime,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), handler.CreateTask)

	body := `{"name":"Stavba stanu","points_per_completion":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(3), got.ID)
	require.Equal(t, "Stavba stanu", got.Name)
	require.Nil(t, got.Progress)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteVariant_NoContent(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteVariant", mock.Anything, uint64(6), uint64(2)).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/tasks/:id/variants/:variantId", middleware.LanguageMiddleware(), handler.DeleteVariant)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/6/variants/2", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
