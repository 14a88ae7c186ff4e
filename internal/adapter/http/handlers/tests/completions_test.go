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
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
	"github.com/pavelpernicka/scoutcomp/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type completionServiceMock struct {
	mock.Mock
}

func (m *completionServiceMock) Submit(ctx context.Context, actor domain.Actor, input domain.SubmitInput) (domain.Completion, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionServiceMock) ListTaskSubmissions(ctx context.Context, actor domain.Actor, taskID uint64) ([]domain.Completion, error) {
	args := m.Called(ctx, actor, taskID)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionServiceMock) ListPending(ctx context.Context, actor domain.Actor) ([]domain.Completion, error) {
	args := m.Called(ctx, actor)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionServiceMock) Review(ctx context.Context, actor domain.Actor, completionID uint64, input domain.ReviewInput) (domain.Completion, error) {
	args := m.Called(ctx, actor, completionID, input)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionServiceMock) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Completion, error) {
	args := m.Called(ctx, actor)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionServiceMock) ListForMember(ctx context.Context, actor domain.Actor, memberID uint64) ([]domain.Completion, error) {
	args := m.Called(ctx, actor, memberID)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionServiceMock) AdminCreate(ctx context.Context, actor domain.Actor, memberID uint64, input domain.AdminCreateCompletionInput) (domain.Completion, error) {
	args := m.Called(ctx, actor, memberID, input)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionServiceMock) AdminUpdate(ctx context.Context, actor domain.Actor, memberID, completionID uint64, input domain.AdminUpdateCompletionInput) (domain.Completion, error) {
	args := m.Called(ctx, actor, memberID, completionID, input)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionServiceMock) AdminDelete(ctx context.Context, actor domain.Actor, memberID, completionID uint64) error {
	args := m.Called(ctx, actor, memberID, completionID)
	return args.Error(0)
}

func TestCompletionHandler_SubmitCompletion_DefaultsCountToOne(t *testing.T) {
	submittedAt := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	serviceMock := new(completionServiceMock)
	serviceMock.On("Submit", mock.Anything, mock.Anything, domain.SubmitInput{
		TaskID: 1,
		Count:  1,
	}).Return(domain.Completion{
		ID:          10,
		MemberID:    7,
		TaskID:      1,
		Status:      domain.CompletionPending,
		SubmittedAt: submittedAt,
		Count:       1,
	}, nil).Once()
	handler := handlers.NewCompletionHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/submissions", middleware.LanguageMiddleware(), handler.SubmitCompletion)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/1/submissions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.CompletionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(10), got.ID)
	require.Equal(t, "pending", got.Status)
	require.Equal(t, "2026-04-10T12:00:00Z", got.SubmittedAt)
	require.Equal(t, 1, got.Count)
	serviceMock.AssertExpectations(t)
}

func TestCompletionHandler_SubmitCompletion_LimitReached(t *testing.T) {
	serviceMock := new(completionServiceMock)
	serviceMock.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Completion{}, domain.ErrLimitExceeded).Once()
	handler := handlers.NewCompletionHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/submissions", middleware.LanguageMiddleware(), handler.SubmitCompletion)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/1/submissions", strings.NewReader(`{"count":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Submission limit reached", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCompletionHandler_ReviewCompletion_RejectsNonTerminalStatus(t *testing.T) {
	serviceMock := new(completionServiceMock)
	handler := handlers.NewCompletionHandler(serviceMock)

	router := gin.New()
	router.POST("/api/reviews/:id", middleware.LanguageMiddleware(), handler.ReviewCompletion)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/10", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid request payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompletionHandler_ReviewCompletion_OrphanedConflict(t *testing.T) {
	serviceMock := new(completionServiceMock)
	serviceMock.On("Review", mock.Anything, mock.Anything, uint64(10), domain.ReviewInput{
		Status: domain.CompletionApproved,
	}).Return(domain.Completion{}, domain.ErrCompletionOrphaned).Once()
	handler := handlers.NewCompletionHandler(serviceMock)

	router := gin.New()
	router.POST("/api/reviews/:id", middleware.LanguageMiddleware(), handler.ReviewCompletion)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/10", strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusConflict, got.ErrDetails.Code)
	require.Equal(t, "Completion is missing related task or member", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
