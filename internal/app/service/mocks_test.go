package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) List(ctx context.Context, query ports.ListTasksQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) GetByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepoMock) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepoMock) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepoMock) Delete(ctx context.Context, taskID uint64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *taskRepoMock) CreateVariant(ctx context.Context, variant domain.TaskVariant) (domain.TaskVariant, error) {
	args := m.Called(ctx, variant)
	return args.Get(0).(domain.TaskVariant), args.Error(1)
}

func (m *taskRepoMock) SaveVariant(ctx context.Context, variant domain.TaskVariant) (domain.TaskVariant, error) {
	args := m.Called(ctx, variant)
	return args.Get(0).(domain.TaskVariant), args.Error(1)
}

func (m *taskRepoMock) DeleteVariant(ctx context.Context, variantID uint64) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

type completionRepoMock struct {
	mock.Mock
}

func (m *completionRepoMock) GetByID(ctx context.Context, completionID uint64) (domain.Completion, error) {
	args := m.Called(ctx, completionID)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionRepoMock) GetForMember(ctx context.Context, completionID, memberID uint64) (domain.Completion, error) {
	args := m.Called(ctx, completionID, memberID)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionRepoMock) ListPending(ctx context.Context, teamIDs []uint64) ([]domain.Completion, error) {
	args := m.Called(ctx, teamIDs)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionRepoMock) ListByMember(ctx context.Context, memberID uint64) ([]domain.Completion, error) {
	args := m.Called(ctx, memberID)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionRepoMock) ListByTask(ctx context.Context, taskID uint64, memberID *uint64) ([]domain.Completion, error) {
	args := m.Called(ctx, taskID, memberID)

	var completions []domain.Completion
	if value := args.Get(0); value != nil {
		completions = value.([]domain.Completion)
	}
	return completions, args.Error(1)
}

func (m *completionRepoMock) SumCountInWindow(ctx context.Context, taskID, memberID uint64, start, end time.Time) (int, error) {
	args := m.Called(ctx, taskID, memberID, start, end)
	return args.Int(0), args.Error(1)
}

func (m *completionRepoMock) SumCountLifetime(ctx context.Context, taskID, memberID uint64) (int, error) {
	args := m.Called(ctx, taskID, memberID)
	return args.Int(0), args.Error(1)
}

func (m *completionRepoMock) Create(ctx context.Context, completion domain.Completion, notification *domain.Notification) (domain.Completion, error) {
	args := m.Called(ctx, completion, notification)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionRepoMock) Save(ctx context.Context, completion domain.Completion, notification *domain.Notification) (domain.Completion, error) {
	args := m.Called(ctx, completion, notification)
	return args.Get(0).(domain.Completion), args.Error(1)
}

func (m *completionRepoMock) Delete(ctx context.Context, completionID uint64) error {
	args := m.Called(ctx, completionID)
	return args.Error(0)
}

type memberRepoMock struct {
	mock.Mock
}

func (m *memberRepoMock) GetByID(ctx context.Context, memberID uint64) (domain.Member, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(domain.Member), args.Error(1)
}

func (m *memberRepoMock) ManagedTeamIDs(ctx context.Context, memberID uint64) ([]uint64, error) {
	args := m.Called(ctx, memberID)

	var ids []uint64
	if value := args.Get(0); value != nil {
		ids = value.([]uint64)
	}
	return ids, args.Error(1)
}

func (m *memberRepoMock) GetTeam(ctx context.Context, teamID uint64) (domain.Team, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *memberRepoMock) TeamExists(ctx context.Context, teamID uint64) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

type leaderboardRepoMock struct {
	mock.Mock
}

func (m *leaderboardRepoMock) MemberScores(ctx context.Context) ([]ports.MemberScoreRow, error) {
	args := m.Called(ctx)

	var rows []ports.MemberScoreRow
	if value := args.Get(0); value != nil {
		rows = value.([]ports.MemberScoreRow)
	}
	return rows, args.Error(1)
}

func (m *leaderboardRepoMock) TeamMemberScores(ctx context.Context, teamID uint64) ([]ports.MemberScoreRow, error) {
	args := m.Called(ctx, teamID)

	var rows []ports.MemberScoreRow
	if value := args.Get(0); value != nil {
		rows = value.([]ports.MemberScoreRow)
	}
	return rows, args.Error(1)
}

func (m *leaderboardRepoMock) TeamScores(ctx context.Context) ([]ports.TeamScoreRow, error) {
	args := m.Called(ctx)

	var rows []ports.TeamScoreRow
	if value := args.Get(0); value != nil {
		rows = value.([]ports.TeamScoreRow)
	}
	return rows, args.Error(1)
}

func (m *leaderboardRepoMock) MemberTaskAggregates(ctx context.Context, taskIDs []uint64) ([]ports.MemberTaskAggregate, error) {
	args := m.Called(ctx, taskIDs)

	var rows []ports.MemberTaskAggregate
	if value := args.Get(0); value != nil {
		rows = value.([]ports.MemberTaskAggregate)
	}
	return rows, args.Error(1)
}

func (m *leaderboardRepoMock) MemberRefs(ctx context.Context, memberIDs []uint64) ([]ports.MemberRef, error) {
	args := m.Called(ctx, memberIDs)

	var refs []ports.MemberRef
	if value := args.Get(0); value != nil {
		refs = value.([]ports.MemberRef)
	}
	return refs, args.Error(1)
}

func (m *leaderboardRepoMock) TeamNames(ctx context.Context, teamIDs []uint64) (map[uint64]string, error) {
	args := m.Called(ctx, teamIDs)

	var names map[uint64]string
	if value := args.Get(0); value != nil {
		names = value.(map[uint64]string)
	}
	return names, args.Error(1)
}

func (m *leaderboardRepoMock) MemberTotalPoints(ctx context.Context, memberID uint64) (float64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *leaderboardRepoMock) ApprovedScoreSet(ctx context.Context) ([]ports.EntityScore, error) {
	args := m.Called(ctx)

	var scores []ports.EntityScore
	if value := args.Get(0); value != nil {
		scores = value.([]ports.EntityScore)
	}
	return scores, args.Error(1)
}

func (m *leaderboardRepoMock) TeamScoreSet(ctx context.Context) ([]ports.EntityScore, error) {
	args := m.Called(ctx)

	var scores []ports.EntityScore
	if value := args.Get(0); value != nil {
		scores = value.([]ports.EntityScore)
	}
	return scores, args.Error(1)
}

func (m *leaderboardRepoMock) TaskBreakdown(ctx context.Context, memberID uint64) ([]domain.TaskBreakdownRow, error) {
	args := m.Called(ctx, memberID)

	var rows []domain.TaskBreakdownRow
	if value := args.Get(0); value != nil {
		rows = value.([]domain.TaskBreakdownRow)
	}
	return rows, args.Error(1)
}

func (m *leaderboardRepoMock) TeamActivitySince(ctx context.Context, teamID uint64, since time.Time, limit int) ([]domain.TeamActivityItem, error) {
	args := m.Called(ctx, teamID, since, limit)

	var items []domain.TeamActivityItem
	if value := args.Get(0); value != nil {
		items = value.([]domain.TeamActivityItem)
	}
	return items, args.Error(1)
}

type statCategoryRepoMock struct {
	mock.Mock
}

func (m *statCategoryRepoMock) ListSummaries(ctx context.Context) ([]domain.StatCategorySummary, error) {
	args := m.Called(ctx)

	var summaries []domain.StatCategorySummary
	if value := args.Get(0); value != nil {
		summaries = value.([]domain.StatCategorySummary)
	}
	return summaries, args.Error(1)
}

func (m *statCategoryRepoMock) ListWithComponents(ctx context.Context) ([]domain.StatCategory, error) {
	args := m.Called(ctx)

	var categories []domain.StatCategory
	if value := args.Get(0); value != nil {
		categories = value.([]domain.StatCategory)
	}
	return categories, args.Error(1)
}

func (m *statCategoryRepoMock) GetByID(ctx context.Context, categoryID uint64) (domain.StatCategory, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.StatCategory), args.Error(1)
}

func (m *statCategoryRepoMock) Create(ctx context.Context, category domain.StatCategory) (domain.StatCategory, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.StatCategory), args.Error(1)
}

func (m *statCategoryRepoMock) Save(ctx context.Context, category domain.StatCategory) (domain.StatCategory, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.StatCategory), args.Error(1)
}

func (m *statCategoryRepoMock) Delete(ctx context.Context, categoryID uint64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *statCategoryRepoMock) GetComponent(ctx context.Context, componentID uint64) (domain.StatCategoryComponent, error) {
	args := m.Called(ctx, componentID)
	return args.Get(0).(domain.StatCategoryComponent), args.Error(1)
}

func (m *statCategoryRepoMock) CreateComponent(ctx context.Context, component domain.StatCategoryComponent) (domain.StatCategoryComponent, error) {
	args := m.Called(ctx, component)
	return args.Get(0).(domain.StatCategoryComponent), args.Error(1)
}

func (m *statCategoryRepoMock) SaveComponent(ctx context.Context, component domain.StatCategoryComponent) (domain.StatCategoryComponent, error) {
	args := m.Called(ctx, component)
	return args.Get(0).(domain.StatCategoryComponent), args.Error(1)
}

func (m *statCategoryRepoMock) DeleteComponent(ctx context.Context, componentID uint64) error {
	args := m.Called(ctx, componentID)
	return args.Error(0)
}
