package ports

import (
	"context"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

// ListTasksQuery is the repository-level view of a task listing: the status
// filter resolved against a fixed clock plus the caller's visibility scope.
type ListTasksQuery struct {
	Status          *domain.TaskStatusFilter
	IncludeArchived bool
	Now             time.Time

	// RestrictTeam limits results to global tasks plus VisibleTeamID's tasks
	// (VisibleTeamID nil = global tasks only). Admins list unrestricted.
	RestrictTeam  bool
	VisibleTeamID *uint64
}

type TaskRepository interface {
	List(ctx context.Context, query ListTasksQuery) ([]domain.Task, error)
	GetByID(ctx context.Context, taskID uint64) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Save(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, taskID uint64) error

	CreateVariant(ctx context.Context, variant domain.TaskVariant) (domain.TaskVariant, error)
	SaveVariant(ctx context.Context, variant domain.TaskVariant) (domain.TaskVariant, error)
	DeleteVariant(ctx context.Context, variantID uint64) error
}

type TaskWithProgress struct {
	Task     domain.Task
	Progress domain.Progress
}

type TaskService interface {
	List(ctx context.Context, actor domain.Actor, input domain.ListTasksInput) ([]TaskWithProgress, error)
	Get(ctx context.Context, actor domain.Actor, taskID uint64) (TaskWithProgress, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Archive(ctx context.Context, taskID uint64) error
	Unarchive(ctx context.Context, taskID uint64) (domain.Task, error)
	ForceDelete(ctx context.Context, taskID uint64) error

	CreateVariant(ctx context.Context, taskID uint64, input domain.CreateVariantInput) (domain.TaskVariant, error)
	UpdateVariant(ctx context.Context, taskID, variantID uint64, input domain.UpdateVariantInput) (domain.TaskVariant, error)
	DeleteVariant(ctx context.Context, taskID, variantID uint64) error
}
