package ports

import (
	"context"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

type CompletionRepository interface {
	GetByID(ctx context.Context, completionID uint64) (domain.Completion, error)
	GetForMember(ctx context.Context, completionID, memberID uint64) (domain.Completion, error)

	// ListPending returns pending completions oldest first. A non-nil team
	// filter limits results to members of those teams; empty slice matches none.
	ListPending(ctx context.Context, teamIDs []uint64) ([]domain.Completion, error)
	ListByMember(ctx context.Context, memberID uint64) ([]domain.Completion, error)
	ListByTask(ctx context.Context, taskID uint64, memberID *uint64) ([]domain.Completion, error)

	// SumCountInWindow sums count over the member's non-rejected completions
	// for the task with submitted_at in [start, end).
	SumCountInWindow(ctx context.Context, taskID, memberID uint64, start, end time.Time) (int, error)
	// SumCountLifetime is the same sum without a time bound.
	SumCountLifetime(ctx context.Context, taskID, memberID uint64) (int, error)

	// Create inserts a completion and, when notification is non-nil, its
	// notification row in one transaction.
	Create(ctx context.Context, completion domain.Completion, notification *domain.Notification) (domain.Completion, error)
	// Save updates a completion and optionally writes a notification row
	// atomically with it.
	Save(ctx context.Context, completion domain.Completion, notification *domain.Notification) (domain.Completion, error)
	Delete(ctx context.Context, completionID uint64) error
}

type CompletionService interface {
	Submit(ctx context.Context, actor domain.Actor, input domain.SubmitInput) (domain.Completion, error)
	ListTaskSubmissions(ctx context.Context, actor domain.Actor, taskID uint64) ([]domain.Completion, error)
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.Completion, error)
	Review(ctx context.Context, actor domain.Actor, completionID uint64, input domain.ReviewInput) (domain.Completion, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Completion, error)
	ListForMember(ctx context.Context, actor domain.Actor, memberID uint64) ([]domain.Completion, error)
	AdminCreate(ctx context.Context, actor domain.Actor, memberID uint64, input domain.AdminCreateCompletionInput) (domain.Completion, error)
	AdminUpdate(ctx context.Context, actor domain.Actor, memberID, completionID uint64, input domain.AdminUpdateCompletionInput) (domain.Completion, error)
	AdminDelete(ctx context.Context, actor domain.Actor, memberID, completionID uint64) error
}
