package ports

import (
	"context"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

type StatCategoryRepository interface {
	ListSummaries(ctx context.Context) ([]domain.StatCategorySummary, error)
	ListWithComponents(ctx context.Context) ([]domain.StatCategory, error)
	GetByID(ctx context.Context, categoryID uint64) (domain.StatCategory, error)
	// Create inserts the category and its initial components in one transaction.
	Create(ctx context.Context, category domain.StatCategory) (domain.StatCategory, error)
	Save(ctx context.Context, category domain.StatCategory) (domain.StatCategory, error)
	// Delete cascades to the category's components.
	Delete(ctx context.Context, categoryID uint64) error

	GetComponent(ctx context.Context, componentID uint64) (domain.StatCategoryComponent, error)
	CreateComponent(ctx context.Context, component domain.StatCategoryComponent) (domain.StatCategoryComponent, error)
	SaveComponent(ctx context.Context, component domain.StatCategoryComponent) (domain.StatCategoryComponent, error)
	DeleteComponent(ctx context.Context, componentID uint64) error
}

type StatCategoryService interface {
	ListSummaries(ctx context.Context) ([]domain.StatCategorySummary, error)
	Manage(ctx context.Context) ([]domain.StatCategory, error)
	Create(ctx context.Context, input domain.CreateStatCategoryInput) (domain.StatCategory, error)
	Update(ctx context.Context, categoryID uint64, input domain.UpdateStatCategoryInput) (domain.StatCategory, error)
	Delete(ctx context.Context, categoryID uint64) error
	AddComponent(ctx context.Context, categoryID uint64, input domain.CreateComponentInput) (domain.StatCategoryComponent, error)
	UpdateComponent(ctx context.Context, componentID uint64, input domain.UpdateComponentInput) (domain.StatCategoryComponent, error)
	DeleteComponent(ctx context.Context, componentID uint64) error
}
