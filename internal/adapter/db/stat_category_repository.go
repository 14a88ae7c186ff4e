package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

type StatCategoryRepository struct {
	db *sqlx.DB
}

var _ ports.StatCategoryRepository = (*StatCategoryRepository)(nil)

func NewStatCategoryRepository(db *sqlx.DB) *StatCategoryRepository {
	return &StatCategoryRepository{db: db}
}

type statCategoryRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type statComponentRow struct {
	ID         uint64         `db:"id"`
	CategoryID uint64         `db:"category_id"`
	TaskID     uint64         `db:"task_id"`
	Metric     string         `db:"metric"`
	Weight     float64        `db:"weight"`
	Position   int            `db:"position"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	TaskName   sql.NullString `db:"task_name"`
}

const listCategorySummariesQuery = `
SELECT sc.id, sc.name, sc.description, sc.icon, sc.created_at, sc.updated_at,
       COUNT(scc.id) AS component_count
FROM stat_categories sc
LEFT JOIN stat_category_components scc ON scc.category_id = sc.id
GROUP BY sc.id, sc.name, sc.description, sc.icon, sc.created_at, sc.updated_at
ORDER BY sc.name ASC;
`

func (r *StatCategoryRepository) ListSummaries(ctx context.Context) ([]domain.StatCategorySummary, error) {
	var rows []struct {
		statCategoryRow
		ComponentCount int `db:"component_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, listCategorySummariesQuery); err != nil {
		return nil, err
	}

	summaries := make([]domain.StatCategorySummary, 0, len(rows))
	for _, row := range rows {
		summary := domain.StatCategorySummary{
			ID:             row.ID,
			Name:           row.Name,
			ComponentCount: row.ComponentCount,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		}
		if row.Description.Valid {
			value := row.Description.String
			summary.Description = &value
		}
		if row.Icon.Valid {
			value := row.Icon.String
			summary.Icon = &value
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (r *StatCategoryRepository) ListWithComponents(ctx context.Context) ([]domain.StatCategory, error) {
	var rows []statCategoryRow
	err := r.db.SelectContext(ctx, &rows, `SELECT id, name, description, icon, created_at, updated_at FROM stat_categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.StatCategory, 0, len(rows))
	categoryIDs := make([]uint64, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapStatCategoryRow(row))
		categoryIDs = append(categoryIDs, row.ID)
	}

	components, err := r.componentsFor(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Components = components[categories[i].ID]
	}
	return categories, nil
}

func (r *StatCategoryRepository) GetByID(ctx context.Context, categoryID uint64) (domain.StatCategory, error) {
	var row statCategoryRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, description, icon, created_at, updated_at FROM stat_categories WHERE id = ?`, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StatCategory{}, domain.ErrCategoryNotFound
		}
		return domain.StatCategory{}, err
	}

	category := mapStatCategoryRow(row)
	components, err := r.componentsFor(ctx, []uint64{categoryID})
	if err != nil {
		return domain.StatCategory{}, err
	}
	category.Components = components[categoryID]
	return category, nil
}

const insertCategoryQuery = `
INSERT INTO stat_categories (name, description, icon) VALUES (?, ?, ?);
`

const insertComponentQuery = `
INSERT INTO stat_category_components (category_id, task_id, metric, weight, position)
VALUES (?, ?, ?, ?, ?);
`

func (r *StatCategoryRepository) Create(ctx context.Context, category domain.StatCategory) (domain.StatCategory, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.StatCategory{}, err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, insertCategoryQuery, category.Name, category.Description, category.Icon)
	if err != nil {
		return domain.StatCategory{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.StatCategory{}, err
	}

	for _, component := range category.Components {
		if _, err := tx.ExecContext(ctx, insertComponentQuery,
			uint64(id), component.TaskID, component.Metric, component.Weight, component.Position,
		); err != nil {
			return domain.StatCategory{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.StatCategory{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *StatCategoryRepository) Save(ctx context.Context, category domain.StatCategory) (domain.StatCategory, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE stat_categories SET name = ?, description = ?, icon = ? WHERE id = ?`,
		category.Name, category.Description, category.Icon, category.ID,
	)
	if err != nil {
		return domain.StatCategory{}, err
	}
	return r.GetByID(ctx, category.ID)
}

// Delete removes the category and its components in one transaction.
func (r *StatCategoryRepository) Delete(ctx context.Context, categoryID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stat_category_components WHERE category_id = ?`, categoryID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stat_categories WHERE id = ?`, categoryID); err != nil {
		return err
	}
	return tx.Commit()
}

const getComponentQuery = `
SELECT scc.id, scc.category_id, scc.task_id, scc.metric, scc.weight, scc.position,
       scc.created_at, scc.updated_at, t.name AS task_name
FROM stat_category_components scc
LEFT JOIN tasks t ON t.id = scc.task_id
WHERE scc.id = ?;
`

func (r *StatCategoryRepository) GetComponent(ctx context.Context, componentID uint64) (domain.StatCategoryComponent, error) {
	var row statComponentRow
	if err := r.db.GetContext(ctx, &row, getComponentQuery, componentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StatCategoryComponent{}, domain.ErrComponentNotFound
		}
		return domain.StatCategoryComponent{}, err
	}
	return mapStatComponentRow(row), nil
}

func (r *StatCategoryRepository) CreateComponent(ctx context.Context, component domain.StatCategoryComponent) (domain.StatCategoryComponent, error) {
	result, err := r.db.ExecContext(ctx, insertComponentQuery,
		component.CategoryID, component.TaskID, component.Metric, component.Weight, component.Position,
	)
	if err != nil {
		return domain.StatCategoryComponent{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.StatCategoryComponent{}, err
	}
	return r.GetComponent(ctx, uint64(id))
}

func (r *StatCategoryRepository) SaveComponent(ctx context.Context, component domain.StatCategoryComponent) (domain.StatCategoryComponent, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE stat_category_components SET task_id = ?, metric = ?, weight = ?, position = ? WHERE id = ?`,
		component.TaskID, component.Metric, component.Weight, component.Position, component.ID,
	)
	if err != nil {
		return domain.StatCategoryComponent{}, err
	}
	return r.GetComponent(ctx, component.ID)
}

func (r *StatCategoryRepository) DeleteComponent(ctx context.Context, componentID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stat_category_components WHERE id = ?`, componentID)
	return err
}

func (r *StatCategoryRepository) componentsFor(ctx context.Context, categoryIDs []uint64) (map[uint64][]domain.StatCategoryComponent, error) {
	components := make(map[uint64][]domain.StatCategoryComponent, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return components, nil
	}

	sqlStr, args, err := qb.Select(
		"scc.id", "scc.category_id", "scc.task_id", "scc.metric", "scc.weight", "scc.position",
		"scc.created_at", "scc.updated_at", "t.name AS task_name",
	).
		From("stat_category_components scc").
		LeftJoin("tasks t ON t.id = scc.task_id").
		Where(sq.Eq{"scc.category_id": categoryIDs}).
		OrderBy("scc.category_id ASC", "scc.position ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []statComponentRow
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		components[row.CategoryID] = append(components[row.CategoryID], mapStatComponentRow(row))
	}
	return components, nil
}

func mapStatCategoryRow(row statCategoryRow) domain.StatCategory {
	category := domain.StatCategory{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}
	if row.Icon.Valid {
		value := row.Icon.String
		category.Icon = &value
	}
	return category
}

func mapStatComponentRow(row statComponentRow) domain.StatCategoryComponent {
	component := domain.StatCategoryComponent{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		TaskID:     row.TaskID,
		Metric:     domain.StatMetric(row.Metric),
		Weight:     row.Weight,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.TaskName.Valid {
		value := row.TaskName.String
		component.TaskName = &value
	}
	return component
}
