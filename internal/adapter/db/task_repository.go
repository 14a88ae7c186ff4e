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

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID                  uint64         `db:"id"`
	TeamID              sql.NullInt64  `db:"team_id"`
	Name                string         `db:"name"`
	Description         sql.NullString `db:"description"`
	StartTime           time.Time      `db:"start_time"`
	EndTime             sql.NullTime   `db:"end_time"`
	PointsPerCompletion float64        `db:"points_per_completion"`
	MaxPerPeriod        sql.NullInt64  `db:"max_per_period"`
	PeriodUnit          sql.NullString `db:"period_unit"`
	PeriodCount         sql.NullInt64  `db:"period_count"`
	RequiresApproval    bool           `db:"requires_approval"`
	IsArchived          bool           `db:"is_archived"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

type variantRow struct {
	ID          uint64         `db:"id"`
	TaskID      uint64         `db:"task_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Points      float64        `db:"points"`
	Position    int            `db:"position"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *TaskRepository) List(ctx context.Context, query ports.ListTasksQuery) ([]domain.Task, error) {
	builder := qb.Select(
		"id", "team_id", "name", "description", "start_time", "end_time",
		"points_per_completion", "max_per_period", "period_unit", "period_count",
		"requires_approval", "is_archived", "created_at", "updated_at",
	).From("tasks")

	if query.Status != nil {
		switch *query.Status {
		case domain.TaskFilterActive:
			builder = builder.
				Where(sq.LtOrEq{"start_time": query.Now}).
				Where(sq.Or{sq.Eq{"end_time": nil}, sq.GtOrEq{"end_time": query.Now}}).
				Where(sq.Eq{"is_archived": false})
		case domain.TaskFilterFuture:
			builder = builder.Where(sq.Gt{"start_time": query.Now})
		case domain.TaskFilterExpired:
			builder = builder.
				Where(sq.NotEq{"end_time": nil}).
				Where(sq.Lt{"end_time": query.Now})
		}
	}
	if !query.IncludeArchived {
		builder = builder.Where(sq.Eq{"is_archived": false})
	}
	if query.RestrictTeam {
		if query.VisibleTeamID != nil {
			builder = builder.Where(sq.Or{sq.Eq{"team_id": *query.VisibleTeamID}, sq.Eq{"team_id": nil}})
		} else {
			builder = builder.Where(sq.Eq{"team_id": nil})
		}
	}
	builder = builder.OrderBy("start_time DESC")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
		ids = append(ids, row.ID)
	}

	if err := r.attachVariants(ctx, tasks, ids); err != nil {
		return nil, err
	}
	return tasks, nil
}

const getTaskQuery = `
SELECT
  id, team_id, name, description, start_time, end_time,
  points_per_completion, max_per_period, period_unit, period_count,
  requires_approval, is_archived, created_at, updated_at
FROM tasks
WHERE id = ?;
`

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task := mapTaskRow(row)
	tasks := []domain.Task{task}
	if err := r.attachVariants(ctx, tasks, []uint64{task.ID}); err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

const insertTaskQuery = `
INSERT INTO tasks (
  team_id, name, description, start_time, end_time, points_per_completion,
  max_per_period, period_unit, period_count, requires_approval, is_archived
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.TeamID,
		task.Name,
		task.Description,
		task.StartTime,
		task.EndTime,
		task.PointsPerCompletion,
		task.MaxPerPeriod,
		periodUnitValue(task.PeriodUnit),
		task.PeriodCount,
		task.RequiresApproval,
		task.IsArchived,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

const updateTaskQuery = `
UPDATE tasks SET
  team_id = ?, name = ?, description = ?, start_time = ?, end_time = ?,
  points_per_completion = ?, max_per_period = ?, period_unit = ?,
  period_count = ?, requires_approval = ?, is_archived = ?
WHERE id = ?;
`

func (r *TaskRepository) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		task.TeamID,
		task.Name,
		task.Description,
		task.StartTime,
		task.EndTime,
		task.PointsPerCompletion,
		task.MaxPerPeriod,
		periodUnitValue(task.PeriodUnit),
		task.PeriodCount,
		task.RequiresApproval,
		task.IsArchived,
		task.ID,
	)
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, task.ID)
}

// Delete removes the task with its completions; the completions cascade is
// explicit so orphaned ledger rows never survive a force delete.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM completions WHERE task_id = ?`, taskID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID); err != nil {
		return err
	}
	return tx.Commit()
}

const insertVariantQuery = `
INSERT INTO task_variants (task_id, name, description, points, position)
VALUES (?, ?, ?, ?, ?);
`

func (r *TaskRepository) CreateVariant(ctx context.Context, variant domain.TaskVariant) (domain.TaskVariant, error) {
	result, err := r.db.ExecContext(ctx, insertVariantQuery,
		variant.TaskID,
		variant.Name,
		variant.Description,
		variant.Points,
		variant.Position,
	)
	if err != nil {
		return domain.TaskVariant{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.TaskVariant{}, err
	}
	return r.getVariant(ctx, uint64(id))
}

const updateVariantQuery = `
UPDATE task_variants SET name = ?, description = ?, points = ?, position = ?
WHERE id = ?;
`

func (r *TaskRepository) SaveVariant(ctx context.Context, variant domain.TaskVariant) (domain.TaskVariant, error) {
	_, err := r.db.ExecContext(ctx, updateVariantQuery,
		variant.Name,
		variant.Description,
		variant.Points,
		variant.Position,
		variant.ID,
	)
	if err != nil {
		return domain.TaskVariant{}, err
	}
	return r.getVariant(ctx, variant.ID)
}

func (r *TaskRepository) DeleteVariant(ctx context.Context, variantID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM task_variants WHERE id = ?`, variantID)
	return err
}

func (r *TaskRepository) getVariant(ctx context.Context, variantID uint64) (domain.TaskVariant, error) {
	var row variantRow
	err := r.db.GetContext(ctx, &row, `
SELECT id, task_id, name, description, points, position, created_at, updated_at
FROM task_variants WHERE id = ?;`, variantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TaskVariant{}, domain.ErrVariantNotFound
		}
		return domain.TaskVariant{}, err
	}
	return mapVariantRow(row), nil
}

func (r *TaskRepository) attachVariants(ctx context.Context, tasks []domain.Task, taskIDs []uint64) error {
	if len(taskIDs) == 0 {
		return nil
	}

	sqlStr, args, err := qb.Select("id", "task_id", "name", "description", "points", "position", "created_at", "updated_at").
		From("task_variants").
		Where(sq.Eq{"task_id": taskIDs}).
		OrderBy("task_id", "position").
		ToSql()
	if err != nil {
		return err
	}

	var rows []variantRow
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return err
	}

	byTask := make(map[uint64][]domain.TaskVariant, len(taskIDs))
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], mapVariantRow(row))
	}
	for i := range tasks {
		tasks[i].Variants = byTask[tasks[i].ID]
	}
	return nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:                  row.ID,
		Name:                row.Name,
		StartTime:           row.StartTime,
		PointsPerCompletion: row.PointsPerCompletion,
		RequiresApproval:    row.RequiresApproval,
		IsArchived:          row.IsArchived,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}

	if row.TeamID.Valid {
		value := uint64(row.TeamID.Int64)
		task.TeamID = &value
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.EndTime.Valid {
		value := row.EndTime.Time
		task.EndTime = &value
	}
	if row.MaxPerPeriod.Valid {
		value := int(row.MaxPerPeriod.Int64)
		task.MaxPerPeriod = &value
	}
	if row.PeriodUnit.Valid {
		value := domain.PeriodUnit(row.PeriodUnit.String)
		task.PeriodUnit = &value
	}
	if row.PeriodCount.Valid {
		value := int(row.PeriodCount.Int64)
		task.PeriodCount = &value
	}

	return task
}

func mapVariantRow(row variantRow) domain.TaskVariant {
	variant := domain.TaskVariant{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Name:      row.Name,
		Points:    row.Points,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		variant.Description = &value
	}
	return variant
}

func periodUnitValue(unit *domain.PeriodUnit) *string {
	if unit == nil {
		return nil
	}
	value := string(*unit)
	return &value
}
