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

type CompletionRepository struct {
	db *sqlx.DB
}

var _ ports.CompletionRepository = (*CompletionRepository)(nil)

func NewCompletionRepository(db *sqlx.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

type completionRow struct {
	ID            uint64         `db:"id"`
	MemberID      uint64         `db:"member_id"`
	TaskID        uint64         `db:"task_id"`
	VariantID     sql.NullInt64  `db:"variant_id"`
	Status        string         `db:"status"`
	SubmittedAt   time.Time      `db:"submitted_at"`
	ReviewedAt    sql.NullTime   `db:"reviewed_at"`
	ReviewerID    sql.NullInt64  `db:"reviewer_id"`
	MemberNote    sql.NullString `db:"member_note"`
	AdminNote     sql.NullString `db:"admin_note"`
	PointsAwarded float64        `db:"points_awarded"`
	Count         int            `db:"count"`
	TaskName      sql.NullString `db:"task_name"`
	MemberName    sql.NullString `db:"member_name"`
	TeamName      sql.NullString `db:"team_name"`
	VariantName   sql.NullString `db:"variant_name"`
}

// completionColumns selects the ledger row joined with its display context.
const completionColumns = `
  c.id, c.member_id, c.task_id, c.variant_id, c.status, c.submitted_at,
  c.reviewed_at, c.reviewer_id, c.member_note, c.admin_note,
  c.points_awarded, c.` + "`count`" + `,
  t.name AS task_name,
  m.real_name AS member_name,
  tm.name AS team_name,
  v.name AS variant_name`

const completionJoins = `
FROM completions c
LEFT JOIN tasks t ON t.id = c.task_id
LEFT JOIN members m ON m.id = c.member_id
LEFT JOIN teams tm ON tm.id = m.team_id
LEFT JOIN task_variants v ON v.id = c.variant_id`

func (r *CompletionRepository) GetByID(ctx context.Context, completionID uint64) (domain.Completion, error) {
	var row completionRow
	err := r.db.GetContext(ctx, &row, `SELECT`+completionColumns+completionJoins+`
WHERE c.id = ?;`, completionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Completion{}, domain.ErrCompletionNotFound
		}
		return domain.Completion{}, err
	}
	return mapCompletionRow(row), nil
}

func (r *CompletionRepository) GetForMember(ctx context.Context, completionID, memberID uint64) (domain.Completion, error) {
	var row completionRow
	err := r.db.GetContext(ctx, &row, `SELECT`+completionColumns+completionJoins+`
WHERE c.id = ? AND c.member_id = ?;`, completionID, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Completion{}, domain.ErrCompletionNotFound
		}
		return domain.Completion{}, err
	}
	return mapCompletionRow(row), nil
}

func (r *CompletionRepository) ListPending(ctx context.Context, teamIDs []uint64) ([]domain.Completion, error) {
	builder := qb.Select(
		"c.id", "c.member_id", "c.task_id", "c.variant_id", "c.status", "c.submitted_at",
		"c.reviewed_at", "c.reviewer_id", "c.member_note", "c.admin_note",
		"c.points_awarded", "c.`count`",
		"t.name AS task_name", "m.real_name AS member_name", "tm.name AS team_name", "v.name AS variant_name",
	).
		From("completions c").
		LeftJoin("tasks t ON t.id = c.task_id").
		LeftJoin("members m ON m.id = c.member_id").
		LeftJoin("teams tm ON tm.id = m.team_id").
		LeftJoin("task_variants v ON v.id = c.variant_id").
		Where(sq.Eq{"c.status": domain.CompletionPending}).
		OrderBy("c.submitted_at ASC")

	if teamIDs != nil {
		builder = builder.Where(sq.Eq{"m.team_id": teamIDs})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.selectCompletions(ctx, sqlStr, args...)
}

func (r *CompletionRepository) ListByMember(ctx context.Context, memberID uint64) ([]domain.Completion, error) {
	return r.selectCompletions(ctx, `SELECT`+completionColumns+completionJoins+`
WHERE c.member_id = ?
ORDER BY c.submitted_at DESC;`, memberID)
}

func (r *CompletionRepository) ListByTask(ctx context.Context, taskID uint64, memberID *uint64) ([]domain.Completion, error) {
	if memberID != nil {
		return r.selectCompletions(ctx, `SELECT`+completionColumns+completionJoins+`
WHERE c.task_id = ? AND c.member_id = ?
ORDER BY c.submitted_at DESC;`, taskID, *memberID)
	}
	return r.selectCompletions(ctx, `SELECT`+completionColumns+completionJoins+`
WHERE c.task_id = ?
ORDER BY c.submitted_at DESC;`, taskID)
}

const sumCountInWindowQuery = `
SELECT COALESCE(SUM(` + "`count`" + `), 0)
FROM completions
WHERE task_id = ? AND member_id = ? AND status != 'rejected'
  AND submitted_at >= ? AND submitted_at < ?;
`

func (r *CompletionRepository) SumCountInWindow(ctx context.Context, taskID, memberID uint64, start, end time.Time) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, sumCountInWindowQuery, taskID, memberID, start, end); err != nil {
		return 0, err
	}
	return total, nil
}

const sumCountLifetimeQuery = `
SELECT COALESCE(SUM(` + "`count`" + `), 0)
FROM completions
WHERE task_id = ? AND member_id = ? AND status != 'rejected';
`

func (r *CompletionRepository) SumCountLifetime(ctx context.Context, taskID, memberID uint64) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, sumCountLifetimeQuery, taskID, memberID); err != nil {
		return 0, err
	}
	return total, nil
}

const insertCompletionQuery = `
INSERT INTO completions (
  member_id, task_id, variant_id, status, submitted_at, reviewed_at,
  reviewer_id, member_note, admin_note, points_awarded, ` + "`count`" + `
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const insertNotificationQuery = `
INSERT INTO notifications (user_id, message, sender_id) VALUES (?, ?, ?);
`

// Create appends a ledger row; when a notification is supplied both rows
// commit in one transaction or not at all.
func (r *CompletionRepository) Create(ctx context.Context, completion domain.Completion, notification *domain.Notification) (domain.Completion, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Completion{}, err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, insertCompletionQuery,
		completion.MemberID,
		completion.TaskID,
		completion.VariantID,
		completion.Status,
		completion.SubmittedAt,
		completion.ReviewedAt,
		completion.ReviewerID,
		completion.MemberNote,
		completion.AdminNote,
		completion.PointsAwarded,
		completion.Count,
	)
	if err != nil {
		return domain.Completion{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Completion{}, err
	}

	if notification != nil {
		if _, err := tx.ExecContext(ctx, insertNotificationQuery, notification.UserID, notification.Message, notification.SenderID); err != nil {
			return domain.Completion{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Completion{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

const updateCompletionQuery = `
UPDATE completions SET
  variant_id = ?, status = ?, reviewed_at = ?, reviewer_id = ?,
  member_note = ?, admin_note = ?, points_awarded = ?, ` + "`count`" + ` = ?
WHERE id = ?;
`

func (r *CompletionRepository) Save(ctx context.Context, completion domain.Completion, notification *domain.Notification) (domain.Completion, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Completion{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, updateCompletionQuery,
		completion.VariantID,
		completion.Status,
		completion.ReviewedAt,
		completion.ReviewerID,
		completion.MemberNote,
		completion.AdminNote,
		completion.PointsAwarded,
		completion.Count,
		completion.ID,
	); err != nil {
		return domain.Completion{}, err
	}

	if notification != nil {
		if _, err := tx.ExecContext(ctx, insertNotificationQuery, notification.UserID, notification.Message, notification.SenderID); err != nil {
			return domain.Completion{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Completion{}, err
	}
	return r.GetByID(ctx, completion.ID)
}

func (r *CompletionRepository) Delete(ctx context.Context, completionID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE id = ?`, completionID)
	return err
}

func (r *CompletionRepository) selectCompletions(ctx context.Context, query string, args ...interface{}) ([]domain.Completion, error) {
	var rows []completionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	completions := make([]domain.Completion, 0, len(rows))
	for _, row := range rows {
		completions = append(completions, mapCompletionRow(row))
	}
	return completions, nil
}

func mapCompletionRow(row completionRow) domain.Completion {
	completion := domain.Completion{
		ID:            row.ID,
		MemberID:      row.MemberID,
		TaskID:        row.TaskID,
		Status:        domain.CompletionStatus(row.Status),
		SubmittedAt:   row.SubmittedAt,
		PointsAwarded: row.PointsAwarded,
		Count:         row.Count,
	}

	if row.VariantID.Valid {
		value := uint64(row.VariantID.Int64)
		completion.VariantID = &value
	}
	if row.ReviewedAt.Valid {
		value := row.ReviewedAt.Time
		completion.ReviewedAt = &value
	}
	if row.ReviewerID.Valid {
		value := uint64(row.ReviewerID.Int64)
		completion.ReviewerID = &value
	}
	if row.MemberNote.Valid {
		value := row.MemberNote.String
		completion.MemberNote = &value
	}
	if row.AdminNote.Valid {
		value := row.AdminNote.String
		completion.AdminNote = &value
	}
	if row.TaskName.Valid {
		value := row.TaskName.String
		completion.TaskName = &value
	}
	if row.MemberName.Valid {
		value := row.MemberName.String
		completion.MemberName = &value
	}
	if row.TeamName.Valid {
		value := row.TeamName.String
		completion.TeamName = &value
	}
	if row.VariantName.Valid {
		value := row.VariantName.String
		completion.VariantName = &value
	}

	return completion
}
