package db

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

var _ ports.LeaderboardRepository = (*LeaderboardRepository)(nil)

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

const memberScoresQuery = `
SELECT m.id AS member_id,
       m.real_name AS name,
       COALESCE(SUM(CASE WHEN c.status = 'approved' THEN c.points_awarded ELSE 0 END), 0) AS score,
       COUNT(CASE WHEN c.status = 'approved' THEN 1 END) AS completion_count
FROM members m
LEFT JOIN completions c ON c.member_id = m.id
WHERE m.is_active = TRUE
GROUP BY m.id, m.real_name
ORDER BY score DESC;
`

func (r *LeaderboardRepository) MemberScores(ctx context.Context) ([]ports.MemberScoreRow, error) {
	return r.selectMemberScores(ctx, memberScoresQuery)
}

const teamMemberScoresQuery = `
SELECT m.id AS member_id,
       m.real_name AS name,
       COALESCE(SUM(CASE WHEN c.status = 'approved' THEN c.points_awarded ELSE 0 END), 0) AS score,
       COUNT(CASE WHEN c.status = 'approved' THEN 1 END) AS completion_count
FROM members m
LEFT JOIN completions c ON c.member_id = m.id
WHERE m.is_active = TRUE AND m.team_id = ?
GROUP BY m.id, m.real_name
ORDER BY score DESC;
`

func (r *LeaderboardRepository) TeamMemberScores(ctx context.Context, teamID uint64) ([]ports.MemberScoreRow, error) {
	return r.selectMemberScores(ctx, teamMemberScoresQuery, teamID)
}

func (r *LeaderboardRepository) selectMemberScores(ctx context.Context, query string, args ...interface{}) ([]ports.MemberScoreRow, error) {
	var rows []struct {
		MemberID        uint64  `db:"member_id"`
		Name            string  `db:"name"`
		Score           float64 `db:"score"`
		CompletionCount int     `db:"completion_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	scores := make([]ports.MemberScoreRow, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, ports.MemberScoreRow(row))
	}
	return scores, nil
}

const teamScoresQuery = `
SELECT tm.id AS team_id,
       tm.name AS name,
       COALESCE(SUM(CASE WHEN c.status = 'approved' THEN c.points_awarded ELSE 0 END), 0) AS total_points,
       COUNT(DISTINCT m.id) AS member_count
FROM teams tm
LEFT JOIN members m ON m.team_id = tm.id AND m.is_active = TRUE
LEFT JOIN completions c ON c.member_id = m.id
GROUP BY tm.id, tm.name;
`

func (r *LeaderboardRepository) TeamScores(ctx context.Context) ([]ports.TeamScoreRow, error) {
	var rows []struct {
		TeamID      uint64  `db:"team_id"`
		Name        string  `db:"name"`
		TotalPoints float64 `db:"total_points"`
		MemberCount int     `db:"member_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, teamScoresQuery); err != nil {
		return nil, err
	}

	scores := make([]ports.TeamScoreRow, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, ports.TeamScoreRow(row))
	}
	return scores, nil
}

func (r *LeaderboardRepository) MemberTaskAggregates(ctx context.Context, taskIDs []uint64) ([]ports.MemberTaskAggregate, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}

	sqlStr, args, err := qb.Select(
		"member_id",
		"task_id",
		"COALESCE(SUM(`count`), 0) AS sum_count",
		"COALESCE(SUM(points_awarded), 0) AS sum_points",
	).
		From("completions").
		Where(sq.Eq{"status": domain.CompletionApproved}).
		Where(sq.Eq{"task_id": taskIDs}).
		GroupBy("member_id", "task_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		MemberID  uint64  `db:"member_id"`
		TaskID    uint64  `db:"task_id"`
		SumCount  float64 `db:"sum_count"`
		SumPoints float64 `db:"sum_points"`
	}
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}

	aggregates := make([]ports.MemberTaskAggregate, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, ports.MemberTaskAggregate(row))
	}
	return aggregates, nil
}

func (r *LeaderboardRepository) MemberRefs(ctx context.Context, memberIDs []uint64) ([]ports.MemberRef, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	sqlStr, args, err := qb.Select("id", "username", "real_name", "team_id").
		From("members").
		Where(sq.Eq{"id": memberIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID       uint64        `db:"id"`
		Username string        `db:"username"`
		RealName string        `db:"real_name"`
		TeamID   sql.NullInt64 `db:"team_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}

	refs := make([]ports.MemberRef, 0, len(rows))
	for _, row := range rows {
		ref := ports.MemberRef{
			ID:       row.ID,
			Username: row.Username,
			RealName: row.RealName,
		}
		if row.TeamID.Valid {
			value := uint64(row.TeamID.Int64)
			ref.TeamID = &value
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *LeaderboardRepository) TeamNames(ctx context.Context, teamIDs []uint64) (map[uint64]string, error) {
	names := make(map[uint64]string, len(teamIDs))
	if len(teamIDs) == 0 {
		return names, nil
	}

	sqlStr, args, err := qb.Select("id", "name").
		From("teams").
		Where(sq.Eq{"id": teamIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID   uint64 `db:"id"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

const memberTotalPointsQuery = `
SELECT COALESCE(SUM(points_awarded), 0)
FROM completions
WHERE member_id = ? AND status = 'approved';
`

func (r *LeaderboardRepository) MemberTotalPoints(ctx context.Context, memberID uint64) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, memberTotalPointsQuery, memberID); err != nil {
		return 0, err
	}
	return total, nil
}

const approvedScoreSetQuery = `
SELECT member_id AS id, SUM(points_awarded) AS score
FROM completions
WHERE status = 'approved'
GROUP BY member_id;
`

func (r *LeaderboardRepository) ApprovedScoreSet(ctx context.Context) ([]ports.EntityScore, error) {
	return r.selectEntityScores(ctx, approvedScoreSetQuery)
}

const teamScoreSetQuery = `
SELECT m.team_id AS id, SUM(c.points_awarded) AS score
FROM completions c
JOIN members m ON m.id = c.member_id
WHERE c.status = 'approved' AND m.team_id IS NOT NULL
GROUP BY m.team_id;
`

func (r *LeaderboardRepository) TeamScoreSet(ctx context.Context) ([]ports.EntityScore, error) {
	return r.selectEntityScores(ctx, teamScoreSetQuery)
}

func (r *LeaderboardRepository) selectEntityScores(ctx context.Context, query string) ([]ports.EntityScore, error) {
	var rows []struct {
		ID    uint64  `db:"id"`
		Score float64 `db:"score"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	scores := make([]ports.EntityScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, ports.EntityScore(row))
	}
	return scores, nil
}

const taskBreakdownQuery = `
SELECT t.id AS task_id,
       t.name AS task_name,
       COUNT(c.id) AS completion_count,
       COALESCE(SUM(c.points_awarded), 0) AS total_points
FROM completions c
JOIN tasks t ON t.id = c.task_id
WHERE c.member_id = ? AND c.status = 'approved'
GROUP BY t.id, t.name
ORDER BY total_points DESC;
`

func (r *LeaderboardRepository) TaskBreakdown(ctx context.Context, memberID uint64) ([]domain.TaskBreakdownRow, error) {
	var rows []struct {
		TaskID          uint64  `db:"task_id"`
		TaskName        string  `db:"task_name"`
		CompletionCount int     `db:"completion_count"`
		TotalPoints     float64 `db:"total_points"`
	}
	if err := r.db.SelectContext(ctx, &rows, taskBreakdownQuery, memberID); err != nil {
		return nil, err
	}

	breakdown := make([]domain.TaskBreakdownRow, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, domain.TaskBreakdownRow(row))
	}
	return breakdown, nil
}

const teamActivityQuery = `
SELECT c.id AS completion_id,
       c.member_id,
       m.real_name AS member_name,
       t.name AS task_name,
       c.points_awarded AS points,
       c.` + "`count`" + ` AS ` + "`count`" + `,
       c.reviewed_at
FROM completions c
JOIN members m ON m.id = c.member_id
JOIN tasks t ON t.id = c.task_id
WHERE m.team_id = ? AND c.status = 'approved' AND c.reviewed_at >= ?
ORDER BY c.reviewed_at DESC
LIMIT ?;
`

func (r *LeaderboardRepository) TeamActivitySince(ctx context.Context, teamID uint64, since time.Time, limit int) ([]domain.TeamActivityItem, error) {
	var rows []struct {
		CompletionID uint64    `db:"completion_id"`
		MemberID     uint64    `db:"member_id"`
		MemberName   string    `db:"member_name"`
		TaskName     string    `db:"task_name"`
		Points       float64   `db:"points"`
		Count        int       `db:"count"`
		ReviewedAt   time.Time `db:"reviewed_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, teamActivityQuery, teamID, since, limit); err != nil {
		return nil, err
	}

	items := make([]domain.TeamActivityItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.TeamActivityItem(row))
	}
	return items, nil
}
