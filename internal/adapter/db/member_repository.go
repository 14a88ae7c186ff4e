package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

type MemberRepository struct {
	db *sqlx.DB
}

var _ ports.MemberRepository = (*MemberRepository)(nil)

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberRow struct {
	ID                uint64        `db:"id"`
	Username          string        `db:"username"`
	RealName          string        `db:"real_name"`
	PreferredLanguage string        `db:"preferred_language"`
	Role              string        `db:"role"`
	TeamID            sql.NullInt64 `db:"team_id"`
	IsActive          bool          `db:"is_active"`
	CreatedAt         time.Time     `db:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at"`
}

const getMemberQuery = `
SELECT id, username, real_name, preferred_language, role, team_id, is_active, created_at, updated_at
FROM members
WHERE id = ?;
`

func (r *MemberRepository) GetByID(ctx context.Context, memberID uint64) (domain.Member, error) {
	var row memberRow
	if err := r.db.GetContext(ctx, &row, getMemberQuery, memberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Member{}, domain.ErrMemberNotFound
		}
		return domain.Member{}, err
	}

	member := domain.Member{
		ID:                row.ID,
		Username:          row.Username,
		RealName:          row.RealName,
		PreferredLanguage: row.PreferredLanguage,
		Role:              domain.Role(row.Role),
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if row.TeamID.Valid {
		value := uint64(row.TeamID.Int64)
		member.TeamID = &value
	}
	return member, nil
}

func (r *MemberRepository) ManagedTeamIDs(ctx context.Context, memberID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.SelectContext(ctx, &ids, `SELECT team_id FROM group_admin_teams WHERE member_id = ? ORDER BY team_id`, memberID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *MemberRepository) GetTeam(ctx context.Context, teamID uint64) (domain.Team, error) {
	var team domain.Team
	err := r.db.QueryRowxContext(ctx, `SELECT id, name, created_at, updated_at FROM teams WHERE id = ?`, teamID).
		Scan(&team.ID, &team.Name, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Team{}, domain.ErrTeamNotFound
		}
		return domain.Team{}, err
	}
	return team, nil
}

func (r *MemberRepository) TeamExists(ctx context.Context, teamID uint64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM teams WHERE id = ?)`, teamID)
	if err != nil {
		return false, err
	}
	return exists, nil
}
