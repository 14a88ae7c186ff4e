package ports

import (
	"context"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, memberID uint64) (domain.Member, error)
	ManagedTeamIDs(ctx context.Context, memberID uint64) ([]uint64, error)
	GetTeam(ctx context.Context, teamID uint64) (domain.Team, error)
	TeamExists(ctx context.Context, teamID uint64) (bool, error)
}
