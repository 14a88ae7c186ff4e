package domain

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleGroupAdmin Role = "group_admin"
	RoleMember     Role = "member"
)

type Member struct {
	ID                uint64
	Username          string
	RealName          string
	PreferredLanguage string
	Role              Role
	TeamID            *uint64
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Team struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor is the resolved identity a request acts as. Identity resolution itself
// lives behind the auth gateway; the engine only enforces scoping against it.
type Actor struct {
	Member
	ManagedTeamIDs []uint64
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsGroupAdmin() bool {
	return a.Role == RoleGroupAdmin
}

// Manages reports whether a group admin's managed-team set covers the team.
// Full admins manage everything; nil team ids (no team) are outside any scope.
func (a Actor) Manages(teamID *uint64) bool {
	if a.IsAdmin() {
		return true
	}
	if teamID == nil {
		return false
	}
	for _, id := range a.ManagedTeamIDs {
		if id == *teamID {
			return true
		}
	}
	return false
}
