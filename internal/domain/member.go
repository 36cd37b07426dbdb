package domain

import "time"

// MemberRole classifies a club member.
type MemberRole string

const (
	MemberRolePlayer MemberRole = "player"
	MemberRoleStaff  MemberRole = "staff"
	MemberRoleCoach  MemberRole = "coach"
)

var validMemberRoles = map[MemberRole]bool{
	MemberRolePlayer: true,
	MemberRoleStaff:  true,
	MemberRoleCoach:  true,
}

// IsValid checks if the role is a known member role.
func (r MemberRole) IsValid() bool {
	return validMemberRoles[r]
}

// Member represents a player or staff record of the club.
type Member struct {
	ID        string
	Name      string
	Email     string
	Role      MemberRole
	JoinedAt  time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
