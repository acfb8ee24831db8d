package member

import "shopservice/internal/domain"

// Member is zero-valued in ID until it is saved.
type Member struct {
	ID       int64
	Username string
	Age      int
	TeamID   *int64
	Address  domain.Address
}

// TeamView is the (id, username, team name) projection of a member that
// belongs to a team.
type TeamView struct {
	ID       int64
	Username string
	TeamName string
}

// Query selects one of the username lookups. Username is required; at most
// one of Age and AgeGreaterThan may be set.
type Query struct {
	Username       string
	Age            *int
	AgeGreaterThan *int
}
