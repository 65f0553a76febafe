package repository

import "errors"

// Sentinel errors surfaced by invariant-bearing writes. The service layer
// maps them onto the user-facing error taxonomy.
var (
	// ErrActiveSprintExists is returned when a write would make a second
	// sprint ACTIVE within the same project
	ErrActiveSprintExists = errors.New("another sprint is already active in this project")

	// ErrDuplicateMember is returned when the (project, user) pair already
	// has a membership row
	ErrDuplicateMember = errors.New("user is already a member of this project")

	// ErrBacklogInvariant is returned when a user story write would leave
	// the story attached to both backlogs or to neither
	ErrBacklogInvariant = errors.New("user story must belong to exactly one backlog")
)
