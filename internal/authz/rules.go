// Package authz holds the authorization rules for the scrum surface.
//
// Three actor classes exist: the project owner, editors (a global role
// granting management rights on any project they are a member of), and
// plain members. A superuser grant bypasses every check. Membership means
// "owner or has a member row"; the owner never has a member row.
package authz

// CanViewProject decides whether an actor may see a project and its
// sprints, backlogs, stories and tasks
func CanViewProject(actor Actor, isMember bool) bool {
	if actor.IsSuperuser() {
		return true
	}
	return isMember
}

// CanManageProject decides whether an actor may update or delete a project
func CanManageProject(actor Actor, isOwner, isMember bool) bool {
	if actor.IsSuperuser() {
		return true
	}
	return isMember && (isOwner || actor.IsEditor())
}

// CanManageSprint decides whether an actor may create, update or close a
// sprint in a project
func CanManageSprint(actor Actor, isOwner, isMember bool) bool {
	if actor.IsSuperuser() {
		return true
	}
	return isMember && (isOwner || actor.IsEditor())
}

// CanManageMembers decides whether an actor may add or remove project
// members. Owner only.
func CanManageMembers(actor Actor, isOwner bool) bool {
	if actor.IsSuperuser() {
		return true
	}
	return isOwner
}

// CanDeleteComment decides whether an actor may delete a task comment.
// Comment author or project owner only.
func CanDeleteComment(actor Actor, isAuthor, isOwner bool) bool {
	if actor.IsSuperuser() {
		return true
	}
	return isAuthor || isOwner
}
