package services

import (
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/repositories"
)

// AccessChecker decides whether an actor may read or mutate entities inside a
// project. Administrators bypass all membership checks; everyone else needs an
// active membership row for the project.
type AccessChecker struct {
	memberships repositories.ProjectUserRepository
}

// NewAccessChecker creates a new access checker instance
func NewAccessChecker(memberships repositories.ProjectUserRepository) *AccessChecker {
	return &AccessChecker{memberships: memberships}
}

// CanAccessProject reports whether the actor may operate on the project.
func (a *AccessChecker) CanAccessProject(actor dto.Actor, projectID string) (bool, error) {
	if actor.IsAdministrator() {
		return true, nil
	}
	membership, err := a.memberships.Find(projectID, actor.UserID)
	if err != nil {
		return false, err
	}
	return membership != nil, nil
}

// RequireProjectAccess is CanAccessProject collapsed to the standard access
// failure.
func (a *AccessChecker) RequireProjectAccess(actor dto.Actor, projectID string) error {
	ok, err := a.CanAccessProject(actor, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAccessDenied
	}
	return nil
}
