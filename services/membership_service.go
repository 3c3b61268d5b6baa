package services

import (
	"time"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// MembershipService handles business logic for project memberships
type MembershipService struct {
	repos *repositories.Registry
}

// NewMembershipService creates a new membership service instance
func NewMembershipService(repos *repositories.Registry) *MembershipService {
	return &MembershipService{repos: repos}
}

// List retrieves membership rows for one project or one user. One of the two
// selectors must be given.
func (s *MembershipService) List(projectID, userID string) ([]dto.ProjectUserResponse, error) {
	var rows []models.ProjectUser
	var err error

	switch {
	case projectID != "":
		rows, err = s.repos.Memberships.GetByProjectID(projectID)
	case userID != "":
		rows, err = s.repos.Memberships.GetByUserID(userID)
	default:
		return nil, invalidInput("Either ProjectId or UserId must be provided.")
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectUserResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.ProjectUserResponse{
			ID:        row.ID,
			ProjectID: row.ProjectID,
			UserID:    row.UserID,
		})
	}
	return responses, nil
}

// Create adds a user to a project. The project and user must exist and the
// pair must not already hold an active membership.
func (s *MembershipService) Create(actor dto.Actor, req dto.CreateProjectUserRequest) (*models.ProjectUser, error) {
	if req.ProjectID == "" || req.UserID == "" {
		return nil, invalidInput("ProjectId and UserId are required.")
	}

	project, err := s.repos.Projects.GetByID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	user, err := s.repos.Users.GetByID(req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.repos.Memberships.Find(req.ProjectID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyProjectMember
	}

	row := models.ProjectUser{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
		CreatedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusActive,
	}
	if err := s.repos.Memberships.Create(&row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes one membership row. Tasks the user was assigned to keep
// their assignment rows.
func (s *MembershipService) Delete(membershipID int64) error {
	row, err := s.repos.Memberships.GetByID(membershipID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrProjectUserNotFound
	}
	return s.repos.Memberships.Delete(membershipID)
}
