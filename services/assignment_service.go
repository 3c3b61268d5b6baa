package services

import (
	"time"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// AssignmentService handles business logic for task assignments
type AssignmentService struct {
	repos  *repositories.Registry
	access *AccessChecker
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(repos *repositories.Registry, access *AccessChecker) *AssignmentService {
	return &AssignmentService{repos: repos, access: access}
}

// List retrieves assignment rows, optionally narrowed to one task or one
// user. Non-administrators only see assignments on tasks of projects they
// belong to.
func (s *AssignmentService) List(actor dto.Actor, filter dto.TaskUserFilter) ([]dto.TaskUserResponse, error) {
	var rows []models.TaskUser
	var err error

	switch {
	case filter.TaskID != "":
		rows, err = s.repos.Assignments.GetByTaskID(filter.TaskID)
	case filter.UserID != "":
		rows, err = s.repos.Assignments.GetByUserID(filter.UserID)
	default:
		rows, err = s.repos.Assignments.GetAll()
	}
	if err != nil {
		return nil, err
	}

	if !actor.IsAdministrator() {
		memberships, err := s.repos.Memberships.GetByUserID(actor.UserID)
		if err != nil {
			return nil, err
		}
		visible := make(map[string]bool, len(memberships))
		for _, m := range memberships {
			visible[m.ProjectID] = true
		}

		// Resolve each assignment's task to its project once.
		taskProject := make(map[string]string)
		kept := rows[:0:0]
		for _, row := range rows {
			projectID, ok := taskProject[row.TaskID]
			if !ok {
				task, err := s.repos.Tasks.GetByID(row.TaskID)
				if err != nil {
					return nil, err
				}
				if task == nil {
					continue
				}
				projectID = task.ProjectID
				taskProject[row.TaskID] = projectID
			}
			if visible[projectID] {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	responses := make([]dto.TaskUserResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.TaskUserResponse{
			ID:     row.ID,
			TaskID: row.TaskID,
			UserID: row.UserID,
		})
	}
	return responses, nil
}

// Create assigns a user to a task. The actor must belong to the task's
// project, and so must the assignee; Administrators bypass both checks.
// Duplicate active assignments are rejected.
func (s *AssignmentService) Create(actor dto.Actor, req dto.CreateTaskUserRequest) (*models.TaskUser, error) {
	if req.TaskID == "" || req.UserID == "" {
		return nil, invalidInput("TaskId and UserId are required.")
	}

	task, err := s.repos.Tasks.GetByID(req.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if !actor.IsAdministrator() {
		ok, err := s.access.CanAccessProject(actor, task.ProjectID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotAuthorizedAssign
		}

		assignee, err := s.repos.Memberships.Find(task.ProjectID, req.UserID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrAssigneeNotMember
		}
	}

	existing, err := s.repos.Assignments.Find(req.TaskID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyAssigned
	}

	row := models.TaskUser{
		TaskID:    req.TaskID,
		UserID:    req.UserID,
		CreatedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusActive,
	}
	if err := s.repos.Assignments.Create(&row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes one assignment row. The actor must belong to the assigned
// task's project; Administrators bypass the check. Removing the row does not
// touch the task itself.
func (s *AssignmentService) Delete(actor dto.Actor, assignmentID int64) error {
	row, err := s.repos.Assignments.GetByID(assignmentID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrTaskUserNotFound
	}

	task, err := s.repos.Tasks.GetByID(row.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if !actor.IsAdministrator() {
		ok, err := s.access.CanAccessProject(actor, task.ProjectID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotAuthorizedDelete
		}
	}

	return s.repos.Assignments.Delete(assignmentID)
}
