package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// TaskService handles business logic for project tasks
type TaskService struct {
	repos  *repositories.Registry
	files  FileStore
	access *AccessChecker
}

// NewTaskService creates a new task service instance
func NewTaskService(repos *repositories.Registry, files FileStore, access *AccessChecker) *TaskService {
	return &TaskService{repos: repos, files: files, access: access}
}

// List retrieves tasks visible to the actor, newest first. With a project id
// the listing is membership-gated and limited to that project; without one,
// non-administrators get the tasks of every project they belong to.
func (s *TaskService) List(actor dto.Actor, projectID string) ([]dto.TaskResponse, error) {
	var tasks []models.ProjectTask

	if projectID != "" {
		if err := s.access.RequireProjectAccess(actor, projectID); err != nil {
			return nil, err
		}
		var err error
		tasks, err = s.repos.Tasks.GetByProjectID(projectID)
		if err != nil {
			return nil, err
		}
	} else if actor.IsAdministrator() {
		var err error
		tasks, err = s.repos.Tasks.GetAll()
		if err != nil {
			return nil, err
		}
	} else {
		memberships, err := s.repos.Memberships.GetByUserID(actor.UserID)
		if err != nil {
			return nil, err
		}
		if len(memberships) == 0 {
			return []dto.TaskResponse{}, nil
		}
		visible := make(map[string]bool, len(memberships))
		for _, m := range memberships {
			visible[m.ProjectID] = true
		}
		all, err := s.repos.Tasks.GetAll()
		if err != nil {
			return nil, err
		}
		for _, t := range all {
			if visible[t.ProjectID] {
				tasks = append(tasks, t)
			}
		}
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, taskResponse(t))
	}
	return responses, nil
}

// Get retrieves one task, membership-gated
func (s *TaskService) Get(actor dto.Actor, taskID string) (*dto.TaskResponse, error) {
	task, err := s.repos.Tasks.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.access.RequireProjectAccess(actor, task.ProjectID); err != nil {
		return nil, err
	}

	response := taskResponse(*task)
	return &response, nil
}

// Create stores a new task under a project. Only project members and
// Administrators may create tasks.
func (s *TaskService) Create(actor dto.Actor, req dto.CreateTaskRequest) (*models.ProjectTask, error) {
	if req.ProjectID == "" || req.Title == "" {
		return nil, invalidInput("ProjectId and Title are required.")
	}

	if err := s.access.RequireProjectAccess(actor, req.ProjectID); err != nil {
		return nil, err
	}

	progress := req.ProgressStatus
	if progress == 0 {
		progress = models.ProgressToDo
	}
	priority := req.PriorityStatus
	if priority == 0 {
		priority = models.PriorityLow
	}
	if !progress.Valid() {
		return nil, invalidInput("Invalid progress status.")
	}
	if !priority.Valid() {
		return nil, invalidInput("Invalid priority status.")
	}

	task := models.ProjectTask{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		ProgressStatus: progress,
		PriorityStatus: priority,
		CreatedBy:      actor.UserID,
		CreatedAt:      time.Now().UTC(),
		Status:         models.StatusActive,
	}
	if err := s.repos.Tasks.Create(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial-field patch to a task, membership-gated
func (s *TaskService) Update(actor dto.Actor, taskID string, req dto.UpdateTaskRequest) (*models.ProjectTask, error) {
	task, err := s.repos.Tasks.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.access.RequireProjectAccess(actor, task.ProjectID); err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.StartDate != nil {
		task.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.ProgressStatus != nil {
		if !req.ProgressStatus.Valid() {
			return nil, invalidInput("Invalid progress status.")
		}
		task.ProgressStatus = *req.ProgressStatus
	}
	if req.PriorityStatus != nil {
		if !req.PriorityStatus.Valid() {
			return nil, invalidInput("Invalid priority status.")
		}
		task.PriorityStatus = *req.PriorityStatus
	}

	now := time.Now().UTC()
	task.UpdatedAt = &now
	task.UpdatedBy = actor.UserID

	if err := s.repos.Tasks.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task together with its dependents: attachment files
// best-effort, then assignment rows, attachment rows, comment rows, and the
// task itself. Each stage commits independently.
func (s *TaskService) Delete(actor dto.Actor, taskID string) error {
	task, err := s.repos.Tasks.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := s.access.RequireProjectAccess(actor, task.ProjectID); err != nil {
		return err
	}

	attachments, err := s.repos.Attachments.GetByTaskID(taskID)
	if err != nil {
		return err
	}
	for _, a := range attachments {
		if a.FilePath == "" {
			continue
		}
		if err := s.files.Remove(a.FilePath); err != nil {
			log.Printf("Warning: file deletion failed for attachment %d (%s): %v", a.ID, a.FilePath, err)
		}
	}

	taskIDs := []string{taskID}
	if err := s.repos.Assignments.DeleteByTaskIDs(taskIDs); err != nil {
		return err
	}
	if err := s.repos.Attachments.DeleteByTaskIDs(taskIDs); err != nil {
		return err
	}
	if err := s.repos.Comments.DeleteByTaskIDs(taskIDs); err != nil {
		return err
	}
	return s.repos.Tasks.Delete(taskID)
}

func taskResponse(task models.ProjectTask) dto.TaskResponse {
	return dto.TaskResponse{
		ID:             task.ID,
		ProjectID:      task.ProjectID,
		Title:          task.Title,
		Description:    task.Description,
		StartDate:      task.StartDate,
		DueDate:        task.DueDate,
		ProgressStatus: task.ProgressStatus,
		PriorityStatus: task.PriorityStatus,
		CreatedBy:      task.CreatedBy,
	}
}
