package services

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// ProjectService handles business logic for projects: listing with nested
// expansion, creation with auto-membership, partial updates and the cascading
// delete.
type ProjectService struct {
	repos  *repositories.Registry
	files  FileStore
	access *AccessChecker
}

// NewProjectService creates a new project service instance
func NewProjectService(repos *repositories.Registry, files FileStore, access *AccessChecker) *ProjectService {
	return &ProjectService{repos: repos, files: files, access: access}
}

// List retrieves projects visible to the actor with filtering and pagination.
// Administrators see every project; everyone else only projects they are a
// member of.
func (s *ProjectService) List(actor dto.Actor, filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	projects, err := s.repos.Projects.GetAll()
	if err != nil {
		return response, err
	}

	if filter.ProjectName != "" {
		needle := strings.ToLower(filter.ProjectName)
		projects = filterProjects(projects, func(p models.Project) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}

	if !actor.IsAdministrator() {
		memberships, err := s.repos.Memberships.GetByUserID(actor.UserID)
		if err != nil {
			return response, err
		}
		visible := make(map[string]bool, len(memberships))
		for _, m := range memberships {
			visible[m.ProjectID] = true
		}
		projects = filterProjects(projects, func(p models.Project) bool {
			return visible[p.ID]
		})
	}

	if filter.MemberName != "" {
		kept := projects[:0:0]
		for _, p := range projects {
			match, err := s.projectHasMemberLike(p.ID, filter.MemberName)
			if err != nil {
				return response, err
			}
			if match {
				kept = append(kept, p)
			}
		}
		projects = kept
	}

	if filter.Priority != "" {
		kept := projects[:0:0]
		for _, p := range projects {
			match, err := s.projectHasTaskWithPriority(p.ID, filter.Priority)
			if err != nil {
				return response, err
			}
			if match {
				kept = append(kept, p)
			}
		}
		projects = kept
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	totalCount := len(projects)
	paged := pageSlice(projects, page, pageSize)

	responses := make([]dto.ProjectResponse, 0, len(paged))
	for _, p := range paged {
		pr, _, err := s.composeProject(p, filter, nil)
		if err != nil {
			return response, err
		}
		responses = append(responses, pr)
	}

	response = dto.ProjectListResponse{
		Projects:   responses,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
	return response, nil
}

// Get retrieves one project with the requested module expansions and the
// task-level filters applied inside the detail view.
func (s *ProjectService) Get(projectID string, filter dto.ProjectFilter, taskFilter *dto.TaskFilter) (dto.ProjectDetailResponse, error) {
	var response dto.ProjectDetailResponse

	project, err := s.repos.Projects.GetByID(projectID)
	if err != nil {
		return response, err
	}
	if project == nil {
		return response, ErrProjectNotFound
	}

	pr, totalTasks, err := s.composeProject(*project, filter, taskFilter)
	if err != nil {
		return response, err
	}

	response.Project = pr
	response.TotalTaskCount = totalTasks
	if taskFilter != nil {
		response.TaskPage, response.TaskPageSize = normalizePage(taskFilter.Page, taskFilter.PageSize)
	}
	return response, nil
}

// Create stores a new project. The creator is auto-joined as a member unless
// they are an Administrator.
func (s *ProjectService) Create(actor dto.Actor, req dto.CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalidInput("Project name is required.")
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Remarks:     req.Remarks,
		CreatedBy:   actor.UserID,
		CreatedAt:   time.Now().UTC(),
		Status:      models.StatusActive,
	}
	if err := s.repos.Projects.Create(&project); err != nil {
		return nil, err
	}

	if !actor.IsAdministrator() {
		membership := models.ProjectUser{
			ProjectID: project.ID,
			UserID:    actor.UserID,
			CreatedBy: actor.UserID,
			CreatedAt: time.Now().UTC(),
			Status:    models.StatusActive,
		}
		if err := s.repos.Memberships.Create(&membership); err != nil {
			return nil, err
		}
	}

	return &project, nil
}

// Update applies a partial-field patch to a project
func (s *ProjectService) Update(actor dto.Actor, projectID string, req dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.repos.Projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if req.Name != nil && *req.Name != "" {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Remarks != nil {
		project.Remarks = *req.Remarks
	}

	now := time.Now().UTC()
	project.UpdatedAt = &now
	project.UpdatedBy = actor.UserID

	if err := s.repos.Projects.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project together with everything that depends on it, in
// dependency order: attachment files and rows first, then assignments, tasks,
// memberships, and finally the project row. Each stage commits independently,
// so a mid-sequence failure leaves earlier stages deleted.
func (s *ProjectService) Delete(projectID string) error {
	project, err := s.repos.Projects.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	tasks, err := s.repos.Tasks.GetByProjectID(projectID)
	if err != nil {
		return err
	}
	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	attachments, err := s.repos.Attachments.GetByTaskIDs(taskIDs)
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
	if err := s.repos.Attachments.DeleteByTaskIDs(taskIDs); err != nil {
		return err
	}

	if err := s.repos.Assignments.DeleteByTaskIDs(taskIDs); err != nil {
		return err
	}

	if err := s.repos.Tasks.DeleteByProjectID(projectID); err != nil {
		return err
	}

	if err := s.repos.Memberships.DeleteByProjectID(projectID); err != nil {
		return err
	}

	return s.repos.Projects.Delete(projectID)
}

func filterProjects(projects []models.Project, keep func(models.Project) bool) []models.Project {
	kept := projects[:0:0]
	for _, p := range projects {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// projectHasMemberLike reports whether any user linked to the project, either
// through membership or through task assignment, has a username or email
// containing the needle.
func (s *ProjectService) projectHasMemberLike(projectID, needle string) (bool, error) {
	userIDs := map[string]bool{}

	memberships, err := s.repos.Memberships.GetByProjectID(projectID)
	if err != nil {
		return false, err
	}
	for _, m := range memberships {
		userIDs[m.UserID] = true
	}

	tasks, err := s.repos.Tasks.GetByProjectID(projectID)
	if err != nil {
		return false, err
	}
	for _, t := range tasks {
		assignments, err := s.repos.Assignments.GetByTaskID(t.ID)
		if err != nil {
			return false, err
		}
		for _, a := range assignments {
			userIDs[a.UserID] = true
		}
	}

	lowered := strings.ToLower(needle)
	for id := range userIDs {
		user, err := s.repos.Users.GetByID(id)
		if err != nil {
			return false, err
		}
		if user == nil {
			continue
		}
		if strings.Contains(strings.ToLower(user.Username), lowered) ||
			strings.Contains(strings.ToLower(user.Email), lowered) {
			return true, nil
		}
	}
	return false, nil
}

// projectHasTaskWithPriority reports whether any task under the project
// carries the given priority label.
func (s *ProjectService) projectHasTaskWithPriority(projectID, label string) (bool, error) {
	tasks, err := s.repos.Tasks.GetByProjectID(projectID)
	if err != nil {
		return false, err
	}
	for _, t := range tasks {
		if strings.EqualFold(t.PriorityStatus.Label(), label) {
			return true, nil
		}
	}
	return false, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}

func pageSlice[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
