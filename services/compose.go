package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
)

// Attachment responses carry a retrieval URL resolved by id server-side, never
// the stored file path.
const attachmentURLFormat = "/api/v1/attachments/file?attachmentId=%d"

// AttachmentURL builds the retrieval URL for an attachment id.
func AttachmentURL(id int64) string {
	return fmt.Sprintf(attachmentURLFormat, id)
}

// composeProject assembles the nested response graph for one project. The
// Tasks expansion honors the task-level filters when given; the returned int
// is the pre-pagination task count (zero when tasks were not requested).
func (s *ProjectService) composeProject(project models.Project, filter dto.ProjectFilter, taskFilter *dto.TaskFilter) (dto.ProjectResponse, int, error) {
	response := dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Remarks:     project.Remarks,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
	}

	totalTasks := 0

	if filter.HasModule(dto.ModuleTasks) {
		tasks, err := s.repos.Tasks.GetByProjectID(project.ID)
		if err != nil {
			return response, 0, err
		}

		if taskFilter != nil {
			tasks, err = s.filterTasks(tasks, *taskFilter)
			if err != nil {
				return response, 0, err
			}
			sortTasks(tasks, taskFilter.SortBy, taskFilter.SortOrder)
			totalTasks = len(tasks)
			page, pageSize := normalizePage(taskFilter.Page, taskFilter.PageSize)
			tasks = pageSlice(tasks, page, pageSize)
		} else {
			totalTasks = len(tasks)
		}

		responses := make([]dto.TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			tr, err := s.composeTask(t, filter)
			if err != nil {
				return response, 0, err
			}
			responses = append(responses, tr)
		}
		response.ProjectTasks = responses
	}

	if filter.HasModule(dto.ModuleProjectUsers) {
		memberships, err := s.repos.Memberships.GetByProjectID(project.ID)
		if err != nil {
			return response, 0, err
		}
		members := make([]dto.MemberResponse, 0, len(memberships))
		for _, m := range memberships {
			user, err := s.repos.Users.GetByID(m.UserID)
			if err != nil {
				return response, 0, err
			}
			if user == nil {
				continue
			}
			members = append(members, dto.MemberResponse{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
			})
		}
		response.ProjectUsers = members
	}

	return response, totalTasks, nil
}

// composeTask maps one task and attaches the per-task expansions the caller
// asked for.
func (s *ProjectService) composeTask(task models.ProjectTask, filter dto.ProjectFilter) (dto.TaskResponse, error) {
	response := dto.TaskResponse{
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

	if filter.HasModule(dto.ModuleTaskUsers) {
		assignments, err := s.repos.Assignments.GetByTaskID(task.ID)
		if err != nil {
			return response, err
		}
		assignees := make([]dto.MemberResponse, 0, len(assignments))
		for _, a := range assignments {
			user, err := s.repos.Users.GetByID(a.UserID)
			if err != nil {
				return response, err
			}
			if user == nil {
				continue
			}
			assignees = append(assignees, dto.MemberResponse{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
			})
		}
		response.TaskUsers = assignees
	}

	if filter.HasModule(dto.ModuleTaskAttachments) {
		attachments, err := s.repos.Attachments.GetByTaskID(task.ID)
		if err != nil {
			return response, err
		}
		items := make([]dto.AttachmentResponse, 0, len(attachments))
		for _, a := range attachments {
			items = append(items, dto.AttachmentResponse{
				ID:       a.ID,
				TaskID:   a.TaskID,
				FileName: a.FileName,
				FilePath: AttachmentURL(a.ID),
			})
		}
		response.TaskAttachments = items
	}

	if filter.HasModule(dto.ModuleTaskComments) {
		comments, err := s.repos.Comments.GetByTaskID(task.ID)
		if err != nil {
			return response, err
		}
		items := make([]dto.CommentResponse, 0, len(comments))
		for _, c := range comments {
			name := "Unknown"
			user, err := s.repos.Users.GetByID(c.UserID)
			if err != nil {
				return response, err
			}
			if user != nil {
				name = user.Username
			}
			items = append(items, dto.CommentResponse{
				ID:        c.ID,
				TaskID:    c.TaskID,
				UserID:    c.UserID,
				UserName:  name,
				Comment:   c.Comment,
				CreatedAt: c.CreatedAt,
			})
		}
		response.TaskComments = items
	}

	return response, nil
}

// filterTasks applies the detail-view task filters: title substring, inclusive
// due-date range, exact priority label, assignee username/email substring.
func (s *ProjectService) filterTasks(tasks []models.ProjectTask, filter dto.TaskFilter) ([]models.ProjectTask, error) {
	kept := tasks[:0:0]
	for _, t := range tasks {
		if filter.Title != "" &&
			!strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*filter.DueFrom)) {
			continue
		}
		if filter.DueTo != nil && (t.DueDate == nil || t.DueDate.After(*filter.DueTo)) {
			continue
		}
		if filter.Priority != "" && !strings.EqualFold(t.PriorityStatus.Label(), filter.Priority) {
			continue
		}
		if filter.AssigneeName != "" {
			match, err := s.taskHasAssigneeLike(t.ID, filter.AssigneeName)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
		}
		kept = append(kept, t)
	}
	return kept, nil
}

func (s *ProjectService) taskHasAssigneeLike(taskID, needle string) (bool, error) {
	assignments, err := s.repos.Assignments.GetByTaskID(taskID)
	if err != nil {
		return false, err
	}
	lowered := strings.ToLower(needle)
	for _, a := range assignments {
		user, err := s.repos.Users.GetByID(a.UserID)
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

// sortTasks orders tasks by one of the whitelisted keys. Unknown keys and the
// empty key fall back to title; unknown order falls back to ascending.
func sortTasks(tasks []models.ProjectTask, sortBy, sortOrder string) {
	key := strings.ReplaceAll(strings.ToLower(sortBy), "_", "")
	desc := strings.EqualFold(sortOrder, "desc")

	less := func(a, b models.ProjectTask) bool {
		switch key {
		case "duedate":
			// Tasks without a due date sort last regardless of direction.
			if a.DueDate == nil {
				return false
			}
			if b.DueDate == nil {
				return true
			}
			if desc {
				return a.DueDate.After(*b.DueDate)
			}
			return a.DueDate.Before(*b.DueDate)
		case "progressstatus":
			if desc {
				return a.ProgressStatus > b.ProgressStatus
			}
			return a.ProgressStatus < b.ProgressStatus
		case "prioritystatus":
			if desc {
				return a.PriorityStatus > b.PriorityStatus
			}
			return a.PriorityStatus < b.PriorityStatus
		case "createdat", "createddatetime", "creationtime":
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		default: // "title" and anything unrecognized
			if desc {
				return strings.ToLower(a.Title) > strings.ToLower(b.Title)
			}
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j])
	})
}
