package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
)

type fixture struct {
	store  *fakeStore
	files  *fakeFileStore
	access *AccessChecker

	projects    *ProjectService
	tasks       *TaskService
	memberships *MembershipService
	assignments *AssignmentService
	attachments *AttachmentService
	comments    *CommentService
	users       *UserService
}

func newFixture() *fixture {
	store := newFakeStore()
	files := newFakeFileStore()
	repos := store.registry()
	access := NewAccessChecker(repos.Memberships)

	return &fixture{
		store:       store,
		files:       files,
		access:      access,
		projects:    NewProjectService(repos, files, access),
		tasks:       NewTaskService(repos, files, access),
		memberships: NewMembershipService(repos),
		assignments: NewAssignmentService(repos, access),
		attachments: NewAttachmentService(repos, files, access),
		comments:    NewCommentService(repos, access),
		users:       NewUserService(repos.Users),
	}
}

func (f *fixture) seedUser(t *testing.T, username string, role models.Role) dto.Actor {
	t.Helper()

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	if err := f.store.registry().Users.Create(&user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return dto.Actor{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    []string{string(role)},
	}
}

func (f *fixture) seedProject(t *testing.T, name string, createdAt time.Time) models.Project {
	t.Helper()

	project := models.Project{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: createdAt,
		Status:    models.StatusActive,
	}
	if err := f.store.registry().Projects.Create(&project); err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}

func (f *fixture) seedMembership(t *testing.T, projectID, userID string) models.ProjectUser {
	t.Helper()

	membership := models.ProjectUser{
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusActive,
	}
	if err := f.store.registry().Memberships.Create(&membership); err != nil {
		t.Fatalf("failed to seed membership: %v", err)
	}
	return membership
}

func (f *fixture) seedTask(t *testing.T, projectID, title string, priority models.PriorityStatus) models.ProjectTask {
	t.Helper()

	task := models.ProjectTask{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		Title:          title,
		ProgressStatus: models.ProgressToDo,
		PriorityStatus: priority,
		CreatedAt:      time.Now().UTC(),
		Status:         models.StatusActive,
	}
	if err := f.store.registry().Tasks.Create(&task); err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func (f *fixture) seedAttachment(t *testing.T, taskID, fileName, filePath string) models.TaskAttachment {
	t.Helper()

	attachment := models.TaskAttachment{
		TaskID:   taskID,
		FileName: fileName,
		FilePath: filePath,
		Status:   models.StatusActive,
	}
	if err := f.store.registry().Attachments.Create(&attachment); err != nil {
		t.Fatalf("failed to seed attachment: %v", err)
	}
	f.files.stored[filePath] = true
	return attachment
}

func (f *fixture) seedComment(t *testing.T, taskID, userID, text string) models.TaskComment {
	t.Helper()

	comment := models.TaskComment{
		TaskID:    taskID,
		UserID:    userID,
		Comment:   text,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusActive,
	}
	if err := f.store.registry().Comments.Create(&comment); err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	return comment
}

func (f *fixture) seedAssignment(t *testing.T, taskID, userID string) models.TaskUser {
	t.Helper()

	assignment := models.TaskUser{
		TaskID:    taskID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusActive,
	}
	if err := f.store.registry().Assignments.Create(&assignment); err != nil {
		t.Fatalf("failed to seed assignment: %v", err)
	}
	return assignment
}
