package services

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// fakeStore is an in-memory registry with map-backed gateways. Listing
// methods mirror the production ordering (newest first for projects and
// tasks) and only ever return active rows.
type fakeStore struct {
	mu sync.RWMutex

	nextMembershipID int64
	nextAssignmentID int64
	nextAttachmentID int64
	nextCommentID    int64

	projects    map[string]models.Project
	tasks       map[string]models.ProjectTask
	memberships map[int64]models.ProjectUser
	assignments map[int64]models.TaskUser
	attachments map[int64]models.TaskAttachment
	comments    map[int64]models.TaskComment
	users       map[string]models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextMembershipID: 1,
		nextAssignmentID: 1,
		nextAttachmentID: 1,
		nextCommentID:    1,
		projects:         make(map[string]models.Project),
		tasks:            make(map[string]models.ProjectTask),
		memberships:      make(map[int64]models.ProjectUser),
		assignments:      make(map[int64]models.TaskUser),
		attachments:      make(map[int64]models.TaskAttachment),
		comments:         make(map[int64]models.TaskComment),
		users:            make(map[string]models.User),
	}
}

func (f *fakeStore) registry() *repositories.Registry {
	return &repositories.Registry{
		Projects:    (*fakeProjects)(f),
		Tasks:       (*fakeTasks)(f),
		Memberships: (*fakeMemberships)(f),
		Assignments: (*fakeAssignments)(f),
		Attachments: (*fakeAttachments)(f),
		Comments:    (*fakeComments)(f),
		Users:       (*fakeUsers)(f),
	}
}

type fakeProjects fakeStore

func (f *fakeProjects) GetAll() ([]models.Project, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.Project
	for _, p := range f.projects {
		if p.Status == models.StatusActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProjects) GetByID(id string) (*models.Project, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p, ok := f.projects[id]
	if !ok || p.Status != models.StatusActive {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProjects) Create(project *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjects) Update(project *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjects) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.projects, id)
	return nil
}

type fakeTasks fakeStore

func (f *fakeTasks) GetAll() ([]models.ProjectTask, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.ProjectTask
	for _, t := range f.tasks {
		if t.Status == models.StatusActive {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTasks) GetByProjectID(projectID string) ([]models.ProjectTask, error) {
	all, _ := f.GetAll()
	var out []models.ProjectTask
	for _, t := range all {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) GetByID(id string) (*models.ProjectTask, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.tasks[id]
	if !ok || t.Status != models.StatusActive {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTasks) Create(task *models.ProjectTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTasks) Update(task *models.ProjectTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTasks) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tasks, id)
	return nil
}

func (f *fakeTasks) DeleteByProjectID(projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, t := range f.tasks {
		if t.ProjectID == projectID {
			delete(f.tasks, id)
		}
	}
	return nil
}

type fakeMemberships fakeStore

func (f *fakeMemberships) GetByProjectID(projectID string) ([]models.ProjectUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.ProjectUser
	for _, m := range f.memberships {
		if m.Status == models.StatusActive && m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMemberships) GetByUserID(userID string) ([]models.ProjectUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.ProjectUser
	for _, m := range f.memberships {
		if m.Status == models.StatusActive && m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMemberships) Find(projectID, userID string) (*models.ProjectUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, m := range f.memberships {
		if m.Status == models.StatusActive && m.ProjectID == projectID && m.UserID == userID {
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberships) GetByID(id int64) (*models.ProjectUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	m, ok := f.memberships[id]
	if !ok || m.Status != models.StatusActive {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMemberships) Create(membership *models.ProjectUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if membership.ID == 0 {
		membership.ID = f.nextMembershipID
		f.nextMembershipID++
	}
	f.memberships[membership.ID] = *membership
	return nil
}

func (f *fakeMemberships) Delete(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.memberships, id)
	return nil
}

func (f *fakeMemberships) DeleteByProjectID(projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, m := range f.memberships {
		if m.ProjectID == projectID {
			delete(f.memberships, id)
		}
	}
	return nil
}

type fakeAssignments fakeStore

func (f *fakeAssignments) GetAll() ([]models.TaskUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.TaskUser
	for _, a := range f.assignments {
		if a.Status == models.StatusActive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAssignments) GetByTaskID(taskID string) ([]models.TaskUser, error) {
	all, _ := f.GetAll()
	var out []models.TaskUser
	for _, a := range all {
		if a.TaskID == taskID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignments) GetByUserID(userID string) ([]models.TaskUser, error) {
	all, _ := f.GetAll()
	var out []models.TaskUser
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignments) Find(taskID, userID string) (*models.TaskUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, a := range f.assignments {
		if a.Status == models.StatusActive && a.TaskID == taskID && a.UserID == userID {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssignments) GetByID(id int64) (*models.TaskUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	a, ok := f.assignments[id]
	if !ok || a.Status != models.StatusActive {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAssignments) Create(assignment *models.TaskUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if assignment.ID == 0 {
		assignment.ID = f.nextAssignmentID
		f.nextAssignmentID++
	}
	f.assignments[assignment.ID] = *assignment
	return nil
}

func (f *fakeAssignments) Delete(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.assignments, id)
	return nil
}

func (f *fakeAssignments) DeleteByTaskIDs(taskIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.assignments {
		for _, taskID := range taskIDs {
			if a.TaskID == taskID {
				delete(f.assignments, id)
			}
		}
	}
	return nil
}

type fakeAttachments fakeStore

func (f *fakeAttachments) GetByTaskID(taskID string) ([]models.TaskAttachment, error) {
	return f.GetByTaskIDs([]string{taskID})
}

func (f *fakeAttachments) GetByTaskIDs(taskIDs []string) ([]models.TaskAttachment, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.TaskAttachment
	for _, a := range f.attachments {
		if a.Status != models.StatusActive {
			continue
		}
		for _, taskID := range taskIDs {
			if a.TaskID == taskID {
				out = append(out, a)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAttachments) GetByID(id int64) (*models.TaskAttachment, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	a, ok := f.attachments[id]
	if !ok || a.Status != models.StatusActive {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAttachments) Create(attachment *models.TaskAttachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if attachment.ID == 0 {
		attachment.ID = f.nextAttachmentID
		f.nextAttachmentID++
	}
	f.attachments[attachment.ID] = *attachment
	return nil
}

func (f *fakeAttachments) Update(attachment *models.TaskAttachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attachments[attachment.ID] = *attachment
	return nil
}

func (f *fakeAttachments) Delete(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.attachments, id)
	return nil
}

func (f *fakeAttachments) DeleteByTaskIDs(taskIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.attachments {
		for _, taskID := range taskIDs {
			if a.TaskID == taskID {
				delete(f.attachments, id)
			}
		}
	}
	return nil
}

type fakeComments fakeStore

func (f *fakeComments) GetByTaskID(taskID string) ([]models.TaskComment, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.TaskComment
	for _, c := range f.comments {
		if c.Status == models.StatusActive && c.TaskID == taskID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeComments) GetByID(id int64) (*models.TaskComment, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.comments[id]
	if !ok || c.Status != models.StatusActive {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeComments) Create(comment *models.TaskComment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if comment.ID == 0 {
		comment.ID = f.nextCommentID
		f.nextCommentID++
	}
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeComments) Delete(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, id)
	return nil
}

func (f *fakeComments) DeleteByTaskIDs(taskIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.comments {
		for _, taskID := range taskIDs {
			if c.TaskID == taskID {
				delete(f.comments, id)
			}
		}
	}
	return nil
}

type fakeUsers fakeStore

func (f *fakeUsers) GetAll() ([]models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUsers) GetByID(id string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) GetByUsername(username string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

// fakeFileStore records staged and stored paths in memory.
type fakeFileStore struct {
	mu      sync.Mutex
	staged  map[string]bool
	stored  map[string]bool
	removed []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{
		staged: make(map[string]bool),
		stored: make(map[string]bool),
	}
}

func (f *fakeFileStore) Stage(originalName string, src io.Reader) (string, error) {
	io.Copy(io.Discard, src)
	relPath := time.Now().UTC().Format("20060102") + "/" + uuid.NewString()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged[relPath] = true
	return relPath, nil
}

func (f *fakeFileStore) Promote(relPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.staged[relPath] {
		delete(f.staged, relPath)
		f.stored[relPath] = true
	}
	return nil
}

func (f *fakeFileStore) Remove(relPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, relPath)
	f.removed = append(f.removed, relPath)
	return nil
}
