package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
)

func TestAttachmentCreate_PromotesStagedFile(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)
	project := f.seedProject(t, "Website", time.Now())
	f.seedMembership(t, project.ID, alice.UserID)
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)

	relPath, err := f.attachments.StageUpload("mock.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	assert.True(t, f.files.staged[relPath])

	attachment, err := f.attachments.Create(alice, dto.CreateTaskAttachmentRequest{
		TaskID:   task.ID,
		FileName: "mock.pdf",
		FilePath: relPath,
	})
	require.NoError(t, err)
	assert.Equal(t, relPath, attachment.FilePath)
	assert.False(t, f.files.staged[relPath])
	assert.True(t, f.files.stored[relPath])
}

func TestAttachmentCreate_TaskMustExist(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)

	_, err := f.attachments.Create(admin, dto.CreateTaskAttachmentRequest{
		TaskID:   "missing",
		FileName: "mock.pdf",
		FilePath: "20250101/20250101_a.pdf",
	})
	assert.ErrorIs(t, err, ErrRelatedTaskNotFound)
}

func TestAttachmentCreate_RejectsTraversalPaths(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)
	project := f.seedProject(t, "Website", time.Now())
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)

	for _, path := range []string{"../etc/passwd", "a/b/c", "20250101/../x.pdf", "plain.pdf"} {
		_, err := f.attachments.Create(admin, dto.CreateTaskAttachmentRequest{
			TaskID:   task.ID,
			FileName: "x.pdf",
			FilePath: path,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "path %q should be rejected", path)
	}
}

func TestAttachmentUpdate_ReplacesFile(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)
	project := f.seedProject(t, "Website", time.Now())
	f.seedMembership(t, project.ID, alice.UserID)
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)
	attachment := f.seedAttachment(t, task.ID, "old.pdf", "20250101/20250101_a.pdf")

	newPath, err := f.attachments.StageUpload("new.pdf", strings.NewReader("v2"))
	require.NoError(t, err)

	name := "new.pdf"
	updated, err := f.attachments.Update(alice, attachment.ID, dto.UpdateTaskAttachmentRequest{
		FileName: &name,
		FilePath: &newPath,
	})
	require.NoError(t, err)
	assert.Equal(t, "new.pdf", updated.FileName)
	assert.Equal(t, newPath, updated.FilePath)
	assert.Contains(t, f.files.removed, "20250101/20250101_a.pdf")
}

func TestAttachmentDelete_RemovesRowAndFile(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)
	project := f.seedProject(t, "Website", time.Now())
	f.seedMembership(t, project.ID, alice.UserID)
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)
	attachment := f.seedAttachment(t, task.ID, "mock.pdf", "20250101/20250101_a.pdf")

	require.NoError(t, f.attachments.Delete(alice, attachment.ID))

	got, err := f.store.registry().Attachments.GetByID(attachment.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, f.files.removed, attachment.FilePath)
}

func TestAttachmentGet_RequiresMembership(t *testing.T) {
	f := newFixture()
	outsider := f.seedUser(t, "mallory", models.RoleRegisterUser)
	project := f.seedProject(t, "Website", time.Now())
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)
	attachment := f.seedAttachment(t, task.ID, "mock.pdf", "20250101/20250101_a.pdf")

	_, err := f.attachments.Get(outsider, attachment.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAttachmentGet_NotFound(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)

	_, err := f.attachments.Get(admin, 42)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}
