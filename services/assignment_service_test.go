package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
)

func TestAssignmentCreate_TaskMustExist(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)

	_, err := f.assignments.Create(admin, dto.CreateTaskUserRequest{
		TaskID: "missing",
		UserID: "u1",
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestAssignmentCreate_ActorMustBeMember(t *testing.T) {
	f := newFixture()
	outsider := f.seedUser(t, "mallory", models.RoleRegisterUser)
	project := f.seedProject(t, "Website", time.Now())
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)

	_, err := f.assignments.Create(outsider, dto.CreateTaskUserRequest{
		TaskID: task.ID,
		UserID: outsider.UserID,
	})
	assert.ErrorIs(t, err, ErrNotAuthorizedAssign)
}

func TestAssignmentCreate_AssigneeMustBeMember(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)
	bob := f.seedUser(t, "bob", models.RoleRegisterUser)

	project := f.seedProject(t, "Website", time.Now())
	f.seedMembership(t, project.ID, alice.UserID)
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)

	_, err := f.assignments.Create(alice, dto.CreateTaskUserRequest{
		TaskID: task.ID,
		UserID: bob.UserID,
	})
	assert.ErrorIs(t, err, ErrAssigneeNotMember)
}

func TestAssignmentCreate_AdminBypassesMembershipChecks(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)
	bob := f.seedUser(t, "bob", models.RoleRegisterUser)

	project := f.seedProject(t, "Website", time.Now())
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)

	assignment, err := f.assignments.Create(admin, dto.CreateTaskUserRequest{
		TaskID: task.ID,
		UserID: bob.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, bob.UserID, assignment.UserID)
}

func TestAssignmentCreate_RejectsDuplicate(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)

	project := f.seedProject(t, "Website", time.Now())
	f.seedMembership(t, project.ID, alice.UserID)
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)

	req := dto.CreateTaskUserRequest{TaskID: task.ID, UserID: alice.UserID}
	_, err := f.assignments.Create(alice, req)
	require.NoError(t, err)

	_, err = f.assignments.Create(alice, req)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAssignmentList_ScopedToMemberProjects(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)
	bob := f.seedUser(t, "bob", models.RoleRegisterUser)

	mine := f.seedProject(t, "Mine", time.Now())
	theirs := f.seedProject(t, "Theirs", time.Now())
	f.seedMembership(t, mine.ID, alice.UserID)
	f.seedMembership(t, theirs.ID, bob.UserID)

	myTask := f.seedTask(t, mine.ID, "Visible", models.PriorityLow)
	theirTask := f.seedTask(t, theirs.ID, "Hidden", models.PriorityLow)
	visible := f.seedAssignment(t, myTask.ID, alice.UserID)
	f.seedAssignment(t, theirTask.ID, bob.UserID)

	rows, err := f.assignments.List(alice, dto.TaskUserFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, visible.ID, rows[0].ID)

	rows, err = f.assignments.List(alice, dto.TaskUserFilter{TaskID: myTask.ID})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAssignmentDelete_RequiresMembership(t *testing.T) {
	f := newFixture()
	outsider := f.seedUser(t, "mallory", models.RoleRegisterUser)
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)

	project := f.seedProject(t, "Website", time.Now())
	f.seedMembership(t, project.ID, alice.UserID)
	task := f.seedTask(t, project.ID, "Design", models.PriorityLow)
	assignment := f.seedAssignment(t, task.ID, alice.UserID)

	err := f.assignments.Delete(outsider, assignment.ID)
	assert.ErrorIs(t, err, ErrNotAuthorizedDelete)

	require.NoError(t, f.assignments.Delete(alice, assignment.ID))

	// The task itself is untouched.
	got, err := f.store.registry().Tasks.GetByID(task.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestAssignmentDelete_NotFound(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)

	err := f.assignments.Delete(admin, 42)
	assert.ErrorIs(t, err, ErrTaskUserNotFound)
}
