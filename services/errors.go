package services

import (
	"errors"
)

// Domain failure conditions. Handlers surface these verbatim in the
// {"success":false,"message":...} body, so the texts are part of the wire
// contract.
var (
	ErrProjectNotFound     = errors.New("Project not found.")
	ErrTaskNotFound        = errors.New("Project task not found.")
	ErrRelatedTaskNotFound = errors.New("Related task not found.")
	ErrAttachmentNotFound  = errors.New("Attachment not found.")
	ErrCommentNotFound     = errors.New("Comment not found.")
	ErrProjectUserNotFound = errors.New("ProjectUser not found.")
	ErrTaskUserNotFound    = errors.New("TaskUser not found.")
	ErrUserNotFound        = errors.New("User not found.")

	ErrAccessDenied        = errors.New("Access denied. You are not part of this project.")
	ErrNotAuthorizedAssign = errors.New("You are not authorized to assign users to this task.")
	ErrNotAuthorizedDelete = errors.New("You are not authorized to delete this assignment.")
	ErrAssigneeNotMember   = errors.New("The selected user is not part of this project.")

	ErrAlreadyAssigned      = errors.New("User already assigned to this task.")
	ErrAlreadyProjectMember = errors.New("This user is already assigned to the project.")

	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailExists        = errors.New("Email already exists.")
	ErrUsernameTaken      = errors.New("Username already taken.")

	ErrInvalidInput = errors.New("invalid input")
)

// invalidInput wraps ErrInvalidInput with an endpoint-specific message.
func invalidInput(msg string) error {
	return &inputError{msg: msg}
}

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }
