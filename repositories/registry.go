package repositories

// Registry bundles one gateway per entity type so services can take a single
// dependency instead of seven.
type Registry struct {
	Projects    ProjectRepository
	Tasks       ProjectTaskRepository
	Memberships ProjectUserRepository
	Assignments TaskUserRepository
	Attachments TaskAttachmentRepository
	Comments    TaskCommentRepository
	Users       UserRepository
}

// NewRegistry creates the gorm-backed registry used in production.
func NewRegistry() *Registry {
	return &Registry{
		Projects:    NewProjectRepository(),
		Tasks:       NewProjectTaskRepository(),
		Memberships: NewProjectUserRepository(),
		Assignments: NewTaskUserRepository(),
		Attachments: NewTaskAttachmentRepository(),
		Comments:    NewTaskCommentRepository(),
		Users:       NewUserRepository(),
	}
}
