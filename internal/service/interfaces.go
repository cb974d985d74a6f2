package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BackupServiceInterface defines the interface for the backup service
type BackupServiceInterface interface {
	Export() (*Snapshot, error)
	ApplyReplace(snap *Snapshot) (*ReplaceResult, error)
	ApplyMerge(snap *Snapshot) (*MergeResult, error)
}

// TeamMemberServiceInterface defines the interface for team member service
type TeamMemberServiceInterface interface {
	GetAll() ([]MemberRecord, error)
	GetByID(id uint) (*MemberRecord, error)
	Create(req *CreateTeamMemberRequest) (*MemberRecord, error)
	Update(id uint, req *UpdateTeamMemberRequest) (*MemberRecord, error)
	Delete(id uint) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	GetAll() ([]ProjectRecord, error)
	GetByID(id uint) (*ProjectRecord, error)
	Create(req *ProjectRecord) (*ProjectRecord, error)
	Update(id uint, req *UpdateProjectRequest) (*ProjectRecord, error)
	Delete(id uint) error
	AddTeamMember(projectID uint, req *AddTeamMemberRequest) error
	RemoveTeamMember(projectID uint, memberName string) error
	AddImage(projectID uint, req *AddImageRequest) (*ImageRecord, error)
	DeleteImage(projectID, imageID uint) error
	AddLink(projectID uint, req *AddLinkRequest) (*LinkRecord, error)
	DeleteLink(projectID, linkID uint) error
}

// TaskServiceInterface defines the interface for task and subtask service
type TaskServiceInterface interface {
	CreateTask(projectID uint, req *TaskRecord) (*TaskRecord, error)
	UpdateTask(id uint, req *UpdateTaskRequest) (*TaskRecord, error)
	DeleteTask(id uint) error
	CreateSubtask(taskID uint, req *SubtaskRecord) (*SubtaskRecord, error)
	UpdateSubtask(id uint, req *UpdateSubtaskRequest) (*SubtaskRecord, error)
	DeleteSubtask(id uint) error
}
