package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
)

// ProjectModel is the persistence model for the Project domain entity.
// Team membership lives in project_members, tasks in their own table.
type ProjectModel struct {
	BaseModel
	ProjectName string               `gorm:"type:varchar(200);not null"`
	ClientName  string               `gorm:"type:varchar(200);not null"`
	Description string               `gorm:"type:text;not null"`
	ManagerID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Members     []ProjectMemberModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
// Tasks must be loaded separately by the repository.
func (m *ProjectModel) ToDomain() *project.Project {
	team := make([]uuid.UUID, 0, len(m.Members))
	for _, member := range m.Members {
		team = append(team, member.UserID)
	}
	return &project.Project{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ProjectName: m.ProjectName,
		ClientName:  m.ClientName,
		Description: m.Description,
		ManagerID:   m.ManagerID,
		TeamIDs:     team,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
// Membership rows are managed separately by the repository.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ProjectName = p.ProjectName
	m.ClientName = p.ClientName
	m.Description = p.Description
	m.ManagerID = p.ManagerID
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// ProjectMemberModel is the persistence model for project team membership.
type ProjectMemberModel struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProjectMemberModel) TableName() string {
	return "project_members"
}

// TaskModel is the persistence model for the Task domain entity.
type TaskModel struct {
	BaseModel
	Name        string                 `gorm:"type:varchar(200);not null"`
	Description string                 `gorm:"type:text;not null"`
	Status      string                 `gorm:"type:varchar(50);not null"`
	ProjectID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	History     []TaskStatusEventModel `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Notes       []NoteModel            `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity,
// including its loaded history and notes.
func (m *TaskModel) ToDomain() *project.Task {
	history := make([]project.StatusEvent, 0, len(m.History))
	for _, event := range m.History {
		history = append(history, *event.ToDomain())
	}
	notes := make([]*project.Note, 0, len(m.Notes))
	for _, note := range m.Notes {
		notes = append(notes, note.ToDomain())
	}
	return &project.Task{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		Description: m.Description,
		Status:      project.TaskStatus(m.Status),
		ProjectID:   m.ProjectID,
		History:     history,
		Notes:       notes,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
// History and note rows are managed separately by the repository.
func (m *TaskModel) FromDomain(t *project.Task) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Description = t.Description
	m.Status = string(t.Status)
	m.ProjectID = t.ProjectID
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *project.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}

// TaskStatusEventModel is the persistence model for one completion
// history entry. Rows are append only.
type TaskStatusEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Status    string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TaskStatusEventModel) TableName() string {
	return "task_status_events"
}

// ToDomain converts the persistence model to a domain StatusEvent.
func (m *TaskStatusEventModel) ToDomain() *project.StatusEvent {
	return &project.StatusEvent{
		ID:        m.ID,
		TaskID:    m.TaskID,
		UserID:    m.UserID,
		Status:    project.TaskStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// TaskStatusEventModelFromDomain creates a new persistence model from a domain StatusEvent.
func TaskStatusEventModelFromDomain(e *project.StatusEvent) *TaskStatusEventModel {
	return &TaskStatusEventModel{
		ID:        e.ID,
		TaskID:    e.TaskID,
		UserID:    e.UserID,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

// NoteModel is the persistence model for the Note domain entity.
type NoteModel struct {
	BaseModel
	Content   string    `gorm:"type:text;not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (NoteModel) TableName() string {
	return "notes"
}

// ToDomain converts the persistence model to a domain Note entity.
func (m *NoteModel) ToDomain() *project.Note {
	return &project.Note{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Content:   m.Content,
		CreatedBy: m.CreatedBy,
		TaskID:    m.TaskID,
	}
}

// NoteModelFromDomain creates a new persistence model from a domain Note entity.
func NoteModelFromDomain(n *project.Note) *NoteModel {
	m := &NoteModel{}
	m.FromDomain(n)
	return m
}

// FromDomain populates the persistence model from a domain Note entity.
func (m *NoteModel) FromDomain(n *project.Note) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.Content = n.Content
	m.CreatedBy = n.CreatedBy
	m.TaskID = n.TaskID
}
