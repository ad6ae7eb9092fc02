package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// Project is an owned resource. The manager is set once at creation and
// authorizes every mutating operation; team members get read access.
type Project struct {
	shared.BaseEntity
	ProjectName string
	ClientName  string
	Description string
	ManagerID   uuid.UUID
	TeamIDs     []uuid.UUID // loaded by repository
	Tasks       []*Task     // loaded on demand
}

// NewProject creates a project managed by the given user
func NewProject(projectName, clientName, description string, managerID uuid.UUID) (*Project, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, shared.NewValidationError("Project name is required")
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewValidationError("Client name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("Description is required")
	}
	if managerID == uuid.Nil {
		return nil, shared.NewValidationError("Manager is required")
	}

	return &Project{
		BaseEntity:  shared.NewBaseEntity(),
		ProjectName: strings.TrimSpace(projectName),
		ClientName:  strings.TrimSpace(clientName),
		Description: strings.TrimSpace(description),
		ManagerID:   managerID,
		TeamIDs:     make([]uuid.UUID, 0),
	}, nil
}

// UpdateDetails overwrites the three descriptive fields wholesale
func (p *Project) UpdateDetails(projectName, clientName, description string) error {
	if strings.TrimSpace(projectName) == "" {
		return shared.NewValidationError("Project name is required")
	}
	if strings.TrimSpace(clientName) == "" {
		return shared.NewValidationError("Client name is required")
	}
	if strings.TrimSpace(description) == "" {
		return shared.NewValidationError("Description is required")
	}

	p.ProjectName = strings.TrimSpace(projectName)
	p.ClientName = strings.TrimSpace(clientName)
	p.Description = strings.TrimSpace(description)
	p.UpdatedAt = time.Now()

	return nil
}

// IsManager reports whether the user created the project
func (p *Project) IsManager(userID uuid.UUID) bool {
	return p.ManagerID == userID
}

// IsTeamMember reports whether the user is in the team set
func (p *Project) IsTeamMember(userID uuid.UUID) bool {
	for _, id := range p.TeamIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasAccess reports whether the user may read the project
func (p *Project) HasAccess(userID uuid.UUID) bool {
	return p.IsManager(userID) || p.IsTeamMember(userID)
}

// AddMember adds a user to the team
func (p *Project) AddMember(userID uuid.UUID) error {
	if p.IsManager(userID) {
		return shared.NewConflictError("The manager cannot be added to the team")
	}
	if p.IsTeamMember(userID) {
		return shared.NewConflictError("User already in the team")
	}

	p.TeamIDs = append(p.TeamIDs, userID)
	p.UpdatedAt = time.Now()

	return nil
}

// RemoveMember removes a user from the team
func (p *Project) RemoveMember(userID uuid.UUID) error {
	for i, id := range p.TeamIDs {
		if id == userID {
			p.TeamIDs = append(p.TeamIDs[:i], p.TeamIDs[i+1:]...)
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.NewConflictError("User not in the team")
}
