package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalRole роль учётной записи профессионала
type ProfessionalRole string

const (
	RoleProfessional ProfessionalRole = "professional"
	RoleAdmin        ProfessionalRole = "admin"
)

// Professional represents a salon professional profile.
// AuthUID ссылается на принципала во внешнем сервисе аутентификации.
type Professional struct {
	ID        int64
	AuthUID   uuid.UUID
	Name      string
	Email     string
	Role      ProfessionalRole
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
