package create_professional

import (
	"time"

	"github.com/google/uuid"

	createProfessional "github.com/m04kA/Salon-BookingService/internal/usecase/create_professional"
)

// CreateProfessionalRequest HTTP request model
type CreateProfessionalRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ProfessionalResponse HTTP response model.
// Пароль в ответ не попадает.
type ProfessionalResponse struct {
	ID        int64     `json:"id"`
	AuthUID   uuid.UUID `json:"authUid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateProfessionalRequest) ToUseCaseRequest() *createProfessional.Request {
	return &createProfessional.Request{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createProfessional.Response) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:        resp.ID,
		AuthUID:   resp.AuthUID,
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      resp.Role,
		Active:    resp.Active,
		CreatedAt: resp.CreatedAt,
	}
}
