package create_professional

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/authservice"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error)
}

// AuthServiceClient интерфейс клиента сервиса аутентификации
type AuthServiceClient interface {
	CreateUser(ctx context.Context, req *authservice.CreateUserRequest) (*authservice.User, error)
	DeleteUser(ctx context.Context, uid uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
