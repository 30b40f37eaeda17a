package create_professional

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/authservice"
	profRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/professional"
)

// minPasswordLength минимальная длина пароля при создании учётной записи
const minPasswordLength = 8

// UseCase use case создания профессионала.
// Двухшаговая операция с компенсацией: принципал аутентификации создаётся
// во внешнем сервисе, затем пишется строка профиля; если вставка профиля
// не удалась, только что созданный принципал удаляется.
type UseCase struct {
	professionalRepo ProfessionalRepository
	authClient       AuthServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(professionalRepo ProfessionalRepository, authClient AuthServiceClient, logger Logger) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		authClient:       authClient,
		logger:           logger,
	}
}

// Execute выполняет use case создания профессионала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateProfessional: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateProfessional: email=%s, role=%s", req.Email, req.Role)

	// 2. Создаем принципала аутентификации
	user, err := uc.authClient.CreateUser(ctx, &authservice.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			uc.logger.Warn("CreateProfessional: email %s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		uc.logger.Error("CreateProfessional: failed to create auth user: %v", err)
		return nil, fmt.Errorf("%w: failed to create auth user: %v", ErrInternal, err)
	}

	// 3. Создаем профиль, ссылающийся на принципала
	created, err := uc.professionalRepo.Create(ctx, &domain.Professional{
		AuthUID: user.ID,
		Name:    req.Name,
		Email:   req.Email,
		Role:    domain.ProfessionalRole(req.Role),
		Active:  true,
	})
	if err != nil {
		// Компенсация: профиль не записан, принципал не должен остаться
		uc.logger.Error("CreateProfessional: failed to create profile, compensating auth user %s: %v",
			user.ID, err)
		if delErr := uc.authClient.DeleteUser(ctx, user.ID); delErr != nil {
			// Осиротевший принципал: компенсация не удалась, чистится вручную
			uc.logger.Error("CreateProfessional: compensation failed, orphaned auth user %s: %v",
				user.ID, delErr)
		}

		if errors.Is(err, profRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: failed to create profile: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateProfessional: successfully created professional id=%d, auth_uid=%s",
		created.ID, created.AuthUID)

	return &Response{
		ID:        created.ID,
		AuthUID:   created.AuthUID,
		Name:      created.Name,
		Email:     created.Email,
		Role:      string(created.Role),
		Active:    created.Active,
		CreatedAt: created.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	switch domain.ProfessionalRole(req.Role) {
	case domain.RoleProfessional, domain.RoleAdmin:
	default:
		return fmt.Errorf("%w: role must be %q or %q", ErrInvalidInput, domain.RoleProfessional, domain.RoleAdmin)
	}

	return nil
}
