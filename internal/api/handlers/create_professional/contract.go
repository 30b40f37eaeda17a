package create_professional

import (
	"context"

	createProfessional "github.com/m04kA/Salon-BookingService/internal/usecase/create_professional"
)

type CreateProfessionalUseCase interface {
	Execute(ctx context.Context, req *createProfessional.Request) (*createProfessional.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
