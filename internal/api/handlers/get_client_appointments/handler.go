package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments"
)

const (
	msgMissingClientPhone = "телефон клиента обязателен"
	msgInvalidClientPhone = "некорректный телефон клиента"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientPhone}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clientPhone из URL
	vars := mux.Vars(r)
	clientPhone := vars["clientPhone"]
	if clientPhone == "" {
		h.logger.Warn("GET /clients/{phone}/appointments - Missing client phone")
		handlers.RespondBadRequest(w, msgMissingClientPhone)
		return
	}

	result, err := h.service.GetClientAppointments(r.Context(), clientPhone)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /clients/{phone}/appointments - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClientPhone)

		default:
			h.logger.Error("GET /clients/{phone}/appointments - Failed to get appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{phone}/appointments - Appointments retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
