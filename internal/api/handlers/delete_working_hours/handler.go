package delete_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidWeekday        = "некорректный день недели, ожидается 0-6"
	msgProfessionalNotFound  = "профессионал не найден"
	msgNotFound              = "рабочее окно на этот день не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/professionals/{professionalId}/working-hours/{weekday}
// День становится выходным.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/working-hours/{weekday} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем weekday из URL
	weekdayStr := vars["weekday"]
	weekday, err := strconv.Atoi(weekdayStr)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/working-hours/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	if err := h.service.RemoveWorkingHours(r.Context(), professionalID, weekday); err != nil {
		switch {
		case errors.Is(err, schedule.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /professionals/{id}/working-hours/{weekday} - Professional not found: professional_id=%d",
				professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, schedule.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /professionals/{id}/working-hours/{weekday} - Working hours not found: professional_id=%d, weekday=%d",
				professionalID, weekday)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /professionals/{id}/working-hours/{weekday} - Invalid weekday: %d", weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		default:
			h.logger.Error("DELETE /professionals/{id}/working-hours/{weekday} - Failed to remove working hours: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/working-hours/{weekday} - Working hours removed successfully: professional_id=%d, weekday=%d",
		professionalID, weekday)
	handlers.RespondNoContent(w)
}
