package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	createAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDateOrTime      = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgProfessionalNotFound   = "профессионал не найден"
	msgServiceNotFound        = "услуга не найдена"
	msgServiceInactive        = "услуга недоступна для записи"
	msgServiceNotOffered      = "услуга недоступна в выбранный день недели"
	msgProfessionalNotWorking = "профессионал не работает в выбранную дату"
	msgScheduleMisconfigured  = "расписание профессионала настроено некорректно"
	msgSlotInPast             = "нельзя записаться на прошедшее время"
	msgSlotOutsideHours       = "выбранное время вне рабочих часов"
	msgSlotTaken              = "выбранное время уже занято, обновите список доступных слотов"
	msgInvalidInput           = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: professional_id=%d, date=%s, start=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrServiceNotOfferedOnDate):
			h.logger.Warn("POST /appointments - Service not offered on date: service_id=%d, date=%s",
				req.ServiceID, req.Date)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppointment.ErrProfessionalNotWorking):
			h.logger.Warn("POST /appointments - Professional not working: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgProfessionalNotWorking)

		case errors.Is(err, createAppointment.ErrScheduleMisconfigured):
			h.logger.Warn("POST /appointments - Schedule misconfigured: professional_id=%d", req.ProfessionalID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleMisconfigured)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in past: professional_id=%d, date=%s, start=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrSlotOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Slot outside working hours: professional_id=%d, date=%s, start=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotOutsideHours)

		case errors.Is(err, createAppointment.ErrInvalidServiceDuration):
			h.logger.Warn("POST /appointments - Invalid service duration: service_id=%d", req.ServiceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: professional_id=%d, service_id=%d, error=%v",
				req.ProfessionalID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, professional_id=%d, starts_at=%s",
		result.ID, result.ProfessionalID, result.StartsAt)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
