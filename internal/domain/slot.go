package domain

import "github.com/m04kA/Salon-BookingService/pkg/types"

// AvailableSlot represents a bookable start time for a service.
// Конец слота неявный: StartTime + DurationMinutes.
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}
