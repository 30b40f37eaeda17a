package create_appointment

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	ClientName     string           // Имя клиента
	ClientPhone    string           // Телефон клиента
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
	ProfessionalID  int64     // ID профессионала
	ServiceID       int64     // ID услуги
	StartsAt        time.Time // Начало записи
	EndsAt          time.Time // Конец записи (= начало + длительность услуги)
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи

	// Денормализованные данные
	ClientName   string  // Имя клиента
	ClientPhone  string  // Телефон клиента
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
