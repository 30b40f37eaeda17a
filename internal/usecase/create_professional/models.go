package create_professional

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание профессионала
type Request struct {
	Name     string // Имя профессионала
	Email    string // Email для входа
	Password string // Пароль для входа
	Role     string // Роль: professional или admin
}

// Response модель ответа с созданным профилем
type Response struct {
	ID        int64     // ID профиля
	AuthUID   uuid.UUID // ID принципала в сервисе аутентификации
	Name      string    // Имя
	Email     string    // Email
	Role      string    // Роль
	Active    bool      // Активен ли профиль
	CreatedAt time.Time // Время создания
}
