package authservice

import "errors"

var (
	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("authservice: email is already registered")

	// ErrUserNotFound возвращается, когда принципал не найден
	ErrUserNotFound = errors.New("authservice: user not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("authservice: invalid response")

	// ErrInternal возвращается при сетевых и прочих внутренних ошибках
	ErrInternal = errors.New("authservice: internal error")
)
