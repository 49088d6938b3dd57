package reservations

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator источник идентификаторов бронирований
type IDGenerator interface {
	NewID() (string, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDv7Generator генерирует UUIDv7: идентификаторы упорядочены по времени создания
type UUIDv7Generator struct{}

func (UUIDv7Generator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RealTimeProvider реализация TimeProvider, использующая реальное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
