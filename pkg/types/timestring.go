package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате HH:MM без даты
// Нулевое значение означает "время не указано"
type TimeString struct {
	value string
}

// NewTimeStringFromString парсит строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(strings.TrimSpace(s))
	if err != nil {
		return TimeString{}, err
	}
	return fromMinutes(minutes), nil
}

// MustTimeString как NewTimeStringFromString, но паникует на ошибке.
// Только для констант и тестовых фикстур.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t TimeString) String() string {
	return t.value
}

func (t TimeString) IsZero() bool {
	return t.value == ""
}

// Validate проверяет, что значение является корректным временем суток
func (t TimeString) Validate() error {
	if t.IsZero() {
		return fmt.Errorf("%w: empty value", ErrInvalidTimeString)
	}
	_, err := parseMinutes(t.value)
	return err
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	m, err := parseMinutes(t.value)
	if err != nil {
		return 0
	}
	return m
}

// AddMinutes сдвигает время на указанное количество минут в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return TimeString{}, err
	}
	total := t.Minutes() + minutes
	if total < 0 || total >= minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s %+d min", ErrTimeOverflow, t.value, minutes)
	}
	return fromMinutes(total), nil
}

func (t TimeString) Equal(other TimeString) bool {
	return t.value == other.value
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

func (t *TimeString) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func parseMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return h*minutesPerHour + m, nil
}

func fromMinutes(total int) TimeString {
	return TimeString{value: fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour)}
}
