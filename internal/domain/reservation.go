package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ReservationTab selects which part of the reservations list is shown
type ReservationTab string

const (
	TabActive ReservationTab = "active"
	TabAll    ReservationTab = "all"
)

// Reservation confirmed outcome of a booking draft.
// ID and CreatedAt never change; Status only goes confirmed -> cancelled.
type Reservation struct {
	ID          string
	Resource    ResourceSnapshot
	Date        time.Time
	Slot        TimeSlot
	Description string
	UserName    string
	Status      ReservationStatus
	CreatedAt   time.Time
}

// IsActive returns true if the reservation has not been cancelled
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// ReservationsFilter фильтр списка "мои бронирования"
type ReservationsFilter struct {
	Tab           ReservationTab     // TabActive показывает только подтвержденные
	Status        *ReservationStatus // nil = любой статус
	NameSubstring string             // Поиск по названию ресурса без учета регистра
}

// ParseReservationStatus validates a status string
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusConfirmed, StatusCancelled:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// ParseReservationTab validates a tab string; empty means TabActive
func ParseReservationTab(s string) (ReservationTab, bool) {
	switch ReservationTab(s) {
	case "":
		return TabActive, true
	case TabActive, TabAll:
		return ReservationTab(s), true
	default:
		return "", false
	}
}
