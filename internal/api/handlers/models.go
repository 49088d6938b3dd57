package handlers

import (
	"time"

	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
)

// ResourceResponse ресурс каталога
type ResourceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	SportType    string `json:"sportType"`
	ResourceType string `json:"resourceType"`
}

// SlotResponse выбранный слот
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DraftResponse текущий выбор пользователя
type DraftResponse struct {
	Resource *ResourceResponse `json:"resource,omitempty"`
	Date     *string           `json:"date,omitempty"`
	Slot     *SlotResponse     `json:"slot,omitempty"`
}

// CellRef координаты ячейки сетки
type CellRef struct {
	DayIndex int    `json:"dayIndex"`
	Time     string `json:"time"`
}

// SessionResponse состояние сессии
type SessionResponse struct {
	ID              string        `json:"id"`
	State           string        `json:"state"`
	Screen          string        `json:"screen"`
	Draft           DraftResponse `json:"draft"`
	Highlighted     *CellRef      `json:"highlighted,omitempty"`
	ReferenceDate   string        `json:"referenceDate"`
	DefaultUserName string        `json:"defaultUserName"`
	ConfirmedCount  int           `json:"confirmedCount"`
	CreatedAt       string        `json:"createdAt"`
}

// ReservationResponse бронирование
type ReservationResponse struct {
	ID          string `json:"id"`
	ResourceID  string `json:"resourceId"`
	Resource    string `json:"resourceName"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	UserName    string `json:"userName"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// GridCellResponse ячейка недельной сетки
type GridCellResponse struct {
	DayIndex int    `json:"dayIndex"`
	Date     string `json:"date"`
	State    string `json:"state"`
	Occupant string `json:"occupant,omitempty"`
	Title    string `json:"title"`
}

// GridRowResponse строка сетки для одного времени
type GridRowResponse struct {
	Time  string             `json:"time"`
	Cells []GridCellResponse `json:"cells"`
}

// WeekGridResponse недельная сетка
type WeekGridResponse struct {
	View string            `json:"view"`
	Days []string          `json:"days"`
	Rows []GridRowResponse `json:"rows"`
}

func FromResource(r domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		SportType:    r.SportType,
		ResourceType: r.ResourceType,
	}
}

func FromResources(resources []domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, FromResource(r))
	}
	return out
}

// FromSnapshot конвертирует состояние сессии в HTTP response
func FromSnapshot(s session.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:              s.ID,
		State:           s.State.String(),
		Screen:          string(s.Screen),
		ReferenceDate:   s.ReferenceDate.Format(domain.DateFormat),
		DefaultUserName: s.DefaultUserName,
		ConfirmedCount:  s.ConfirmedCount,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}

	if s.Draft.Resource != nil {
		r := FromResource(*s.Draft.Resource)
		resp.Draft.Resource = &r
	}
	if !s.Draft.Date.IsZero() {
		d := s.Draft.Date.Format(domain.DateFormat)
		resp.Draft.Date = &d
	}
	if s.Draft.Slot != nil {
		resp.Draft.Slot = &SlotResponse{
			Time:      s.Draft.Slot.Time.String(),
			Available: s.Draft.Slot.Available,
		}
	}
	if s.Highlighted != nil {
		resp.Highlighted = &CellRef{DayIndex: s.Highlighted.DayIndex, Time: s.Highlighted.Time.String()}
	}

	return resp
}

func FromReservation(r domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		ResourceID:  r.Resource.ID,
		Resource:    r.Resource.Name,
		Category:    r.Resource.Category,
		Date:        r.Date.Format(domain.DateFormat),
		Time:        r.Slot.Time.String(),
		Description: r.Description,
		UserName:    r.UserName,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

// FromWeekGrid конвертирует сетку недели в HTTP response
func FromWeekGrid(g calendar.WeekGrid) *WeekGridResponse {
	resp := &WeekGridResponse{
		View: string(calendar.ViewWeek),
		Days: make([]string, 0, len(g.Week)),
		Rows: make([]GridRowResponse, 0, len(g.Rows)),
	}

	for _, d := range g.Week {
		resp.Days = append(resp.Days, d.Format(domain.DateFormat))
	}

	for _, row := range g.Rows {
		r := GridRowResponse{
			Time:  row.Time.String(),
			Cells: make([]GridCellResponse, 0, len(row.Cells)),
		}
		for _, c := range row.Cells {
			r.Cells = append(r.Cells, GridCellResponse{
				DayIndex: c.DayIndex,
				Date:     c.Date.Format(domain.DateFormat),
				State:    string(c.State.Kind),
				Occupant: c.State.Occupant,
				Title:    c.Title,
			})
		}
		resp.Rows = append(resp.Rows, r)
	}

	return resp
}
