package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid constants
const (
	DaysInWeek      = 7
	SlotStepMinutes = 45
	FirstSlotTime   = "07:00"
	LastSlotTime    = "19:00"
)

// Booking form constants
const (
	MinDescriptionLength   = 5
	DefaultUserName        = "João Silva"
	AllResourceTypesFilter = "Todos"
)
