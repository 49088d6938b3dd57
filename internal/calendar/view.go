package calendar

import (
	"fmt"
	"strings"
)

// View calendar presentation mode
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// MonthPlaceholderMessage shown instead of the month grid
const MonthPlaceholderMessage = "Visualização mensal de horários não implementada. Use a visualização semanal."

// ParseView empty string means the week view
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewWeek:
		return ViewWeek, nil
	case ViewMonth:
		return ViewMonth, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
}
