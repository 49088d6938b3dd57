package flow

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/catalog"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/metrics"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// Deps collaborators of the controller. Metrics may be nil.
type Deps struct {
	Catalog   Catalog
	Calendar  Calendar
	Store     ReservationSink
	Navigator Navigator
	Metrics   TransitionRecorder
	Logger    Logger
}

// Controller booking flow state machine:
// choosing-resource -> choosing-slot -> confirming -> (reservation) -> choosing-resource.
// Not safe for concurrent use; the owning session serialises calls.
type Controller struct {
	deps Deps

	state         State
	draft         domain.BookingDraft
	highlighted   *domain.Cell
	referenceDate time.Time
}

// NewController starts the flow for referenceDate.
// A known preselectedID skips straight to choosing-slot; unknown or empty ids start at choosing-resource.
func NewController(deps Deps, referenceDate time.Time, preselectedID string) *Controller {
	c := &Controller{
		deps:          deps,
		state:         StateChoosingResource,
		referenceDate: referenceDate,
	}

	if preselectedID == "" {
		return c
	}

	resource, ok := deps.Catalog.Get(preselectedID)
	if !ok {
		c.deps.Logger.Warn("NewController: preselected resource=%s not found, starting from resource choice", preselectedID)
		return c
	}

	c.draft.Resource = &resource
	c.state = StateChoosingSlot
	c.deps.Logger.Info("NewController: preselected resource=%s", resource.ID)
	return c
}

func (c *Controller) State() State {
	return c.state
}

// Draft returns a copy of the in-progress selection
func (c *Controller) Draft() domain.BookingDraft {
	return c.draft.Clone()
}

// Highlighted returns the cell currently shown as selected in the grid
func (c *Controller) Highlighted() (domain.Cell, bool) {
	if c.highlighted == nil {
		return domain.Cell{}, false
	}
	return *c.highlighted, true
}

func (c *Controller) ReferenceDate() time.Time {
	return c.referenceDate
}

// SetReferenceDate moves the grid to the week containing date.
// Not allowed while confirming.
func (c *Controller) SetReferenceDate(date time.Time) error {
	if date.IsZero() {
		return c.reject(TransitionSetDate, fmt.Errorf("%w: zero date", ErrInvalidDate))
	}
	if c.state == StateConfirming {
		return c.reject(TransitionSetDate, fmt.Errorf("%w: set date from %s", ErrWrongState, c.state))
	}

	c.referenceDate = date
	c.highlighted = nil
	c.accept(TransitionSetDate)
	return nil
}

func (c *Controller) Week() calendar.Week {
	return calendar.WeekOf(c.referenceDate)
}

// CellState state of a cell in the current week, highlight included
func (c *Controller) CellState(dayIndex int, label types.TimeString) calendar.CellState {
	return c.deps.Calendar.CellState(c.Week(), dayIndex, label, c.highlighted)
}

func (c *Controller) Grid() calendar.WeekGrid {
	return c.deps.Calendar.BuildWeekGrid(c.referenceDate, c.highlighted)
}

// View grid for the requested presentation; the month view is a placeholder
func (c *Controller) View(view calendar.View) (calendar.WeekGrid, error) {
	return c.deps.Calendar.BuildView(view, c.referenceDate, c.highlighted)
}

// FilterResources case-insensitive name search; does not touch the flow state
func (c *Controller) FilterResources(term string) []domain.Resource {
	return c.deps.Catalog.Filter(catalog.Filter{Search: term})
}

// SelectResource choosing-resource -> choosing-slot
func (c *Controller) SelectResource(id string) error {
	if c.state != StateChoosingResource {
		return c.reject(TransitionSelectResource, fmt.Errorf("%w: select resource from %s", ErrWrongState, c.state))
	}

	resource, ok := c.deps.Catalog.Get(id)
	if !ok {
		return c.reject(TransitionSelectResource, fmt.Errorf("%w: %s", ErrUnknownResource, id))
	}

	c.draft.Resource = &resource
	c.draft.Slot = nil
	c.highlighted = nil
	c.state = StateChoosingSlot

	c.accept(TransitionSelectResource)
	return nil
}

// Highlight marks an available cell as selected without leaving choosing-slot
func (c *Controller) Highlight(dayIndex int, label types.TimeString) error {
	if c.state != StateChoosingSlot {
		return c.reject(TransitionHighlight, fmt.Errorf("%w: highlight from %s", ErrWrongState, c.state))
	}

	if state := c.CellState(dayIndex, label); !state.IsSelectable() {
		return c.reject(TransitionHighlight, fmt.Errorf("%w: day=%d time=%s state=%q",
			ErrCellNotSelectable, dayIndex, label.String(), state.Kind))
	}

	c.highlighted = &domain.Cell{DayIndex: dayIndex, Time: label}
	c.accept(TransitionHighlight)
	return nil
}

// SelectSlot choosing-slot -> confirming for an available or highlighted cell
func (c *Controller) SelectSlot(dayIndex int, label types.TimeString) error {
	if c.state != StateChoosingSlot {
		return c.reject(TransitionSelectSlot, fmt.Errorf("%w: select slot from %s", ErrWrongState, c.state))
	}

	if state := c.CellState(dayIndex, label); !state.IsSelectable() {
		return c.reject(TransitionSelectSlot, fmt.Errorf("%w: day=%d time=%s state=%q",
			ErrCellNotSelectable, dayIndex, label.String(), state.Kind))
	}

	day := c.Week()[dayIndex]
	y, m, d := day.Date()

	c.draft.Date = time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	c.draft.Slot = &domain.TimeSlot{Time: label, Available: true}
	c.highlighted = &domain.Cell{DayIndex: dayIndex, Time: label}
	c.state = StateConfirming

	c.accept(TransitionSelectSlot)
	return nil
}

// Back confirming -> choosing-slot keeps the resource and drops the chosen cell;
// choosing-slot -> choosing-resource clears the whole selection.
func (c *Controller) Back() error {
	switch c.state {
	case StateConfirming:
		c.draft.Slot = nil
		c.draft.Date = time.Time{}
		c.highlighted = nil
		c.state = StateChoosingSlot
	case StateChoosingSlot:
		c.draft = domain.BookingDraft{}
		c.highlighted = nil
		c.state = StateChoosingResource
	default:
		return c.reject(TransitionBack, fmt.Errorf("%w: back from %s", ErrWrongState, c.state))
	}

	c.accept(TransitionBack)
	return nil
}

// Confirm confirming -> choosing-resource.
// The trimmed name must be non-empty and the trimmed description at least
// domain.MinDescriptionLength characters long.
func (c *Controller) Confirm(userName, description string) (domain.Reservation, error) {
	if c.state != StateConfirming {
		return domain.Reservation{}, c.reject(TransitionConfirm, fmt.Errorf("%w: confirm from %s", ErrWrongState, c.state))
	}

	if err := ValidateConfirmation(userName, description); err != nil {
		return domain.Reservation{}, c.reject(TransitionConfirm, err)
	}

	draft := c.draft.Clone()
	draft.Description = description

	reservation, err := c.deps.Store.Add(draft, strings.TrimSpace(userName))
	if err != nil {
		c.deps.Logger.Error("Confirm: failed to store reservation: %v", err)
		c.record(TransitionConfirm, metrics.OutcomeFailed)
		return domain.Reservation{}, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	c.draft = domain.BookingDraft{}
	c.highlighted = nil
	c.state = StateChoosingResource
	c.accept(TransitionConfirm)

	c.deps.Navigator.ShowReservations()
	return reservation, nil
}

// ValidateConfirmation checks the confirmation form fields
func ValidateConfirmation(userName, description string) error {
	if strings.TrimSpace(userName) == "" {
		return fmt.Errorf("%w: user name is required", ErrConfirmGuard)
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(description)); n < domain.MinDescriptionLength {
		return fmt.Errorf("%w: description has %d characters, need at least %d",
			ErrConfirmGuard, n, domain.MinDescriptionLength)
	}
	return nil
}

func (c *Controller) accept(transition string) {
	c.deps.Logger.Debug("%s: accepted, state=%s", transition, c.state)
	c.record(transition, metrics.OutcomeAccepted)
}

func (c *Controller) reject(transition string, err error) error {
	c.deps.Logger.Warn("%s: rejected in state=%s: %v", transition, c.state, err)
	c.record(transition, metrics.OutcomeRejected)
	return err
}

func (c *Controller) record(transition, outcome string) {
	if c.deps.Metrics != nil {
		c.deps.Metrics.IncFlowTransition(transition, outcome)
	}
}
