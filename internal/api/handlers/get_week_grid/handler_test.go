package get_week_grid

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/apitest"
	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
)

func TestHandler(t *testing.T) {
	m := apitest.Manager(t)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/week", NewHandler(m, logger.NewNop()).Handle).Methods(http.MethodGet)

	s, err := m.Start("1")
	require.NoError(t, err)

	t.Run("week", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodGet, "/sessions/"+s.ID()+"/week", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.WeekGridResponse
		apitest.Decode(t, rec, &resp)
		assert.Equal(t, "week", resp.View)
		require.Len(t, resp.Days, 7)
		assert.Equal(t, "2025-01-13", resp.Days[0])
		assert.Equal(t, "2025-01-19", resp.Days[6])
		require.Len(t, resp.Rows, 17)

		booked := resp.Rows[2].Cells[1]
		assert.Equal(t, "booked", booked.State)
		assert.Equal(t, "Paula Yuri", booked.Occupant)
		assert.Equal(t, "Reservado por Paula Yuri", booked.Title)
		assert.Equal(t, "weekend", resp.Rows[0].Cells[6].State)
		assert.Equal(t, "available", resp.Rows[0].Cells[0].State)
	})

	t.Run("month placeholder", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodGet, "/sessions/"+s.ID()+"/week?view=month", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PlaceholderResponse
		apitest.Decode(t, rec, &resp)
		assert.Equal(t, "month", resp.View)
		assert.Equal(t, calendar.MonthPlaceholderMessage, resp.Message)
	})

	t.Run("unknown view", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodGet, "/sessions/"+s.ID()+"/week?view=year", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodGet, "/sessions/nope/week", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
