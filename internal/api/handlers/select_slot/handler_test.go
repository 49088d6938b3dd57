package select_slot

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/apitest"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
)

func TestHandler(t *testing.T) {
	m := apitest.Manager(t)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/slot", NewHandler(m, logger.NewNop()).Handle).Methods(http.MethodPost)

	s, err := m.Start("1")
	require.NoError(t, err)
	path := "/sessions/" + s.ID() + "/slot"

	rec := apitest.Do(t, r, http.MethodPost, path, map[string]interface{}{"dayIndex": 1, "time": "08:30"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = apitest.Do(t, r, http.MethodPost, path, map[string]interface{}{"dayIndex": 1, "time": "07:45"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.SessionResponse
	apitest.Decode(t, rec, &resp)
	assert.Equal(t, "confirming", resp.State)
	require.NotNil(t, resp.Draft.Slot)
	assert.Equal(t, "07:45", resp.Draft.Slot.Time)
	assert.True(t, resp.Draft.Slot.Available)
	require.NotNil(t, resp.Draft.Date)
	assert.Equal(t, "2025-01-14", *resp.Draft.Date)

	rec = apitest.Do(t, r, http.MethodPost, path, map[string]interface{}{"dayIndex": 0, "time": "07:00"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = apitest.Do(t, r, http.MethodPost, "/sessions/nope/slot", map[string]interface{}{"dayIndex": 0, "time": "07:00"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
