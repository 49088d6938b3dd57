package set_reference_date

import (
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/apitest"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

func TestHandler(t *testing.T) {
	m := apitest.Manager(t)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/date", NewHandler(m, time.UTC, logger.NewNop()).Handle).Methods(http.MethodPut)

	s, err := m.Start("1")
	require.NoError(t, err)

	rec := apitest.Do(t, r, http.MethodPut, "/sessions/"+s.ID()+"/date", map[string]string{"date": "2025-02-02"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.SessionResponse
	apitest.Decode(t, rec, &resp)
	assert.Equal(t, "2025-02-02", resp.ReferenceDate)

	rec = apitest.Do(t, r, http.MethodPut, "/sessions/"+s.ID()+"/date", map[string]string{"date": "02/02/2025"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err = s.SelectSlot(0, types.MustTimeString("07:00"))
	require.NoError(t, err)

	rec = apitest.Do(t, r, http.MethodPut, "/sessions/"+s.ID()+"/date", map[string]string{"date": "2025-02-10"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = apitest.Do(t, r, http.MethodPut, "/sessions/nope/date", map[string]string{"date": "2025-02-10"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
