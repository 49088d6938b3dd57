package navigate

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
	r.HandleFunc("/sessions/{sessionId}/screen", NewHandler(m, logger.NewNop()).Handle).Methods(http.MethodPut)

	s, err := m.Start("")
	require.NoError(t, err)

	rec := apitest.Do(t, r, http.MethodPut, "/sessions/"+s.ID()+"/screen", map[string]string{"screen": "resources"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.SessionResponse
	apitest.Decode(t, rec, &resp)
	assert.Equal(t, "resources", resp.Screen)

	rec = apitest.Do(t, r, http.MethodPut, "/sessions/"+s.ID()+"/screen", map[string]string{"screen": "settings"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = apitest.Do(t, r, http.MethodPut, "/sessions/nope/screen", map[string]string{"screen": "home"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
