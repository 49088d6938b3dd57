package select_resource

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
	r.HandleFunc("/sessions/{sessionId}/resource", NewHandler(m, logger.NewNop()).Handle).Methods(http.MethodPost)

	s, err := m.Start("")
	require.NoError(t, err)
	path := "/sessions/" + s.ID() + "/resource"

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{name: "missing id", body: map[string]string{}, code: http.StatusBadRequest},
		{name: "malformed body", body: `{`, code: http.StatusBadRequest},
		{name: "unknown resource", body: map[string]string{"resourceId": "99"}, code: http.StatusNotFound},
		{name: "selected", body: map[string]string{"resourceId": "2"}, code: http.StatusOK},
		{name: "already selected", body: map[string]string{"resourceId": "3"}, code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := apitest.Do(t, r, http.MethodPost, path, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	resp := handlers.FromSnapshot(s.Snapshot())
	assert.Equal(t, "choosing-slot", resp.State)
	require.NotNil(t, resp.Draft.Resource)
	assert.Equal(t, "Academia", resp.Draft.Resource.Name, "rejected selection keeps the first choice")
	assert.Equal(t, "booking", resp.Screen)

	rec := apitest.Do(t, r, http.MethodPost, "/sessions/nope/resource", map[string]string{"resourceId": "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
