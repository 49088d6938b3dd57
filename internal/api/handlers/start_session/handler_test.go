package start_session

import (
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/apitest"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
)

func newRouter(m SessionManager) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/sessions", NewHandler(m, logger.NewNop()).Handle).Methods(http.MethodPost)
	return r
}

func TestHandler(t *testing.T) {
	r := newRouter(apitest.Manager(t))

	t.Run("without body", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodPost, "/sessions", nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp handlers.SessionResponse
		apitest.Decode(t, rec, &resp)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "choosing-resource", resp.State)
		assert.Equal(t, "home", resp.Screen)
		assert.Equal(t, "2025-01-15", resp.ReferenceDate)
		assert.Equal(t, "João Silva", resp.DefaultUserName)
	})

	t.Run("with preselected resource", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodPost, "/sessions", map[string]string{"resourceId": "3"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp handlers.SessionResponse
		apitest.Decode(t, rec, &resp)
		assert.Equal(t, "choosing-slot", resp.State)
		assert.Equal(t, "booking", resp.Screen)
		require.NotNil(t, resp.Draft.Resource)
		assert.Equal(t, "Piscina", resp.Draft.Resource.Name)
	})

	t.Run("with unknown resource", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodPost, "/sessions", map[string]string{"resourceId": "99"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp handlers.SessionResponse
		apitest.Decode(t, rec, &resp)
		assert.Equal(t, "choosing-resource", resp.State)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := apitest.Do(t, r, http.MethodPost, "/sessions", `{"resourceId":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_SessionLimit(t *testing.T) {
	m := session.NewManager(session.Deps{
		Catalog:  apitest.Catalog(t),
		Calendar: apitest.Calendar(t),
		Logger:   logger.NewNop(),
	}, session.Config{MaxSessions: 1, Location: time.UTC})
	r := newRouter(m)

	require.Equal(t, http.StatusCreated, apitest.Do(t, r, http.MethodPost, "/sessions", nil).Code)

	rec := apitest.Do(t, r, http.MethodPost, "/sessions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), msgTooManySessions)
}
