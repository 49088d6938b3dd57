package confirm_booking

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/apitest"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

func TestHandler(t *testing.T) {
	m := apitest.Manager(t)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/confirm", NewHandler(m, logger.NewNop()).Handle).Methods(http.MethodPost)

	s, err := m.Start("3")
	require.NoError(t, err)
	path := "/sessions/" + s.ID() + "/confirm"

	rec := apitest.Do(t, r, http.MethodPost, path, ConfirmBookingRequest{UserName: "Ana", Description: "Natação livre"})
	assert.Equal(t, http.StatusConflict, rec.Code, "slot not chosen yet")

	_, err = s.SelectSlot(1, types.MustTimeString("09:15"))
	require.NoError(t, err)

	tests := []struct {
		name string
		req  ConfirmBookingRequest
	}{
		{name: "short description", req: ConfirmBookingRequest{UserName: "Ana", Description: "abcd"}},
		{name: "blank name", req: ConfirmBookingRequest{UserName: "  ", Description: "Natação livre"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := apitest.Do(t, r, http.MethodPost, path, tt.req)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, "confirming", string(s.Snapshot().State))
		})
	}

	rec = apitest.Do(t, r, http.MethodPost, path, ConfirmBookingRequest{UserName: "Ana", Description: "Natação livre"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp ConfirmBookingResponse
	apitest.Decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Reservation.ID)
	assert.Equal(t, "confirmed", resp.Reservation.Status)
	assert.Equal(t, "Piscina", resp.Reservation.Resource)
	assert.Equal(t, "Área Aquática", resp.Reservation.Category)
	assert.Equal(t, "2025-01-14", resp.Reservation.Date)
	assert.Equal(t, "09:15", resp.Reservation.Time)
	assert.Equal(t, "Ana", resp.Reservation.UserName)
	assert.Equal(t, "choosing-resource", resp.Session.State)
	assert.Equal(t, "my-reservations", resp.Session.Screen)
	assert.Equal(t, 1, resp.Session.ConfirmedCount)
	assert.Nil(t, resp.Session.Draft.Resource)

	rec = apitest.Do(t, r, http.MethodPost, path, `{"userName":"Ana","extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
