// Package apitest собирает зависимости для тестов HTTP обработчиков
package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/catalog"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// Now среда; неделя 2025-01-13 .. 2025-01-19
var Now = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return Now }

func Catalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Resource{
		{ID: "1", Name: "Quadra", Category: "Quadra Coberta", SportType: "Coletivo", ResourceType: "Quadra"},
		{ID: "2", Name: "Academia", Category: "Treino", SportType: "Individual", ResourceType: "Treino"},
		{ID: "3", Name: "Piscina", Category: "Área Aquática", SportType: "Individual", ResourceType: "Piscina"},
	})
	require.NoError(t, err)
	return c
}

func Calendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	c, err := calendar.New([]domain.ExistingBooking{
		{DayIndex: 1, Time: types.MustTimeString("08:30"), Occupant: "Paula Yuri"},
		{DayIndex: 2, Time: types.MustTimeString("10:00"), Occupant: "Luane Andrade"},
		{DayIndex: 4, Time: types.MustTimeString("13:00"), Occupant: "Alice Pereira"},
	})
	require.NoError(t, err)
	return c
}

// Manager менеджер сессий с каталогом и занятыми ячейками по умолчанию
func Manager(t *testing.T) *session.Manager {
	t.Helper()
	return session.NewManager(session.Deps{
		Catalog:  Catalog(t),
		Calendar: Calendar(t),
		Clock:    fixedClock{},
		Logger:   logger.NewNop(),
	}, session.Config{
		MaxSessions:     10,
		DefaultUserName: domain.DefaultUserName,
		Location:        time.UTC,
	})
}

// Do выполняет запрос; body сериализуется в JSON, string передается как есть
func Do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Decode разбирает JSON тело ответа
func Decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
