package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "07:00", want: "07:00"},
		{name: "surrounding spaces", input: " 18:15 ", want: "18:15"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "single digit hour", input: "8:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "no separator", input: "0830", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := MustTimeString("07:00")

	next, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "07:45", next.String())

	next, err = MustTimeString("23:30").AddMinutes(30)
	require.ErrorIs(t, err, ErrTimeOverflow)
	assert.True(t, next.IsZero())

	_, err = TimeString{}.AddMinutes(10)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	a := MustTimeString("08:30")
	b := MustTimeString("10:00")

	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsAfter(a))
	assert.Equal(t, 510, a.Minutes())
}

func TestTimeString_Text(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.UnmarshalText([]byte("13:45")))
	assert.Equal(t, "13:45", ts.String())

	out, err := ts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "13:45", string(out))

	assert.Error(t, ts.UnmarshalText([]byte("1:45")))
}
