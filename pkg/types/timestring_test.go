package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", in: "14:00", want: "14:00"},
		{name: "single digit hour", in: "9:30", want: "09:30"},
		{name: "with seconds from db", in: "10:00:00", want: "10:00"},
		{name: "out of range", in: "25:00", wantErr: true},
		{name: "garbage", in: "noon", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	a := MustTimeString("10:00")
	b := MustTimeString("14:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.Equal(t, 600, a.Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("17:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), got)

	_, err = MustTimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("15:00"))
	assert.Equal(t, TimeString("15:00"), ts)

	require.NoError(t, ts.Scan([]byte("16:00:00")))
	assert.Equal(t, TimeString("16:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:00"), ts)

	assert.Error(t, ts.Scan(42))
}
