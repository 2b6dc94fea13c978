package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_MarshalCanonicalLayout(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T09:30:00.000+0000"`, string(raw))
}

func TestTime_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "canonical",
			in:   `"2024-01-15T09:30:00.000+0000"`,
			want: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "no milliseconds",
			in:   `"2024-01-15T09:30:00+0000"`,
			want: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "zulu",
			in:   `"2024-01-15T09:30:00.000Z"`,
			want: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "offset with colon",
			in:   `"2024-01-15T09:30:00+03:00"`,
			want: time.Date(2024, 1, 15, 9, 30, 0, 0, time.FixedZone("", 3*60*60)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Time
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, ts.Equal(tt.want), "got %v want %v", ts.Time, tt.want)
		})
	}
}

func TestTime_UnmarshalNullAndEmpty(t *testing.T) {
	var ts Time
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTime_UnmarshalRejectsGarbage(t *testing.T) {
	var ts Time
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &ts))
}

func TestTime_DateStamp(t *testing.T) {
	ts := NewTime(time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "20240307", ts.DateStamp())
}
