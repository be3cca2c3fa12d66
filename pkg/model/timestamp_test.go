package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "browser ISO string",
			input: "2025-03-14T00:00:00.000Z",
			want:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "offset converted to UTC",
			input: "2025-03-14T10:00:00+10:00",
			want:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "no zone",
			input: "2025-03-14T09:30:00",
			want:  time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "calendar date",
			input: " 2025-12-01 ",
			want:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimestamp)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}
