package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/streaker/internal/streak"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestParseDateInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	newYork := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name    string
		input   string
		loc     *time.Location
		want    streak.Day
		wantErr bool
	}{
		{
			name:  "plain date ignores location",
			input: "2024-01-15",
			loc:   tokyo,
			want:  streak.NewDay(2024, time.January, 15),
		},
		{
			name:  "timestamp moved forward into next day",
			input: "2024-01-15T20:00:00Z",
			loc:   tokyo,
			want:  streak.NewDay(2024, time.January, 16),
		},
		{
			name:  "timestamp moved back into previous day",
			input: "2024-01-15T02:00:00Z",
			loc:   newYork,
			want:  streak.NewDay(2024, time.January, 14),
		},
		{
			name:  "timestamp with fractional seconds",
			input: "2024-01-15T10:00:00.123Z",
			loc:   time.UTC,
			want:  streak.NewDay(2024, time.January, 15),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			loc:     time.UTC,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateInLocation(tt.input, tt.loc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateInLocation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, streak.ErrInvalidDay) {
					t.Errorf("error = %v, want ErrInvalidDay", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDateInLocation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
