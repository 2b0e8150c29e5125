package lastfm

import (
	"errors"
	"testing"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input   string
		want    Period
		wantErr bool
	}{
		{input: "overall", want: PeriodOverall},
		{input: "7day", want: Period7Day},
		{input: "1month", want: Period1Month},
		{input: "3month", want: Period3Month},
		{input: "6month", want: Period6Month},
		{input: "12month", want: Period12Month},
		{input: " 7DAY ", want: Period7Day},
		{input: "week", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPeriod) {
					t.Errorf("ParsePeriod(%q) error = %v, want ErrInvalidPeriod", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrackPlays(t *testing.T) {
	tests := []struct {
		playcount string
		want      int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"", 0},
		{"many", 0},
	}

	for _, tt := range tests {
		if got := (Track{Playcount: tt.playcount}).Plays(); got != tt.want {
			t.Errorf("Plays(%q) = %d, want %d", tt.playcount, got, tt.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := error(&Error{Code: ErrCodeInvalidAPIKey, Message: "bad key"})
	if !errors.Is(err, &Error{Code: ErrCodeInvalidAPIKey}) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(err, &Error{Code: ErrCodeServiceOffline}) {
		t.Error("expected errors.Is not to match a different code")
	}
}

func TestErrorTemporary(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{ErrCodeServiceOffline, true},
		{ErrCodeTempUnavailable, true},
		{ErrCodeInvalidAPIKey, false},
		{ErrCodeRateLimitExceeded, false},
	}
	for _, tt := range tests {
		if got := (&Error{Code: tt.code}).Temporary(); got != tt.want {
			t.Errorf("Temporary() for code %d = %v, want %v", tt.code, got, tt.want)
		}
	}
}
