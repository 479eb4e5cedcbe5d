package types

import (
	"fmt"
	"time"
)

// ParseQuarterTime validates an HH:MM time of day quantized to quarter-hour
// boundaries and returns it as minutes since midnight.
func ParseQuarterTime(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: must be HH:MM", s)
	}
	if t.Minute()%15 != 0 {
		return 0, fmt.Errorf("invalid time %q: minutes must be one of 00, 15, 30, 45", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Window is one charge or discharge period bounded by quarter-hour times.
type Window struct {
	Start string
	End   string
}

// Validate checks formatting and ordering. The all-zero window (00:00 to
// 00:00) denotes an inactive period and is always valid.
func (w Window) Validate() error {
	start, err := ParseQuarterTime(w.Start)
	if err != nil {
		return err
	}
	end, err := ParseQuarterTime(w.End)
	if err != nil {
		return err
	}
	if start == 0 && end == 0 {
		return nil
	}
	if start >= end {
		return fmt.Errorf("window start %s must be before end %s", w.Start, w.End)
	}
	return nil
}

// ValidateCutoffSOC checks a state-of-charge threshold percentage.
func ValidateCutoffSOC(soc float64) error {
	if soc < 0 || soc > 100 {
		return fmt.Errorf("cutoff SOC %g out of range: must be between 0 and 100", soc)
	}
	return nil
}

// ValidateSchedule validates both windows and the cutoff threshold of a
// charge or discharge update before anything is sent upstream.
func ValidateSchedule(p1, p2 Window, cutoffSOC float64) error {
	if err := p1.Validate(); err != nil {
		return fmt.Errorf("period 1: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return fmt.Errorf("period 2: %w", err)
	}
	return ValidateCutoffSOC(cutoffSOC)
}

// ValidateQueryDate checks a YYYY-MM-DD date parameter.
func ValidateQueryDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return nil
}
