package engine

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidSpeed is returned for any speed outside slow, medium and fast
var ErrInvalidSpeed = errors.New("invalid speed")

// Speed is one of the enumerated tick intervals.
type Speed int

const (
	SpeedSlow Speed = iota + 1
	SpeedMedium
	SpeedFast
)

var speedIntervals = map[Speed]time.Duration{
	SpeedSlow:   1000 * time.Millisecond,
	SpeedMedium: 500 * time.Millisecond,
	SpeedFast:   100 * time.Millisecond,
}

var speedNames = map[Speed]string{
	SpeedSlow:   "slow",
	SpeedMedium: "medium",
	SpeedFast:   "fast",
}

// Valid reports whether s is one of the enumerated speeds
func (s Speed) Valid() bool {
	_, ok := speedIntervals[s]
	return ok
}

// Interval returns the tick interval for s, or 0 if s is not valid
func (s Speed) Interval() time.Duration {
	return speedIntervals[s]
}

func (s Speed) String() string {
	if name, ok := speedNames[s]; ok {
		return name
	}
	return "invalid"
}

// ParseSpeed maps "slow", "medium" or "fast" to a Speed
func ParseSpeed(name string) (Speed, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range speedNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidSpeed, "[ParseSpeed] name: %q", name)
}

// SpeedFromInterval maps an interval of 1000ms, 500ms or 100ms to a Speed
func SpeedFromInterval(d time.Duration) (Speed, error) {
	for s, interval := range speedIntervals {
		if interval == d {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidSpeed, "[SpeedFromInterval] interval: %v", d)
}
