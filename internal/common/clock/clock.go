package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/RubenJ01/MiloBot/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock.
// Values returned by Now carry a monotonic reading, so elapsed-time math
// survives wall-clock adjustments.
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
