package lovedays

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultCountUpDuration is how long the day number takes to count up.
const DefaultCountUpDuration = 2 * time.Second

// CountUp eases a displayed number from 0 to a target. The caller owns the
// clock and steps it with Next.
type CountUp struct {
	tween  *gween.Tween
	target int
	value  int
	done   bool
}

// NewCountUp returns an animation reaching target after d. A zero target
// or duration is done from the start.
func NewCountUp(target int, d time.Duration) *CountUp {
	if d <= 0 || target <= 0 {
		return &CountUp{target: target, value: target, done: true}
	}
	return &CountUp{
		tween:  gween.New(0, float32(target), float32(d.Seconds()), ease.OutQuart),
		target: target,
	}
}

// Next advances by dt and returns the number to display.
func (c *CountUp) Next(dt time.Duration) (value int, done bool) {
	if c.done {
		return c.value, true
	}
	v, finished := c.tween.Update(float32(dt.Seconds()))
	c.value = min(int(math.Floor(float64(v))), c.target)
	if finished {
		c.value, c.done = c.target, true
	}
	return c.value, c.done
}

// Value returns the number currently displayed.
func (c *CountUp) Value() int { return c.value }

// Done reports whether the target has been reached.
func (c *CountUp) Done() bool { return c.done }
