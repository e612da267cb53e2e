package input

import (
	"math"
	"time"
)

const (
	defaultDoubleClickInterval = 300 * time.Millisecond
	defaultDoubleClickDistance = 5.0
)

// DoubleClickDetector recognises a second press close to the first in time and
// space. Hosts whose windowing layer has no native double-click event use it to
// emit DoubleClick.
type DoubleClickDetector struct {
	Interval time.Duration
	Distance float64

	last         time.Time
	lastX, lastY float64
	armed        bool
}

// NewDoubleClickDetector creates a detector. Non-positive arguments use 300ms and 5px.
func NewDoubleClickDetector(interval time.Duration, distance float64) *DoubleClickDetector {
	if interval <= 0 {
		interval = defaultDoubleClickInterval
	}
	if distance <= 0 {
		distance = defaultDoubleClickDistance
	}
	return &DoubleClickDetector{Interval: interval, Distance: distance}
}

// Press records a primary press and reports whether it completes a double click.
// A completed double click disarms the detector so a third press starts over.
func (d *DoubleClickDetector) Press(at time.Time, x, y float64) bool {
	if d.armed &&
		at.Sub(d.last) <= d.Interval &&
		math.Abs(x-d.lastX) < d.Distance &&
		math.Abs(y-d.lastY) < d.Distance {
		d.armed = false
		return true
	}
	d.last, d.lastX, d.lastY = at, x, y
	d.armed = true
	return false
}
