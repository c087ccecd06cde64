package systems

// SimClock is the single monotonic time source for a frame. It is advanced
// exactly once per tick; every consumer (wave field queries, drift paths,
// shader time uniform) reads the same value within that tick.
type SimClock struct {
	t float32
}

// Advance moves the clock forward by dt seconds.
func (c *SimClock) Advance(dt float32) {
	c.t += dt
}

// Now returns the elapsed time in seconds.
func (c *SimClock) Now() float32 {
	return c.t
}
