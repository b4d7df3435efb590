package engine

// Tick is a world-wide change generation
// Every store write stamps the component with the world's current tick;
// systems compare stamps against the tick of their previous run
type Tick uint64

// TickSource supplies the tick stamped on store writes
type TickSource interface {
	CurrentTick() Tick
}

// IsNewerThan reports whether t was stamped after since
func (t Tick) IsNewerThan(since Tick) bool {
	return t > since
}
