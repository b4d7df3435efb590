package engine

// System is an interface that all systems must implement
type System interface {
	// Name identifies the system in logs
	Name() string

	// Priority orders systems within a frame, lower values run first
	Priority() int

	// Update runs one frame; since is the tick of the system's previous run,
	// so store writes stamped after it are changes the system has not seen
	Update(since Tick)
}

// systemSlot pairs a system with its change-detection watermark
type systemSlot struct {
	system  System
	lastRun Tick
}
