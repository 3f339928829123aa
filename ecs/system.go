package ecs

// System is a named unit of behavior run by the Scheduler. Returning an error
// aborts the rest of the current update.
type System interface {
	Execute(frame *UpdateFrame) error
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *UpdateFrame) error

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *UpdateFrame) error {
	return f(frame)
}

// systemEntry is the runtime state the Scheduler keeps for a system.
type systemEntry struct {
	name     string
	system   System
	frozen   bool
	removed  bool
	commands *commandQueue
	schedule *schedule
	stats    *systemStatsInternal
}

func newSystemEntry(name string, system System) *systemEntry {
	return &systemEntry{
		name:     name,
		system:   system,
		commands: newCommandQueue(),
		stats:    newSystemStatsInternal(name),
	}
}
