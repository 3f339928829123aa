package ecs

import "iter"

// UpdateFrame is handed to a system for the duration of one invocation. It
// carries the update's timing and the capabilities a system has over the
// universe: querying and mutating storage, messaging other systems, and
// freezing systems.
type UpdateFrame struct {
	// Time is the number of seconds since the universe was created or last reset.
	Time float64
	// DeltaTime is the number of seconds since the previous update.
	DeltaTime float64
	Storage   *Storage

	scheduler *Scheduler
	system    *systemEntry
}

func newUpdateFrame(scheduler *Scheduler, system *systemEntry, t, dt float64) *UpdateFrame {
	return &UpdateFrame{
		Time:      t,
		DeltaTime: dt,
		Storage:   scheduler.storage,
		scheduler: scheduler,
		system:    system,
	}
}

// SystemName returns the name of the executing system.
func (f *UpdateFrame) SystemName() string {
	return f.system.name
}

// View is Storage.View.
func (f *UpdateFrame) View(names ...string) iter.Seq[Record] {
	return f.Storage.View(names...)
}

// SendCommand queues payload under command on the target system, replacing any
// unconsumed payload for the same command. Targets later in the update order
// see it during this update, earlier ones (and the sender itself) on the next.
func (f *UpdateFrame) SendCommand(target, command string, payload any) error {
	entry, err := f.scheduler.lookup(target)
	if err != nil {
		return err
	}
	entry.commands.put(command, payload)
	return nil
}

// HandleCommand delivers the pending payload for command to handler, if any,
// and reports whether it did. The payload is removed before handler runs, so
// each payload is delivered at most once.
func (f *UpdateFrame) HandleCommand(command string, handler func(payload any)) bool {
	payload, ok := f.system.commands.take(command)
	if !ok {
		return false
	}
	handler(payload)
	return true
}

// Freeze stops the executing system from running on subsequent updates.
// The current invocation runs to completion.
func (f *UpdateFrame) Freeze() {
	f.scheduler.setFrozen(f.system, true)
}

// Unfreeze clears the executing system's frozen flag.
func (f *UpdateFrame) Unfreeze() {
	f.scheduler.setFrozen(f.system, false)
}

// FreezeSystem freezes the named system.
func (f *UpdateFrame) FreezeSystem(name string) error {
	return f.scheduler.FreezeSystem(name)
}

// UnfreezeSystem unfreezes the named system.
func (f *UpdateFrame) UnfreezeSystem(name string) error {
	return f.scheduler.UnfreezeSystem(name)
}
