package ecs

// commandQueue holds the pending inbound commands of one system. Each command
// name holds at most one payload; a newer send replaces an unconsumed one.
type commandQueue struct {
	pending map[string]any
}

func newCommandQueue() *commandQueue {
	return &commandQueue{pending: make(map[string]any)}
}

func (q *commandQueue) put(command string, payload any) {
	q.pending[command] = payload
}

func (q *commandQueue) peek(command string) (any, bool) {
	payload, ok := q.pending[command]
	return payload, ok
}

// take removes and returns the pending payload for command.
func (q *commandQueue) take(command string) (any, bool) {
	payload, ok := q.pending[command]
	if ok {
		delete(q.pending, command)
	}
	return payload, ok
}

func (q *commandQueue) len() int {
	return len(q.pending)
}

// Command is a typed key for a named command.
type Command[T any] struct {
	name string
}

// NewCommand returns the typed key for the command name.
func NewCommand[T any](name string) Command[T] {
	return Command[T]{name: name}
}

// Name returns the command name.
func (c Command[T]) Name() string {
	return c.name
}

// Send queues payload on the target system.
func (c Command[T]) Send(frame *UpdateFrame, target string, payload T) error {
	return frame.SendCommand(target, c.name, payload)
}

// Handle delivers the pending payload to fn if there is one and it is a T.
// A payload of another type is left pending.
func (c Command[T]) Handle(frame *UpdateFrame, fn func(T)) bool {
	queue := frame.system.commands
	payload, ok := queue.peek(c.name)
	if !ok {
		return false
	}
	typed, ok := payload.(T)
	if !ok {
		return false
	}
	queue.take(c.name)
	fn(typed)
	return true
}
