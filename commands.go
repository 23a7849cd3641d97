package strip

// Command is a side effect a primitive asks the [Application] to carry out
// after handling an input event. Handlers return nil if nothing is due.
type Command any

// BatchCommand carries several commands, run in order.
type BatchCommand []Command

// Batch combines cmds into one command. Nil commands are dropped and nested
// batches are flattened, so a single remaining command is returned as is.
func Batch(cmds ...Command) Command {
	var batch BatchCommand
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case nil:
		case BatchCommand:
			batch = append(batch, c...)
		default:
			batch = append(batch, c)
		}
	}
	switch len(batch) {
	case 0:
		return nil
	case 1:
		return batch[0]
	}
	return batch
}

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen once the event is handled.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}
