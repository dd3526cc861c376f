package consoles

type Console interface {
	Printf(format string, a ...any)

	// Prepare formats a message the same way Printf would print it, without
	// writing it. Used to decorate output of external commands.
	Prepare(format string, a ...any) string

	PushPrefix(format string, a ...any)
	PopPrefix()
}
