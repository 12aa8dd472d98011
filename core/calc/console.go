package calc

// Console is the host logging surface: a sink that accepts a single string.
// Log carries informational lines and Error carries diagnostics, mirroring the
// browser's console.log and console.error. Implementations must be safe for
// concurrent use.
type Console interface {
	Log(msg string)
	Error(msg string)
}

type discardConsole struct{}

func (discardConsole) Log(string)   {}
func (discardConsole) Error(string) {}
