package core

// Logger is the application-wide logging contract. Implementations live in
// services/logger. Error/Fatal accept extra args (errors, context maps, the
// acting user) that implementations may forward to an error tracker.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
