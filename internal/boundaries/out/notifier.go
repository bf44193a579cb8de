package out

// Notifier displays transient messages to the user. Calls are fire-and-forget.
type Notifier interface {
	Error(msg string)
	Success(msg string)
}
