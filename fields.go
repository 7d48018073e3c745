package bind

import "github.com/zoobzio/capitan"

// Field keys for binding events.
var (
	// KeyPath is the change key a Binding was created with.
	KeyPath = capitan.NewStringKey("path")

	// KeySegment is the path segment that could not be found.
	KeySegment = capitan.NewStringKey("segment")

	// KeyChangeKey is the change key carried by the notification.
	KeyChangeKey = capitan.NewStringKey("change_key")

	// KeyDepth is the propagation depth at which the event happened.
	KeyDepth = capitan.NewIntKey("depth")

	// KeyValue is a dump of the value involved.
	KeyValue = capitan.NewStringKey("value")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")
)
