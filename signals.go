package bind

import "github.com/zoobzio/capitan"

// Binding lifecycle signals.
var (
	// BindingCreated is emitted when a Binding is registered on both of its ends.
	BindingCreated = capitan.NewSignal(
		"bind.binding.created",
		"Binding registered",
	)

	// BindingBroken is emitted the first time a Binding is broken.
	BindingBroken = capitan.NewSignal(
		"bind.binding.broken",
		"Binding removed from both ends",
	)
)

// Propagation warnings. These never interrupt the notification pass.
var (
	// TraversalFailed is emitted when a default transfer cannot resolve its change key.
	TraversalFailed = capitan.NewSignal(
		"bind.path.traversal.failed",
		"Bound path could not be traversed",
	)

	// ContentRejected is emitted when list or select content cannot be built from a value.
	ContentRejected = capitan.NewSignal(
		"bind.content.rejected",
		"Bound value cannot be rendered as child items",
	)
)
