package reactor

import "github.com/zoobzio/capitan"

// Structured fields attached to this package's signals and to the
// driver package's signals.
var (
	// KeyError is the error message carried by a captured error signal.
	KeyError = capitan.NewStringKey("error")

	// KeySequence is the commit sequence a driver signal refers to.
	KeySequence = capitan.NewIntKey("sequence")
)
