package tui

// loadCompleted carries the result of a fetch cycle back to the model.
// A nil Err means the collection was refreshed.
type loadCompleted struct {
	Err error
}
