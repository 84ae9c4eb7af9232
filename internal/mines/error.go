package mines

import "fmt"

// InvalidParamsError is returned when a game cannot be built from the given
// [GameParams].
type InvalidParamsError struct {
	Params GameParams
	Reason string
}

// [InvalidParamsError] implements [error]
func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("invalid game params %s: %s", e.Params.Seed(), e.Reason)
}
