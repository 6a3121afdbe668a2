package index

import "fmt"

// NotFittedError is returned when Rank is called on an index that has not
// been fitted. Callers must distinguish this from an empty result set: no
// index is a failure, no matches is a valid state.
type NotFittedError struct {
	Index string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s index is not fitted: call Fit before Rank", e.Index)
}
