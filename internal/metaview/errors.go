package metaview

import "fmt"

// QueryError reports a failed metadata view query. It is recovered per view:
// one view failing must not block requests against the others, so callers
// surface it inline and keep going.
type QueryError struct {
	View View
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("metadata view %s: %v", e.View, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
