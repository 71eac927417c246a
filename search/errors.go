package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvableStrategy reports a predicate signature with no entry in the
// strategy table. The table enumerates every reachable signature, so hitting
// this is a defect in the enumeration, never a caller error, and it must not
// be degraded to an unfiltered fetch.
var ErrUnresolvableStrategy = errors.New("no strategy registered for predicate signature")

// InvalidCriteriaError reports a caller-correctable problem with the supplied
// search criteria, naming the offending fields.
type InvalidCriteriaError struct {
	Reason string
	Fields []string
}

func (e *InvalidCriteriaError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}
