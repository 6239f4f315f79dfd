package rules

import "errors"

// ErrMissingComponent is returned by rule constructors when a required
// predicate/selector/action argument is nil.
var ErrMissingComponent = errors.New("rules: required rule component is nil")
