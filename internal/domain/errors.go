package domain

import "errors"

// ErrNotFound reports that no event or mountain has the requested id or name.
// Handlers answer it with 404.
var ErrNotFound = errors.New("not found")

// ErrValidation reports a creation form that breaks a rule, such as a
// malformed start date or an unknown pace tier. The text after the sentinel
// is meant for the person filling in the form. Handlers answer it with 422.
var ErrValidation = errors.New("validation error")
