package domain

import "errors"

var ErrUnknownAction = errors.New("unknown AI action")
var ErrMissingField = errors.New("missing required field")
var ErrUpstream = errors.New("AI upstream request failed")
