package events

import "errors"

// ErrClosed is returned by a Bus after Close
var ErrClosed = errors.New("event bus is closed")
