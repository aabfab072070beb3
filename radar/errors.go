package radar

import "errors"

// Error taxonomy surfaced to callers. Parser-level errors never reach
// this layer — they are swallowed into Stats() counters.
var (
	ErrNotReady        = errors.New("radar: not ready")
	ErrInvalidArgument = errors.New("radar: invalid argument")
	ErrCmdTimeout      = errors.New("radar: command timeout")
	ErrUnconfigured    = errors.New("radar: unconfigured")
	ErrIO              = errors.New("radar: io error")
	ErrParse           = errors.New("radar: parse error")
)
