package config

import "errors"

// ErrInvalidConfig is returned by [StructuredConfig.validate] when the merged
// configuration breaks one of its rules. The wrapped message lists every
// offending key.
var ErrInvalidConfig = errors.New("invalid configuration")
