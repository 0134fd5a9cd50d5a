package gearing

import "errors"

// Sentinel errors returned by the gearing package.
var (
	ErrInvalidDrivetrain   = errors.New("invalid drivetrain")
	ErrNonFiniteRatio      = errors.New("gear produced a non-finite or non-positive gain ratio")
	ErrSearchSpaceTooLarge = errors.New("shift search space too large")
)
