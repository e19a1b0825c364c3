package planner

import "errors"

// Domain failures surfaced by the swap engine. Handlers classify these with
// errors.Is rather than by matching message text.
var (
	ErrDayNotFound      = errors.New("day not found in meal plan")
	ErrInvalidMealIndex = errors.New("meal index out of range")
	ErrNoReplacement    = errors.New("no suitable replacement meal found")
)
