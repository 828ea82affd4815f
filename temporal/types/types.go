// Package types provides the calendar value types stored and compared by the
// graph engine: Date, Time, and DateTime.
//
// Values are plain field structs. Constructors never validate, so arithmetic
// may hold transiently out-of-range fields; call Validate before trusting a
// value that came from outside the engine.
package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate wraps calendar-shape violations, such as day 31 in a
	// 30-day month.
	ErrInvalidDate = errors.New("invalid date")

	// ErrParse wraps errors returned when textual temporal input is
	// malformed.
	ErrParse = errors.New("parse")

	// ErrMissingField wraps errors returned when a map-based constructor
	// lacks a required key.
	ErrMissingField = errors.New("missing field")

	// ErrType wraps errors returned when a value has an unexpected type.
	ErrType = errors.New("type")
)

// Temporal defines the interface for all calendar value types.
type Temporal interface {
	fmt.Stringer

	// GoTime returns the value as a time.Time in UTC. Time values use the
	// date 0000-01-01.
	GoTime() time.Time
}
