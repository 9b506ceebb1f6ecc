package vdi

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. A fatal pipeline error always
// unwraps to exactly one of these.
var (
	ErrInvalidGeometry   = errors.New("invalid geometry")
	ErrInvalidLoadFactor = errors.New("invalid load factor")
	ErrInvalidLoadCase   = errors.New("invalid load case")
)

// Stage names used in error diagnostics.
const (
	StageGeometry    = "geometry"
	StageResilience  = "resilience"
	StageLoadFactor  = "load-factor"
	StagePreload     = "preload"
	StageWorkingLoad = "working-load"
	StageStress      = "stress"
)

// JointError is a fatal pipeline failure. It names the offending stage and
// input field so callers can point at the bad number instead of reporting
// "calculation failed".
type JointError struct {
	Kind   error  // one of the package sentinels
	Stage  string // pipeline stage that rejected the input
	Field  string // offending JointSpec field
	Reason string
}

func (e *JointError) Error() string {
	return fmt.Sprintf("%s: stage %s, field %s: %s", e.Kind, e.Stage, e.Field, e.Reason)
}

func (e *JointError) Unwrap() error { return e.Kind }

func errGeometry(stage, field, format string, args ...any) error {
	return &JointError{Kind: ErrInvalidGeometry, Stage: stage, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func errLoadFactor(stage, field, format string, args ...any) error {
	return &JointError{Kind: ErrInvalidLoadFactor, Stage: stage, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func errLoadCase(stage, field, format string, args ...any) error {
	return &JointError{Kind: ErrInvalidLoadCase, Stage: stage, Field: field, Reason: fmt.Sprintf(format, args...)}
}
