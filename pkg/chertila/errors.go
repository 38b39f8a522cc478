package chertila

import (
	"errors"
	"fmt"
)

// UsageMessage is shown to users whenever a command does not parse.
const UsageMessage = `Неправильный формат сообщения. Пример: чертила "Зависимость скорости" {V(м/c),T(с)} [1,2 2,3 3,4] сетка погрешность(1,1)`

// DegenerateMessage is shown to users when no line can be fitted.
const DegenerateMessage = "Невозможно построить прямую: все точки имеют одинаковую координату X."

// RangeMessage is shown to users when coordinates are too large or too
// close together to compute a line.
const RangeMessage = "Невозможно построить прямую: значения координат слишком велики или слишком близки."

// ErrParse indicates the command text does not match the grammar.
var ErrParse = errors.New("invalid plot command")

// ErrDegenerateFit indicates the points do not determine a line.
var ErrDegenerateFit = errors.New("degenerate fit")

// ParseError represents a command that could not be parsed.
type ParseError struct {
	// Reason is the parser's diagnosis. It is meant for logs, not users.
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse so callers can match any parse failure.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// UserMessage returns the fixed usage text.
func (e *ParseError) UserMessage() string {
	return UsageMessage
}

// DegenerateFitError represents a syntactically valid request whose slope
// is undefined.
type DegenerateFitError struct {
	Points int
	Err    error
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf("degenerate fit over %d points: %v", e.Points, e.Err)
}

func (e *DegenerateFitError) Unwrap() error {
	return e.Err
}

// Is reports ErrDegenerateFit.
func (e *DegenerateFitError) Is(target error) bool {
	return target == ErrDegenerateFit
}

// UserMessage returns the text shown to users.
func (e *DegenerateFitError) UserMessage() string {
	return DegenerateMessage
}

// ErrOutOfRange indicates coordinates outside what float64 arithmetic can fit.
var ErrOutOfRange = errors.New("coordinates out of range")

// RangeError represents a request whose line cannot be computed in finite
// precision.
type RangeError struct {
	Points int
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fit out of range over %d points: %v", e.Points, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// Is reports ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// UserMessage returns the text shown to users.
func (e *RangeError) UserMessage() string {
	return RangeMessage
}

// RenderError represents a failure while drawing or encoding.
type RenderError struct {
	Stage string // "draw", "export"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error (%s): %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// OptionError reports an invalid option value.
type OptionError struct {
	Option string
	Value  interface{}
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Option, e.Value)
}
