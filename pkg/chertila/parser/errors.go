package parser

import "fmt"

// SyntaxError reports why a command did not match the grammar.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Reason
}

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Reason: fmt.Sprintf(format, args...)}
}
