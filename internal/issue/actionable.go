// SPDX-License-Identifier: MPL-2.0

// Package issue defines the user-facing error type for the preprocessor.
// Filesystem and configuration failures abort the whole run, so the one
// error the user sees should say what was being attempted, which path was
// involved, and what to do about it.
package issue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError carries context for a fatal preprocessor failure.
	//
	// Construct through the Context builder:
	//
	//	return issue.NewContext().
	//		WithOperation("read source module").
	//		WithResource(path).
	//		WithSuggestion("Check the file is readable").
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		// Operation is the verb phrase that failed (e.g. "walk source tree").
		Operation string

		// Resource is the path or entity involved (optional).
		Resource string

		// Suggestions are hints on how to fix the problem (optional).
		Suggestions []string

		// Cause is the underlying error (optional).
		Cause error
	}

	// Context builds ActionableError values fluently.
	Context struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewContext returns an empty builder.
func NewContext() *Context {
	return &Context{}
}

// Error implements the error interface with a single-line message.
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap exposes the cause to errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// SuggestionList returns a copy of the suggestions.
func (e *ActionableError) SuggestionList() []string {
	return slices.Clone(e.Suggestions)
}

// Format renders the error for terminal display: the message, bulleted
// suggestions, and (in verbose mode) the numbered cause chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	for _, s := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(s)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			depth++
		}
	}

	return msg.String()
}

// WithOperation sets the operation being performed (required).
func (c *Context) WithOperation(op string) *Context {
	c.operation = op
	return c
}

// WithResource sets the path or entity involved.
func (c *Context) WithResource(res string) *Context {
	c.resource = res
	return c
}

// WithSuggestion appends one fix-it hint; may be called repeatedly.
func (c *Context) WithSuggestion(sug string) *Context {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying cause.
func (c *Context) Wrap(err error) *Context {
	c.cause = err
	return c
}

// Build materializes the error, or nil when no operation was set.
func (c *Context) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build returning the error interface, for direct use in
// return statements. Returns nil when no operation was set.
func (c *Context) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
