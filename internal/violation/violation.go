// Package violation provides an ordered, offset-indexed list of validation violations.
package violation

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Violation is a single failed validation rule as seen by a List.
// Code reports ok == false when the violation carries no code at all,
// which is distinct from a code that is the empty string.
type Violation interface {
	Message() string
	Code() (code string, ok bool)
	String() string
}

// ConstraintViolation is the default Violation implementation
type ConstraintViolation struct {
	message         string
	messageTemplate string
	parameters      map[string]any
	plural          *int
	root            any
	propertyPath    string
	invalidValue    any
	code            *string
	cause           error
}

// Option configures optional fields of a ConstraintViolation
type Option func(*ConstraintViolation)

// WithCode sets the machine-readable code
func WithCode(code string) Option {
	return func(v *ConstraintViolation) {
		v.code = &code
	}
}

// WithPlural sets the number used to pluralize the message template
func WithPlural(plural int) Option {
	return func(v *ConstraintViolation) {
		v.plural = &plural
	}
}

// WithCause attaches the underlying error that produced the violation
func WithCause(cause error) Option {
	return func(v *ConstraintViolation) {
		v.cause = cause
	}
}

// NewConstraintViolation creates a violation. Every argument except message may be zero.
func NewConstraintViolation(
	message string,
	messageTemplate string,
	parameters map[string]any,
	root any,
	propertyPath string,
	invalidValue any,
	opts ...Option,
) *ConstraintViolation {
	v := &ConstraintViolation{
		message:         message,
		messageTemplate: messageTemplate,
		parameters:      maps.Clone(parameters),
		root:            root,
		propertyPath:    propertyPath,
		invalidValue:    invalidValue,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Message returns the interpolated, human-readable message
func (v *ConstraintViolation) Message() string { return v.message }

// MessageTemplate returns the raw message before parameter substitution
func (v *ConstraintViolation) MessageTemplate() string { return v.messageTemplate }

// Parameters returns a copy of the template parameters
func (v *ConstraintViolation) Parameters() map[string]any { return maps.Clone(v.parameters) }

// Plural returns the pluralization number, if one was set
func (v *ConstraintViolation) Plural() (int, bool) {
	if v.plural == nil {
		return 0, false
	}
	return *v.plural, true
}

// Root returns the value validation started from
func (v *ConstraintViolation) Root() any { return v.root }

// PropertyPath returns the path from the root to the violated value
func (v *ConstraintViolation) PropertyPath() string { return v.propertyPath }

// InvalidValue returns the value that failed validation
func (v *ConstraintViolation) InvalidValue() any { return v.invalidValue }

// Code returns the code and whether one was set
func (v *ConstraintViolation) Code() (string, bool) {
	if v.code == nil {
		return "", false
	}
	return *v.code, true
}

// Cause returns the error that produced the violation, if any
func (v *ConstraintViolation) Cause() error { return v.cause }

// String renders the violation for debugging output, e.g.
//
//	Object(*main.User).email:
//	    This value is not a valid email address. (code bd79c0ab)
func (v *ConstraintViolation) String() string {
	var sb strings.Builder
	sb.WriteString(rootKind(v.root))

	path := v.propertyPath
	if path != "" && !strings.HasPrefix(path, "[") && sb.Len() > 0 {
		sb.WriteString(".")
	}
	sb.WriteString(path)
	sb.WriteString(":\n    ")
	sb.WriteString(v.message)

	if code, ok := v.Code(); ok && code != "" {
		sb.WriteString(fmt.Sprintf(" (code %s)", code))
	}
	return sb.String()
}

func rootKind(root any) string {
	if root == nil {
		return ""
	}
	switch reflect.TypeOf(root).Kind() {
	case reflect.Struct, reflect.Pointer:
		return fmt.Sprintf("Object(%T)", root)
	case reflect.Slice, reflect.Array, reflect.Map:
		return "Array"
	default:
		return ""
	}
}
