package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which loader produced the error
type Phase string

const (
	PhaseGraph  Phase = "graph"  // resolved-graph JSON document
	PhaseConfig Phase = "config" // configuration YAML
	PhaseImport Phase = "import" // bytecodealliance type-tree import
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData  Kind = "invalid_data"
	KindUnknownTag   Kind = "unknown_tag"
	KindUnknownKind  Kind = "unknown_kind"
	KindBadReference Kind = "bad_reference"
	KindDuplicateKey Kind = "duplicate_key"
	KindIO           Kind = "io"
)

// Error is the structured error type used by the loading layer
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the document or element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidData creates a malformed-input error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// UnknownTag creates an unknown-variant-tag error
func UnknownTag(phase Phase, path []string, tag string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownTag,
		Path:   path,
		Detail: fmt.Sprintf("unknown tag %q", tag),
	}
}

// UnknownKind creates an unknown-type-kind error
func UnknownKind(phase Phase, path []string, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownKind,
		Path:   path,
		Detail: fmt.Sprintf("unknown type kind %q", kind),
	}
}

// BadReference creates an out-of-range arena index error
func BadReference(phase Phase, path []string, what string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadReference,
		Path:   path,
		Detail: fmt.Sprintf("%s index %d out of range (length %d)", what, index, length),
	}
}

// DuplicateKey creates a duplicate-mapping-key error
func DuplicateKey(phase Phase, path []string, key string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicateKey,
		Path:   path,
		Detail: fmt.Sprintf("duplicate key %q", key),
	}
}

// IO wraps a file system error
func IO(phase Phase, filename string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Path:   []string{filename},
		Cause:  cause,
		Detail: "read failed",
	}
}
