package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	MissingTool        Kind = "missing tool"
	MissingDirectory   Kind = "missing directory"
	MissingFile        Kind = "missing file"
	CloneFailure       Kind = "clone failure"
	NotARepository     Kind = "not a repository"
	PermissionDenied   Kind = "permission denied"
	ProcessFailure     Kind = "process failure"
	ConfigMissingValue Kind = "config missing value"
	ConfigParseError   Kind = "config parse error"
	InvalidArgument    Kind = "invalid argument"
)

// WordlessError is an expected failure, reported to the user without a stack trace.
type WordlessError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *WordlessError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err)
}

func (e *WordlessError) Unwrap() error {
	return e.Err
}

// Is matches any WordlessError of the same kind when target carries no message,
// so the Err* values below can be used with errors.Is.
func (e *WordlessError) Is(target error) bool {
	t, ok := target.(*WordlessError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

func New(kind Kind, message string) *WordlessError {
	return &WordlessError{Kind: kind, Message: message}
}

func Wrap(kind Kind, err error, message string) *WordlessError {
	return &WordlessError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first WordlessError in err's chain.
func KindOf(err error) (Kind, bool) {
	var we *WordlessError
	if stderrors.As(err, &we) {
		return we.Kind, true
	}
	return "", false
}

var (
	ErrMissingTool        = &WordlessError{Kind: MissingTool}
	ErrMissingDirectory   = &WordlessError{Kind: MissingDirectory}
	ErrMissingFile        = &WordlessError{Kind: MissingFile}
	ErrCloneFailure       = &WordlessError{Kind: CloneFailure}
	ErrNotARepository     = &WordlessError{Kind: NotARepository}
	ErrPermissionDenied   = &WordlessError{Kind: PermissionDenied}
	ErrProcessFailure     = &WordlessError{Kind: ProcessFailure}
	ErrConfigMissingValue = &WordlessError{Kind: ConfigMissingValue}
	ErrConfigParseError   = &WordlessError{Kind: ConfigParseError}
	ErrInvalidArgument    = &WordlessError{Kind: InvalidArgument}
)
