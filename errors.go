package atlasshift

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
	CodeOverflow     = "overflow"
)

// Issue represents a single problem found in the input document.
type Issue struct {
	Path    string // JSON Pointer (for example: /frames/2/spriteSourceSize/y).
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"expected":"number","got":"string"})
	// for i18n and logging.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /frames/0/spriteSourceSize/y
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Kind classifies a failed run.
type Kind int

const (
	KindUnknown Kind = iota
	KindFileNotFound
	KindMalformedInput
	KindSchemaViolation
	KindWriteFailure
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindMalformedInput:
		return "malformed input"
	case KindSchemaViolation:
		return "schema violation"
	case KindWriteFailure:
		return "write failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against an *Error.
var (
	ErrFileNotFound    = errors.New("atlasshift: file not found")
	ErrMalformedInput  = errors.New("atlasshift: malformed input")
	ErrSchemaViolation = errors.New("atlasshift: schema violation")
	ErrWriteFailure    = errors.New("atlasshift: write failure")
)

// Error is returned by every operation of this package.
// Issues is set for MalformedInput and SchemaViolation.
type Error struct {
	Kind   Kind
	Path   string // file involved, when known
	Issues Issues
	Err    error
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		fmt.Fprintf(b, " %s", e.Path)
	}
	switch {
	case len(e.Issues) > 0:
		fmt.Fprintf(b, ": %s", e.Issues.Error())
	case e.Err != nil:
		fmt.Fprintf(b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if len(e.Issues) > 0 {
		errs = append(errs, e.Issues)
	}
	return errs
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindFileNotFound
	case ErrMalformedInput:
		return e.Kind == KindMalformedInput
	case ErrSchemaViolation:
		return e.Kind == KindSchemaViolation
	case ErrWriteFailure:
		return e.Kind == KindWriteFailure
	}
	return false
}

// KindOf returns the Kind of an *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func fileError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func issuesError(kind Kind, path string, iss Issues) *Error {
	return &Error{Kind: kind, Path: path, Issues: iss}
}
