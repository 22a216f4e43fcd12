package atlasshift

import (
	"fmt"
	"strings"
)

// Severity expresses the severity level for duplicate keys.
type Severity int

const (
	SeverityIgnore Severity = iota
	SeverityWarn
	SeverityError
)

// ParseSeverity maps "ignore", "warn" and "error" to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return SeverityIgnore, nil
	case "warn":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityIgnore, fmt.Errorf("unknown severity %q (want ignore, warn or error)", s)
}

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "ignore"
	}
}

// FieldPath names the member chain from a frame object to the number being
// adjusted, e.g. {"spriteSourceSize", "y"}.
type FieldPath []string

// DefaultField is spriteSourceSize.y.
var DefaultField = FieldPath{"spriteSourceSize", "y"}

// ParseFieldPath splits a dotted path such as "spriteSourceSize.y".
func ParseFieldPath(s string) (FieldPath, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty field path")
	}
	parts := strings.Split(s, ".")
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("field path %q has an empty segment", s)
		}
	}
	return FieldPath(parts), nil
}

func (f FieldPath) String() string { return strings.Join(f, ".") }

// Options configures a Shifter.
type Options struct {
	// Field is the number adjusted on every frame.
	Field FieldPath
	// Delta is added to Field on every frame.
	Delta int64
	// Indent is the number of spaces per nesting level in the output.
	Indent int
	// ASCIIOnly escapes every non-ASCII character as \uXXXX.
	ASCIIOnly bool
	// Driver selects the JSON tokenizer by registry name; empty means the default.
	Driver string
	// OnDuplicateKey controls duplicate object keys in the input.
	OnDuplicateKey Severity
	// MaxDepth limits container nesting (0 disables).
	MaxDepth int
	// MaxBytes limits the input size (0 disables).
	MaxBytes int64
	// FailFast stops schema validation at the first issue.
	FailFast bool
}

// DefaultOptions reproduces the reference behavior: spriteSourceSize.y += 1,
// two-space indentation, ASCII-only output.
func DefaultOptions() Options {
	return Options{
		Field:     DefaultField,
		Delta:     1,
		Indent:    2,
		ASCIIOnly: true,
	}
}

// Report summarizes a completed operation.
type Report struct {
	Input  string
	Output string
	Driver string
	Frames int
}
