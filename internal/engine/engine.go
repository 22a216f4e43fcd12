package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "begin_object"
	case KindEndObject:
		return "end_object"
	case KindBeginArray:
		return "begin_array"
	case KindEndArray:
		return "end_array"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string // Stored for key/string tokens.
	Number string // Literal text of the number as it appeared in the input.
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Framer tracks container nesting for decoders whose Token API does not
// distinguish object keys from string values (encoding/json, go-json).
// Drivers feed every raw token through it to obtain the engine Kind.
type Framer struct {
	stack []frame
}

// Open records '{' or '[' and returns the begin kind.
func (f *Framer) Open(object bool) Kind {
	if object {
		f.stack = append(f.stack, frame{kind: kindObject, expectingKey: true})
		return KindBeginObject
	}
	f.stack = append(f.stack, frame{kind: kindArray})
	return KindBeginArray
}

// Close records '}' or ']' and returns the end kind.
func (f *Framer) Close(object bool) Kind {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.valueDone()
	if object {
		return KindEndObject
	}
	return KindEndArray
}

// Str classifies a string token as either a key or a string value.
func (f *Framer) Str() Kind {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	f.valueDone()
	return KindString
}

// Scalar records a number, bool or null value and returns k unchanged.
func (f *Framer) Scalar(k Kind) Kind {
	f.valueDone()
	return k
}

// Depth reports the current container nesting.
func (f *Framer) Depth() int { return len(f.stack) }

func (f *Framer) valueDone() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
