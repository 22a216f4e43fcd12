package atlasshift

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	j "github.com/goccy/go-json"
)

// EncodeOptions controls output layout.
type EncodeOptions struct {
	// Indent is the number of spaces per level. 0 produces compact output.
	Indent int
	// ASCIIOnly escapes every non-ASCII rune as \uXXXX.
	ASCIIOnly bool
}

// Encode renders v. Object members are written in their stored order and
// number literals verbatim. No trailing newline is written.
func Encode(v *Value, opt EncodeOptions) ([]byte, error) {
	e := newEncoder(opt)
	if err := e.value(v, 0); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf       bytes.Buffer
	scratch   bytes.Buffer
	str       *j.Encoder
	indent    string
	asciiOnly bool
}

func newEncoder(opt EncodeOptions) *encoder {
	e := &encoder{asciiOnly: opt.ASCIIOnly}
	if opt.Indent > 0 {
		e.indent = strings.Repeat(" ", opt.Indent)
	}
	e.str = j.NewEncoder(&e.scratch)
	e.str.SetEscapeHTML(false)
	return e
}

func (e *encoder) value(v *Value, depth int) error {
	if v == nil {
		e.buf.WriteString("null")
		return nil
	}
	switch v.Kind {
	case NullValue:
		e.buf.WriteString("null")
	case BoolValue:
		if v.Bool {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case NumberValue:
		if v.Number == "" {
			return fmt.Errorf("encode: empty number literal")
		}
		e.buf.WriteString(v.Number)
	case StringValue:
		return e.string(v.String)
	case ArrayValue:
		if len(v.Items) == 0 {
			e.buf.WriteString("[]")
			return nil
		}
		e.buf.WriteByte('[')
		for i, it := range v.Items {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.value(it, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	case ObjectValue:
		if len(v.Members) == 0 {
			e.buf.WriteString("{}")
			return nil
		}
		e.buf.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.string(m.Key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if e.indent != "" {
				e.buf.WriteByte(' ')
			}
			if err := e.value(m.Value, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	default:
		return fmt.Errorf("encode: unknown value kind %d", v.Kind)
	}
	return nil
}

func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) string(s string) error {
	e.scratch.Reset()
	if err := e.str.Encode(s); err != nil {
		return fmt.Errorf("encode string: %w", err)
	}
	out := bytes.TrimSuffix(e.scratch.Bytes(), []byte{'\n'})
	if len(out) < 2 || out[0] != '"' || out[len(out)-1] != '"' {
		return fmt.Errorf("encode string: unexpected encoder output %q", out)
	}
	out = out[1 : len(out)-1]
	e.buf.WriteByte('"')
	for len(out) > 0 {
		switch c := out[0]; {
		case c == '\\' && len(out) >= 6 && out[1] == 'u':
			r, err := strconv.ParseUint(string(out[2:6]), 16, 32)
			if err != nil {
				return fmt.Errorf("encode string: bad escape %q", out[:6])
			}
			e.rune(rune(r))
			out = out[6:]
		case c == '\\' && len(out) >= 2:
			e.buf.Write(out[:2])
			out = out[2:]
		case c < utf8.RuneSelf:
			e.rune(rune(c))
			out = out[1:]
		default:
			r, size := utf8.DecodeRune(out)
			e.rune(r)
			out = out[size:]
		}
	}
	e.buf.WriteByte('"')
	return nil
}

// rune writes one string character. Control characters use the short forms
// where JSON has one; with asciiOnly everything outside printable ASCII
// becomes \uXXXX.
func (e *encoder) rune(r rune) {
	switch {
	case r == '"':
		e.buf.WriteString(`\"`)
	case r == '\\':
		e.buf.WriteString(`\\`)
	case r == '\b':
		e.buf.WriteString(`\b`)
	case r == '\f':
		e.buf.WriteString(`\f`)
	case r == '\n':
		e.buf.WriteString(`\n`)
	case r == '\r':
		e.buf.WriteString(`\r`)
	case r == '\t':
		e.buf.WriteString(`\t`)
	case r < 0x20:
		fmt.Fprintf(&e.buf, `\u%04x`, r)
	case r < 0x7f, !e.asciiOnly:
		e.buf.WriteRune(r)
	case r > 0xFFFF:
		r1, r2 := utf16.EncodeRune(r)
		fmt.Fprintf(&e.buf, `\u%04x\u%04x`, r1, r2)
	default:
		fmt.Fprintf(&e.buf, `\u%04x`, r)
	}
}
