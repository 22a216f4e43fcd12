package atlasshift

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/atlasshift/internal/engine"
)

// Decode parses data into an ordered tree using the default driver and no
// enforcement. Parse failures are returned as Issues.
func Decode(data []byte) (*Value, error) {
	d, _ := LookupJSONDriver("")
	return decodeValue(d, data, eng.EnforceOptions{})
}

func decodeValue(d JSONDriver, data []byte, eo eng.EnforceOptions) (*Value, error) {
	// token decoders skip separators without checking their placement and
	// replace bad UTF-8, so the whole document is checked up front
	if !utf8.Valid(data) {
		return nil, AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: "input is not valid UTF-8", Offset: -1})
	}
	if err := checkSyntax(data); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			msg = "unexpected end of input"
		}
		return nil, AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: msg, Offset: -1})
	}
	src := eng.WrapWithEnforcement(d.NewReader(bytes.NewReader(data)), eo)
	tok, err := src.NextToken()
	if err != nil {
		return nil, toIssues(err, src)
	}
	v, err := buildValue(src, tok)
	if err != nil {
		return nil, toIssues(err, src)
	}
	// a single document only
	if extra, err := src.NextToken(); err == nil {
		return nil, AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: "unexpected data after top-level value", Offset: extra.Offset})
	} else if !errors.Is(err, io.EOF) {
		return nil, toIssues(err, src)
	}
	return v, nil
}

// checkSyntax runs the full go-json decoder over data. Numbers stay text, so
// out-of-range literals pass here and are reported by the arithmetic.
func checkSyntax(data []byte) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

func buildValue(src eng.TokenSource, tok eng.Token) (*Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return buildObject(src)
	case eng.KindBeginArray:
		return buildArray(src)
	case eng.KindString:
		return String(tok.String), nil
	case eng.KindNumber:
		return Number(tok.Number), nil
	case eng.KindBool:
		return Bool(tok.Bool), nil
	case eng.KindNull:
		return Null(), nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func buildObject(src eng.TokenSource) (*Value, error) {
	obj := Object()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		if tok.Kind == eng.KindEndObject {
			return obj, nil
		}
		if tok.Kind != eng.KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		v, err := buildValue(src, vt)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last value wins, first position kept
		obj.Set(tok.String, v)
	}
}

func buildArray(src eng.TokenSource) (*Value, error) {
	arr := Array()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		if tok.Kind == eng.KindEndArray {
			return arr, nil
		}
		v, err := buildValue(src, tok)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, v)
	}
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func toIssues(err error, src eng.TokenSource) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: ie.Offset})
	}
	msg := err.Error()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		msg = "unexpected end of input"
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Path: "/", Message: msg, Offset: src.Location()})
}
