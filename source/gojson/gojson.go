// Package gojson provides the default token source, backed by goccy/go-json.
package gojson

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/atlasshift/internal/engine"
)

// Name is the registry name of this driver.
const Name = "go-json"

type source struct {
	dec    *j.Decoder
	framer eng.Framer
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
// Numbers are surfaced as their literal text.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return eng.Token{Kind: s.framer.Open(true), Offset: -1}, nil
		case '[':
			return eng.Token{Kind: s.framer.Open(false), Offset: -1}, nil
		case '}':
			return eng.Token{Kind: s.framer.Close(true), Offset: -1}, nil
		case ']':
			return eng.Token{Kind: s.framer.Close(false), Offset: -1}, nil
		}
	case string:
		return eng.Token{Kind: s.framer.Str(), String: v, Offset: -1}, nil
	case j.Number:
		return eng.Token{Kind: s.framer.Scalar(eng.KindNumber), Number: string(v), Offset: -1}, nil
	case float64:
		return eng.Token{Kind: s.framer.Scalar(eng.KindNumber), Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case bool:
		return eng.Token{Kind: s.framer.Scalar(eng.KindBool), Bool: v, Offset: -1}, nil
	case nil:
		return eng.Token{Kind: s.framer.Scalar(eng.KindNull), Offset: -1}, nil
	}
	return eng.Token{}, fmt.Errorf("gojson: unexpected token %v", tok)
}

// go-json does not expose the decoder input offset.
func (s *source) Location() int64 { return -1 }
