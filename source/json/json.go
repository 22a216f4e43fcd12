// Package json provides a token source backed by the standard encoding/json
// decoder. It reports byte offsets, which the go-json driver cannot.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	eng "github.com/reoring/atlasshift/internal/engine"
)

// Name is the registry name of this driver.
const Name = "encoding/json"

type jsonSource struct {
	dec        *json.Decoder
	framer     eng.Framer
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return eng.Token{Kind: s.framer.Open(true), Offset: s.lastOffset}, nil
		case '[':
			return eng.Token{Kind: s.framer.Open(false), Offset: s.lastOffset}, nil
		case '}':
			return eng.Token{Kind: s.framer.Close(true), Offset: s.lastOffset}, nil
		case ']':
			return eng.Token{Kind: s.framer.Close(false), Offset: s.lastOffset}, nil
		}
	case string:
		return eng.Token{Kind: s.framer.Str(), String: v, Offset: s.lastOffset}, nil
	case json.Number:
		return eng.Token{Kind: s.framer.Scalar(eng.KindNumber), Number: string(v), Offset: s.lastOffset}, nil
	case float64:
		return eng.Token{Kind: s.framer.Scalar(eng.KindNumber), Number: formatFloat(v), Offset: s.lastOffset}, nil
	case bool:
		return eng.Token{Kind: s.framer.Scalar(eng.KindBool), Bool: v, Offset: s.lastOffset}, nil
	case nil:
		return eng.Token{Kind: s.framer.Scalar(eng.KindNull), Offset: s.lastOffset}, nil
	}
	return eng.Token{}, fmt.Errorf("json: unexpected token %v at offset %d", tok, s.lastOffset)
}

func (s *jsonSource) Location() int64 { return s.lastOffset }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
