package atlasshift

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// errNotFinite reports a float result that JSON cannot represent.
var errNotFinite = errors.New("result is not a finite number")

// AddDelta adds delta to the JSON number literal lit and returns the new literal.
// Integer literals stay integers with arbitrary precision. Literals with a
// fraction or exponent are computed in float64 and rendered in the shortest
// form that still reads back as a decimal (6.0, 1.5e-05, 1e+16).
func AddDelta(lit string, delta int64) (string, error) {
	if isIntegerLiteral(lit) {
		n, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return "", fmt.Errorf("invalid integer literal %q", lit)
		}
		return n.Add(n, big.NewInt(delta)).String(), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if errors.Is(err, strconv.ErrRange) {
		return "", errNotFinite
	}
	if err != nil {
		return "", fmt.Errorf("invalid number literal %q: %w", lit, err)
	}
	f += float64(delta)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", errNotFinite
	}
	return formatDecimal(f), nil
}

func isIntegerLiteral(lit string) bool {
	return lit != "" && !strings.ContainsAny(lit, ".eE")
}

// formatDecimal uses positional notation for exponents in [-4, 16) and
// scientific notation otherwise, always keeping a decimal marker.
func formatDecimal(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
