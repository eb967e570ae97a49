package proj

import (
	"strconv"
	"strings"
)

// arity returns the number of numeric parameters a kind is written with.
func (k Kind) arity() int {
	switch k {
	case CylEqArea, Mercator:
		return 1
	default:
		return 2
	}
}

// FromString builds a projection from its text form, a keyword followed by
// the reference longitude and, for kinds that take one, the reference
// latitude, e.g. "LambertConfConic -1.7 0.6". Angles are radians. Tokens
// after the parameters are ignored. ok is false if the line does not start
// with a known keyword and enough numbers.
func FromString(line string, opts ...Option) (Projection, bool) {
	return FromStringScaled(line, 1.0, opts...)
}

// FromStringScaled is FromString for angles written in another unit; each
// parameter is multiplied by scale to get radians.
func FromStringScaled(line string, scale float64, opts ...Option) (Projection, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Projection{}, false
	}

	for _, kind := range Kinds {
		if fields[0] != kind.String() {
			continue
		}

		n := kind.arity()
		if len(fields) < 1+n {
			continue
		}

		var params [2]float64
		valid := true
		for i := 0; i < n; i++ {
			v, err := strconv.ParseFloat(fields[1+i], 64)
			if err != nil {
				valid = false
				break
			}
			params[i] = v * scale
		}
		if !valid {
			continue
		}

		return New(kind, params[0], params[1], opts...)
	}

	return Projection{}, false
}

// String renders the projection in the form read by FromString.
func (p Projection) String() string {
	lon, lat := p.Reference()
	parts := []string{p.kind.String(), strconv.FormatFloat(lon, 'g', -1, 64)}
	if p.kind.arity() == 2 {
		parts = append(parts, strconv.FormatFloat(lat, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}
