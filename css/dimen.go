package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/pagecore/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	bp    int32 // percentage in basis points, i.e. 1/100 %
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage basispoints
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value, given in
// basis points (5000 = 50%).
func Percentage(bp int32) DimenT {
	return DimenT{bp: bp, flags: dimenPercent}
}

func (d DimenT) isAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

func (d DimenT) isPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsNone is true for the zero value, i.e. an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.isAbsolute():
		return fmt.Sprintf("%dsp", int32(d.d))
	case d.isPercent():
		return fmt.Sprintf("%d.%02d%%", d.bp/100, d.bp%100)
	case d.flags == dimenAuto:
		return "auto"
	case d.flags == dimenInherit:
		return "inherit"
	case d.flags == dimenInitial:
		return "initial"
	}
	return "none"
}

// Resolve returns the absolute value of d. Percentages are taken of ref.
// For all other kinds Resolve returns false.
func (d DimenT) Resolve(ref dimen.DU) (dimen.DU, bool) {
	switch {
	case d.isAbsolute():
		return d.d, true
	case d.isPercent():
		return dimen.DU(int64(ref) * int64(d.bp) / 10000), true
	}
	return 0, false
}

// --- Parsing ---------------------------------------------------------------

// Multipliers of CSS units in terms of points (1in = 72pt = 96px).
var unitFactors = map[string]float64{
	"pt": 1.0,
	"px": 0.75,
	"in": 72.0,
	"mm": 72.0 / 25.4,
	"cm": 72.0 / 2.54,
	"pc": 12.0,
}

// ErrUnknownUnit is returned by ParseDimen for unsupported units.
var ErrUnknownUnit = errors.New("unknown or unsupported CSS unit")

// ParseDimen parses a CSS dimension property, e.g. "10pt", "2.5mm", "50%"
// or "auto". An empty property results in an unset DimenT. A plain "0"
// is accepted without unit.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.TrimSpace(strings.ToLower(p.String()))
	switch s {
	case "":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("illegal percentage %q: %w", s, err)
		}
		return Percentage(int32(math.Round(f * 100))), nil
	}
	if len(s) < 3 {
		return DimenT{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	unit := s[len(s)-2:]
	factor, ok := unitFactors[unit]
	if !ok {
		return DimenT{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-2]), 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("illegal dimension %q: %w", s, err)
	}
	du := dimen.DU(math.Round(f * factor * float64(dimen.PT)))
	tracer().Debugf("parsed dimension %q as %d sp", s, int32(du))
	return JustDimen(du), nil
}

// Border widths for the CSS keywords thin, medium and thick.
const (
	BorderThin   = 1 * dimen.PT
	BorderMedium = 3 * dimen.PT
	BorderThick  = 5 * dimen.PT
)

// ParseBorderWidth parses a border-width property, accepting the CSS
// keywords thin, medium and thick in addition to lengths.
func ParseBorderWidth(p style.Property) (DimenT, error) {
	switch strings.TrimSpace(strings.ToLower(p.String())) {
	case "thin":
		return JustDimen(BorderThin), nil
	case "medium":
		return JustDimen(BorderMedium), nil
	case "thick":
		return JustDimen(BorderThick), nil
	}
	return ParseDimen(p)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&kindMask == d.flags&kindMask && m.dimen.flags&relativeMask == d.flags&relativeMask:
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.isAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(bp *int32) *Matcher {
	if m.dimen.isPercent() {
		if bp != nil {
			*bp = m.dimen.bp
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.isAbsolute():
		return patterns.Just
	case m.dimen.isPercent():
		return patterns.Percent
	case m.dimen.flags == dimenAuto:
		return patterns.Auto
	case m.dimen.flags == dimenInitial:
		return patterns.Initial
	case m.dimen.flags == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
