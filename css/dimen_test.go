package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/pagecore/css"
	"github.com/npillmayer/pagecore/style"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	inherit := css.Inherit()
	switch m := inherit.Match(); m {
	case m.Just(nil):
		t.Errorf("expected inherit to not be a fixed value, is: %#v", inherit)
	case m.IsKind(css.Inherit()):
		t.Logf("dimen is inherit")
	}

	pcnt := css.Percentage(8000)
	var bp int32
	switch m := pcnt.Match(); m {
	case m.Percentage(&bp):
		t.Logf("percent = %s", pcnt)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if bp != 8000 {
		t.Errorf("expected 8000 basis points, have %d", bp)
	}
}

func TestDimenPattern(t *testing.T) {
	d := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 20*dimen.PT, distance)
	}
}

func TestParseDimen(t *testing.T) {
	cases := []struct {
		in  string
		out dimen.DU
	}{
		{"10pt", 10 * dimen.PT},
		{"0", 0},
		{"4px", 3 * dimen.PT},
		{"1in", 72 * dimen.PT},
		{"2.54cm", 72 * dimen.PT},
		{" 1PC ", 12 * dimen.PT},
	}
	for _, c := range cases {
		d, err := css.ParseDimen(style.Property(c.in))
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.in, err)
			continue
		}
		du, ok := d.Resolve(0)
		if !ok || du != c.out {
			t.Errorf("expected %q to resolve to %d, is %d (ok=%v)", c.in, c.out, du, ok)
		}
	}
	if _, err := css.ParseDimen("12em"); !errors.Is(err, css.ErrUnknownUnit) {
		t.Errorf("expected em to be rejected with ErrUnknownUnit, have %v", err)
	}
	if d, err := css.ParseDimen(""); err != nil || !d.IsNone() {
		t.Errorf("expected empty property to be unset, is %v / %v", d, err)
	}
}

func TestPercentageResolve(t *testing.T) {
	d, err := css.ParseDimen("25%")
	if err != nil {
		t.Fatal(err)
	}
	du, ok := d.Resolve(400 * dimen.PT)
	if !ok || du != 100*dimen.PT {
		t.Errorf("expected 25%% of 400pt to be 100pt, is %d", du)
	}
	if _, ok := css.Auto().Resolve(400 * dimen.PT); ok {
		t.Errorf("expected auto to not resolve")
	}
}

func TestParseBorderWidth(t *testing.T) {
	d, err := css.ParseBorderWidth("medium")
	if err != nil {
		t.Fatal(err)
	}
	if du, _ := d.Resolve(0); du != css.BorderMedium {
		t.Errorf("expected medium border to be %d, is %d", css.BorderMedium, du)
	}
}
