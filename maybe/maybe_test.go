package maybe_test

import (
	"testing"

	. "github.com/npillmayer/pagecore/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	w := -1
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing to not match Just, did with %d", w)
	case m.Nothing():
		w = 0
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var z Maybe[string]
	if !z.IsNothing() {
		t.Error("expected zero value of Maybe to be Nothing, isn't")
	}
	if _, ok := z.Get(); ok {
		t.Error("expected Get() on zero value to report absence")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v := Just(7).Map(double).WithDefault(0); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
