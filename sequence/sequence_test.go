package sequence

import (
	"errors"
	"testing"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pt = dimen.PT

func inline(lead, trail dimen.DU) *content.Node {
	return content.NewInline(&content.StaticBoxGeometry{
		MarginLeft:   lead,
		PaddingRight: trail,
	})
}

func TestElementWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.sequence")
	defer teardown()
	//
	geom := &content.StaticBoxGeometry{MarginLeft: 2 * pt, MarginRight: 3 * pt}
	img := content.NewReplaced(20*pt, 10*pt)
	constrained := content.NewReplaced(20*pt, 10*pt)
	constrained.MaxWidth = maybe.Just(30 * pt)
	tests := []struct {
		e        Element
		n        *content.Node
		min, max dimen.DU
	}{
		{Start, inline(4*pt, 1*pt), 4 * pt, 4 * pt},
		{End, inline(4*pt, 1*pt), 1 * pt, 1 * pt},
		{Text, content.NewText("hello world", 10*pt, 18*pt, nil), 10 * pt, 18 * pt},
		{InlineBox, content.NewInlineBlock(geom, 8*pt, 12*pt), 13 * pt, 17 * pt},
		{Replaced, img, 20 * pt, 20 * pt},
		{Replaced, constrained, 20 * pt, 30 * pt},
		{Spacer, content.NewSpacer(1*pt, 5*pt), 1 * pt, 5 * pt},
	}
	for i, test := range tests {
		min, max := test.e.MinimumWidth(test.n), test.e.MaximumWidth(test.n)
		if min != test.min || max != test.max {
			t.Errorf("test #%d: expected %v to be %d…%d, is %d…%d", i, test.e,
				test.min, test.max, min, max)
		}
		if min > max {
			t.Errorf("test #%d: minimum exceeds maximum for %v", i, test.e)
		}
		if c := test.e.Classification(); (c == ClassContent) == (test.e == Start || test.e == End) {
			t.Errorf("test #%d: unexpected classification %s for %v", i, c, test.e)
		}
	}
}

func TestMinimumNeverExceedsMaximum(t *testing.T) {
	// upstream measurement glitch: chunk wider than natural width
	txt := content.NewText("x", 12*pt, 10*pt, nil)
	assert.Equal(t, 12*pt, Text.MaximumWidth(txt))
	sp := content.NewSpacer(3*pt, 0)
	assert.LessOrEqual(t, Spacer.MinimumWidth(sp), Spacer.MaximumWidth(sp))
}

func TestWhitespacePreservation(t *testing.T) {
	pre := &content.StaticBoxGeometry{PreserveWhitespace: true}
	assert.True(t, Text.PreservesWhitespace(content.NewText(" a ", 0, 0, pre)))
	assert.False(t, Text.PreservesWhitespace(content.NewText(" a ", 0, 0, nil)))
	assert.True(t, Start.PreservesWhitespace(content.NewInline(pre)))
	assert.False(t, Replaced.PreservesWhitespace(content.NewReplaced(0, 0)))
	spacer := content.NewSpacer(0, 0)
	assert.False(t, Spacer.PreservesWhitespace(spacer))
}

func TestContractViolation(t *testing.T) {
	defer func() {
		r := recover()
		cv, ok := r.(ContractViolation)
		if !ok {
			t.Fatalf("expected panic with contract violation, is %v", r)
		}
		if cv.Kind != content.KindText {
			t.Errorf("expected violation for text node, is %s", cv.Kind)
		}
	}()
	Start.MinimumWidth(content.NewText("oops", 0, 0, nil))
	t.Errorf("expected Start to panic for text node")
}

func TestContractViolationForNil(t *testing.T) {
	assert.PanicsWithValue(t, ContractViolation{Element: "text", Nil: true}, func() {
		Text.MaximumWidth(nil)
	})
	assert.Panics(t, func() { Replaced.MinimumWidth(content.NewSpacer(0, 0)) })
	assert.Panics(t, func() { End.MaximumWidth(content.NewBox(nil)) })
}

func TestListRoundTrip(t *testing.T) {
	n1 := content.NewText("a", pt, pt, nil)
	n2 := content.NewSpacer(pt, 2*pt)
	l := NewList(0)
	require.NoError(t, l.Add(Text, n1))
	require.NoError(t, l.Add(Spacer, n2))
	if l.Size() != 2 || l.Node(0) != n1 || l.Element(1) != Spacer {
		t.Errorf("expected list [Text:n1 Spacer:n2], is %v", l)
	}
	l.Clear()
	if l.Size() != 0 {
		t.Errorf("expected empty list after clear, is %d", l.Size())
	}
	if cap(l.nodes) < DefaultCapacity {
		t.Errorf("expected clear to retain capacity, is %d", cap(l.nodes))
	}
	require.NoError(t, l.Add(Spacer, n2))
	if l.Size() != 1 || l.Node(0) != n2 || l.Element(0) != Spacer {
		t.Errorf("expected list [Spacer:n2], is %v", l)
	}
}

func TestListRejectsNil(t *testing.T) {
	var l List
	err := l.Add(nil, content.NewSpacer(0, 0))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	err = l.Add(Text, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 0, l.Size())
}

func TestListExport(t *testing.T) {
	l := &List{} // zero value
	var nodes []*content.Node
	for i := 0; i < 7; i++ {
		n := content.NewSpacer(dimen.DU(i), dimen.DU(i))
		nodes = append(nodes, n)
		require.NoError(t, l.Add(Spacer, n))
	}
	for _, c := range []int{0, 3, 7, 20} {
		nbuf := l.ExportNodes(make([]*content.Node, 0, c))
		assert.Equal(t, nodes, nbuf, "capacity %d", c)
		ebuf := l.ExportElements(make([]Element, c))
		require.Len(t, ebuf, 7, "capacity %d", c)
		for i, e := range ebuf {
			assert.Equal(t, Spacer, e, "element %d", i)
		}
	}
	assert.Empty(t, (&List{}).ExportNodes(nil))
}

func TestLineTotals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.sequence")
	defer teardown()
	//
	box := content.NewInline(&content.StaticBoxGeometry{BorderLeft: 4 * pt, BorderRight: 3 * pt})
	txt := content.NewText("stretchy", 10*pt, 18*pt, nil)
	l := NewList(3)
	require.NoError(t, l.Add(Start, box))
	require.NoError(t, l.Add(Text, txt))
	require.NoError(t, l.Add(End, box))
	if w := l.MaximumWidth(); w != 25*pt {
		t.Errorf("expected maximum width 25pt, is %v", w)
	}
	if w := l.MinimumWidth(); w != 17*pt {
		t.Errorf("expected minimum width 17pt, is %v", w)
	}
	assert.Equal(t, 8*pt, l.Stretch(), "only text may stretch")
}

func TestMinimumLengthReportsMaximum(t *testing.T) {
	l := NewList(0)
	require.NoError(t, l.Add(Text, content.NewText("run", 10*pt, 18*pt, nil)))
	if w := l.MinimumLength(0); w != 18*pt {
		t.Errorf("expected MinimumLength to report the maximum width 18pt, is %v", w)
	}
}

func TestCollectBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.sequence")
	defer teardown()
	//
	outer, inner := inline(pt, pt), inline(2*pt, 2*pt)
	block := content.NewInlineBlock(nil, 5*pt, 9*pt).Add(content.NewText("hidden", 0, 0, nil))
	root := content.NewBox(nil).Add(
		content.NewText("a", pt, pt, nil),
		outer.Add(
			content.NewText("b", pt, pt, nil),
			inner.Add(content.NewReplaced(3*pt, 3*pt)),
			content.NewSpacer(0, pt),
		),
		block,
	)
	l := NewList(0)
	require.NoError(t, Collect(l, root))
	t.Logf("collected %v", l)
	expected := []Element{Text, Start, Text, Start, Replaced, End, Spacer, End, InlineBox}
	assert.Equal(t, expected, l.ExportElements(nil))
	// every Start has its End, for the same node, properly nested
	var stack []*content.Node
	for i := 0; i < l.Size(); i++ {
		switch l.Element(i).Classification() {
		case ClassStart:
			stack = append(stack, l.Node(i))
		case ClassEnd:
			require.NotEmpty(t, stack)
			assert.Same(t, stack[len(stack)-1], l.Node(i))
			stack = stack[:len(stack)-1]
		}
	}
	assert.Empty(t, stack)
}
