package output

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/pagecore/config"
	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/flows"
	"github.com/npillmayer/pagecore/page"
	"github.com/npillmayer/pagecore/resources"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a PageWriter remembering every call.
type recorder struct {
	created  int
	logical  []LogicalPage
	physical []PhysicalPage
	commits  []DocumentMeta
	closed   int
	failOn   int // fail on n-th page write, 1-based
	writes   int
}

var errDiskFull = errors.New("disk full")

func (r *recorder) write() error {
	r.writes++
	if r.failOn > 0 && r.writes == r.failOn {
		return errDiskFull
	}
	return nil
}

func (r *recorder) WriteLogicalPage(p LogicalPage) error {
	if err := r.write(); err != nil {
		return err
	}
	r.logical = append(r.logical, p)
	return nil
}

func (r *recorder) WritePhysicalPage(p PhysicalPage) error {
	if err := r.write(); err != nil {
		return err
	}
	r.physical = append(r.physical, p)
	return nil
}

func (r *recorder) Commit(dm DocumentMeta) error {
	r.commits = append(r.commits, dm)
	return nil
}

func (r *recorder) Close() error {
	r.closed++
	return nil
}

func (r *recorder) format(mode Mode) Format {
	return Format{
		Export: Export{Name: "recorder"},
		Mode:   mode,
		NewWriter: func(io.Writer, MetaData, *resources.Manager) (PageWriter, error) {
			r.created++
			return r, nil
		},
	}
}

func newProcessor(t *testing.T, r *recorder, mode Mode, conf config.Conf) *StreamProcessor {
	p, err := NewProcessor(conf, &bytes.Buffer{}, resources.NewManager(0), r.format(mode))
	require.NoError(t, err)
	return p
}

func logicalPage(key page.LogicalKey) *page.Logical {
	return page.NewLogical(key, 100*dimen.PT, 100*dimen.PT).
		AddFlow(page.FlowContent, content.NewContainer("body")).
		AddFlow(page.FlowWatermark, content.NewContainer("draft"))
}

func TestMissingArguments(t *testing.T) {
	r := &recorder{}
	res := resources.NewManager(0)
	dest := &bytes.Buffer{}
	tests := []struct {
		conf config.Configuration
		dest io.Writer
		res  *resources.Manager
		f    Format
		arg  string
	}{
		{nil, dest, res, r.format(ModeLogical), "configuration"},
		{config.Conf{}, nil, res, r.format(ModeLogical), "destination"},
		{config.Conf{}, dest, nil, r.format(ModeLogical), "resource manager"},
		{config.Conf{}, dest, res, Format{Mode: ModeLogical}, "writer factory"},
		{config.Conf{}, dest, res, r.format(0), "mode"},
		{config.Conf{config.KeyFontStorage: "carved"}, dest, res, r.format(ModeLogical), config.KeyFontStorage},
		{config.Conf{config.KeyFlows: "!"}, dest, res, r.format(ModeLogical), config.KeyFlows},
		{config.Conf{config.KeyPageWidth: "auto"}, dest, res, r.format(ModeLogical), config.KeyPageWidth},
	}
	for i, test := range tests {
		p, err := NewProcessor(test.conf, test.dest, test.res, test.f)
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) || p != nil {
			t.Errorf("test #%d: expected configuration error, is %v", i, err)
			continue
		}
		if cerr.Arg != test.arg {
			t.Errorf("test #%d: expected error for %q, is for %q", i, test.arg, cerr.Arg)
		}
	}
	assert.Equal(t, 0, r.created)
}

func TestMetaDataBeforeFirstPage(t *testing.T) {
	r := &recorder{}
	conf := config.Conf{config.KeyPageWidth: "100pt", config.KeyFontStorage: "reference"}
	f := r.format(ModePhysical)
	f.Features = FeatureBorders | FeaturePaging
	f.UnitsPerPoint = 2
	p, err := NewProcessor(conf, &bytes.Buffer{}, resources.NewManager(0), f)
	require.NoError(t, err)
	md := p.MetaData()
	assert.Equal(t, 100*dimen.PT, md.PrintableWidth)
	assert.Equal(t, FontReference, md.FontStorage)
	assert.True(t, md.Has(FeaturePaging))
	assert.False(t, md.Has(FeatureText|FeaturePaging))
	assert.Equal(t, 20.0, md.ToOutputUnit(10*dimen.PT))
	assert.Equal(t, 0, r.created, "metadata must not create the writer")
}

func TestZeroPageRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.output")
	defer teardown()
	//
	r := &recorder{}
	p := newProcessor(t, r, ModeBoth, config.Conf{})
	require.NoError(t, p.ProcessingContentFinished())
	if r.created != 0 || r.closed != 0 || len(r.commits) != 0 {
		t.Errorf("expected no writer activity, is created=%d closed=%d commits=%d",
			r.created, r.closed, len(r.commits))
	}
	assert.True(t, p.Finished())
	assert.False(t, p.Opened())
}

func TestLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.output")
	defer teardown()
	//
	r := &recorder{}
	p := newProcessor(t, r, ModeLogical, config.Conf{config.KeyTitle: "Report"})
	assert.False(t, p.Opened(), "writer must be created lazily")
	require.NoError(t, p.ProcessLogicalPage(1, logicalPage(1)))
	require.NoError(t, p.ProcessLogicalPage(2, logicalPage(2)))
	assert.Equal(t, 1, r.created)
	require.NoError(t, p.ProcessingContentFinished())
	require.Len(t, r.commits, 1)
	assert.Equal(t, 1, r.closed)
	dm := r.commits[0]
	assert.Equal(t, "Report", dm.Title)
	assert.Equal(t, 2, dm.LogicalPages)
	assert.Equal(t, []string{page.FlowContent, page.FlowWatermark}, dm.Flows)
	// no calls accepted after completion
	assert.ErrorIs(t, p.ProcessLogicalPage(3, logicalPage(3)), ErrProcessorFinished)
	grid, _ := page.NewGrid(1, 1)
	key, _ := grid.PhysicalKey(3, 0, 0)
	assert.ErrorIs(t, p.ProcessPhysicalPage(grid, logicalPage(3), 0, 0, key), ErrProcessorFinished)
	assert.ErrorIs(t, p.ProcessingContentFinished(), ErrProcessorFinished)
	assert.Len(t, r.commits, 1, "commit at most once")
	assert.Equal(t, 1, r.closed)
}

func TestNoCommitWithoutWrittenPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.output")
	defer teardown()
	//
	r := &recorder{failOn: 1}
	p := newProcessor(t, r, ModePhysical, config.Conf{})
	grid, _ := page.NewGrid(1, 1)
	lp := logicalPage(1)
	key, _ := grid.PhysicalKey(lp.Key, 0, 0)
	assert.ErrorIs(t, p.ProcessPhysicalPage(grid, lp, 0, 0, key), errDiskFull)
	assert.True(t, p.Opened())
	require.NoError(t, p.ProcessingContentFinished())
	if len(r.commits) != 0 || r.closed != 1 {
		t.Errorf("expected close without commit, is commits=%d closes=%d", len(r.commits), r.closed)
	}
	assert.Equal(t, 0, p.Document().PhysicalPages)
}

func TestModeFiltersCallbacks(t *testing.T) {
	grid, _ := page.NewGrid(2, 3)
	lp := logicalPage(1)
	for _, mode := range []Mode{ModeLogical, ModePhysical, ModeBoth} {
		r := &recorder{}
		p := newProcessor(t, r, mode, config.Conf{})
		grid.Cells(func(row, col int) bool {
			key, _ := grid.PhysicalKey(lp.Key, row, col)
			require.NoError(t, p.ProcessPhysicalPage(grid, lp, row, col, key))
			return true
		})
		require.NoError(t, p.ProcessLogicalPage(lp.Key, lp))
		require.NoError(t, p.ProcessingContentFinished())
		expL, expP := 0, 0
		if mode.Logical() {
			expL = 1
		}
		if mode.Physical() {
			expP = 6
		}
		if len(r.logical) != expL || len(r.physical) != expP {
			t.Errorf("mode %s: expected %d logical and %d physical writes, is %d and %d",
				mode, expL, expP, len(r.logical), len(r.physical))
		}
	}
}

func TestPhysicalPageDetails(t *testing.T) {
	r := &recorder{}
	p := newProcessor(t, r, ModePhysical, config.Conf{})
	p.SetFlowSelector(flows.Except(page.FlowWatermark))
	grid := page.GridFor(150*dimen.PT, 100*dimen.PT, 100*dimen.PT, 100*dimen.PT)
	lp := logicalPage(4)
	key, _ := grid.PhysicalKey(lp.Key, 0, 1)
	require.NoError(t, p.ProcessPhysicalPage(grid, lp, 0, 1, key))
	require.Len(t, r.physical, 1)
	pp := r.physical[0]
	assert.Equal(t, 1, pp.Number)
	assert.Equal(t, 100*dimen.PT, pp.Clip.X)
	require.Len(t, pp.Flows, 1)
	assert.Equal(t, page.FlowContent, pp.Flows[0].Name)
	// key not matching the cell
	bad := page.PhysicalKey{Logical: 4, Row: 0, Col: 0}
	assert.Error(t, p.ProcessPhysicalPage(grid, lp, 0, 1, bad))
	assert.Error(t, p.ProcessPhysicalPage(grid, lp, 3, 0, bad))
}

func TestLogicalOrder(t *testing.T) {
	r := &recorder{}
	p := newProcessor(t, r, ModeLogical, config.Conf{})
	require.NoError(t, p.ProcessLogicalPage(2, logicalPage(2)))
	assert.Error(t, p.ProcessLogicalPage(2, logicalPage(2)))
	assert.Error(t, p.ProcessLogicalPage(1, logicalPage(1)))
	assert.NoError(t, p.ProcessLogicalPage(5, logicalPage(5)))
}

func TestAbort(t *testing.T) {
	r := &recorder{failOn: 2}
	p := newProcessor(t, r, ModeLogical, config.Conf{})
	require.NoError(t, p.ProcessLogicalPage(1, logicalPage(1)))
	err := p.ProcessLogicalPage(2, logicalPage(2))
	assert.ErrorIs(t, err, errDiskFull)
	require.NoError(t, p.Abort())
	assert.Equal(t, 1, r.closed)
	assert.Empty(t, r.commits, "aborted run must not commit")
	assert.ErrorIs(t, p.ProcessingContentFinished(), ErrProcessorFinished)
	assert.NoError(t, p.Abort())
	assert.Equal(t, 1, r.closed)
}

func TestWrapPageError(t *testing.T) {
	assert.Nil(t, WrapPageError("logical", page.LogicalKey(1), nil))
	err := WrapPageError("logical", page.LogicalKey(1), errDiskFull)
	var cpe *ContentProcessingError
	require.True(t, errors.As(err, &cpe))
	assert.Equal(t, "page#1", cpe.Page)
	assert.ErrorIs(t, err, errDiskFull)
	again := WrapPageError("physical", page.LogicalKey(2), err)
	assert.Same(t, cpe, again.(*ContentProcessingError), "wrap only once")
}
