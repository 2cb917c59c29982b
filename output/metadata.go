package output

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Mode tells which of the page callbacks a processor consumes.
type Mode uint8

const (
	ModeLogical  Mode = 1 << iota // one output unit per logical page
	ModePhysical                  // one output unit per grid cell
	ModeBoth     = ModeLogical | ModePhysical
)

// Logical is true if m consumes logical pages.
func (m Mode) Logical() bool { return m&ModeLogical != 0 }

// Physical is true if m consumes physical pages.
func (m Mode) Physical() bool { return m&ModePhysical != 0 }

func (m Mode) String() string {
	switch m {
	case ModeLogical:
		return "logical"
	case ModePhysical:
		return "physical"
	case ModeBoth:
		return "both"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// FontStorage is the strategy of a format for fonts.
type FontStorage uint8

const (
	FontEmbed     FontStorage = iota // embed font programs
	FontReference                    // reference fonts by name
	FontNone                         // no font information
)

var fontStorageNames = [...]string{"embed", "reference", "none"}

func (fs FontStorage) String() string {
	if int(fs) < len(fontStorageNames) {
		return fontStorageNames[fs]
	}
	return fmt.Sprintf("font-storage(%d)", uint8(fs))
}

// ParseFontStorage reads a font storage strategy from its name.
func ParseFontStorage(s string) (FontStorage, error) {
	for i, n := range fontStorageNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return FontStorage(i), nil
		}
	}
	return FontEmbed, fmt.Errorf("unknown font storage %q", s)
}

// Feature is a set of format capabilities.
type Feature uint16

const (
	FeatureText    Feature = 1 << iota // renders text runs
	FeatureBorders                     // renders box frames
	FeatureImages                      // renders replaced content
	FeaturePaging                      // has a notion of sheets
)

// Export describes an output format.
type Export struct {
	Name      string // e.g. "pdf"
	MimeType  string
	Extension string
}

// MetaData is the static description of an output format as configured
// for one run.
type MetaData struct {
	Export          Export
	Mode            Mode
	PrintableWidth  dimen.DU
	PrintableHeight dimen.DU
	FontStorage     FontStorage
	Features        Feature
	UnitsPerPoint   float64 // output units per point; 0 means 1
}

// Has is true if the format supports all of features f.
func (md MetaData) Has(f Feature) bool {
	return md.Features&f == f
}

// ToOutputUnit converts an internal length to the output unit of the
// format.
func (md MetaData) ToOutputUnit(d dimen.DU) float64 {
	upp := md.UnitsPerPoint
	if upp == 0 {
		upp = 1
	}
	return float64(d) / float64(dimen.PT) * upp
}

func (md MetaData) String() string {
	return fmt.Sprintf("%s[%s, %v×%v, fonts=%s]", md.Export.Name, md.Mode,
		md.PrintableWidth, md.PrintableHeight, md.FontStorage)
}

// DocumentMeta is accumulated while pages are processed and committed to
// the writer once, at the end of a run.
type DocumentMeta struct {
	Title         string
	LogicalPages  int
	PhysicalPages int
	Flows         []string // names of flows emitted, in order of appearance
}

func (dm *DocumentMeta) sawFlow(name string) {
	for _, f := range dm.Flows {
		if f == name {
			return
		}
	}
	dm.Flows = append(dm.Flows, name)
}
