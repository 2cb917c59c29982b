package resources

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"sync"

	"github.com/npillmayer/tyse/core/dimen"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// DefaultDPI is the resolution used for images without further information.
const DefaultDPI = 96

// ErrNoSource is returned if a resource is unknown and no way to open it
// has been supplied.
var ErrNoSource = errors.New("no source for resource")

// Opener opens the content of a resource.
type Opener func() (io.ReadCloser, error)

// ImageInfo is what the manager knows about an image.
type ImageInfo struct {
	Format        string // e.g. "png"
	Pixels        image.Point
	Width, Height dimen.DU // natural size
}

// Manager is a shared, internally synchronized resource registry.
type Manager struct {
	dpi    int
	mx     sync.RWMutex
	images map[string]ImageInfo
}

// NewManager creates a manager converting pixels at dpi dots per inch.
// dpi ≤ 0 selects DefaultDPI.
func NewManager(dpi int) *Manager {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Manager{dpi: dpi, images: make(map[string]ImageInfo)}
}

// DPI returns the resolution for pixel conversion.
func (m *Manager) DPI() int {
	return m.dpi
}

// ImageSize returns the natural size of the image registered as key. If the
// image is not yet known, open is called to read the image header. open may
// be nil for images known to be cached.
func (m *Manager) ImageSize(key string, open Opener) (ImageInfo, error) {
	m.mx.RLock()
	info, ok := m.images[key]
	m.mx.RUnlock()
	if ok {
		return info, nil
	}
	if open == nil {
		return ImageInfo{}, fmt.Errorf("%w: %s", ErrNoSource, key)
	}
	info, err := m.decode(open)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("image %s: %w", key, err)
	}
	m.mx.Lock()
	defer m.mx.Unlock()
	if cached, ok := m.images[key]; ok { // concurrent decode won
		return cached, nil
	}
	m.images[key] = info
	tracer().Debugf("image %s: %s %dx%d px", key, info.Format, info.Pixels.X, info.Pixels.Y)
	return info, nil
}

func (m *Manager) decode(open Opener) (ImageInfo, error) {
	rc, err := open()
	if err != nil {
		return ImageInfo{}, err
	}
	defer rc.Close()
	cfg, format, err := image.DecodeConfig(rc)
	if err != nil {
		return ImageInfo{}, err
	}
	return ImageInfo{
		Format: format,
		Pixels: image.Pt(cfg.Width, cfg.Height),
		Width:  m.PixelsToDU(cfg.Width),
		Height: m.PixelsToDU(cfg.Height),
	}, nil
}

// PixelsToDU converts a pixel count to a length at the manager's
// resolution.
func (m *Manager) PixelsToDU(px int) dimen.DU {
	return dimen.DU(int64(px) * 72 * int64(dimen.PT) / int64(m.dpi))
}

// Cached returns the number of cached images.
func (m *Manager) Cached() int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return len(m.images)
}
