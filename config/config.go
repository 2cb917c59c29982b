package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/pagecore/css"
	"github.com/npillmayer/pagecore/style"
	"github.com/npillmayer/tyse/core/dimen"
	"gopkg.in/yaml.v3"
)

// Configuration is read-only key/value configuration.
type Configuration interface {
	IsSet(key string) bool
	GetString(key string) string
	GetBool(key string) bool
}

// Configuration keys.
const (
	KeyFontStorage = "report.output.font-storage"
	KeyFlows       = "report.output.flows"
	KeyPageWidth   = "report.page.width"
	KeyPageHeight  = "report.page.height"
	KeyTitle       = "report.title"
	KeyCellWidth   = "report.text.cell-width"
	KeyImageDPI    = "report.image.dpi"
)

// Defaults holds the values used for keys which are not set.
var Defaults = map[string]string{
	KeyFontStorage: "embed",
	KeyFlows:       "all",
	KeyPageWidth:   "210mm",
	KeyPageHeight:  "297mm",
	KeyTitle:       "",
	KeyCellWidth:   "6pt",
	KeyImageDPI:    "96",
}

// String returns the value for key, or its default.
func String(c Configuration, key string) string {
	if c != nil && c.IsSet(key) {
		return c.GetString(key)
	}
	return Defaults[key]
}

// Dimen returns the value for key as a length, e.g. "210mm".
func Dimen(c Configuration, key string) (dimen.DU, error) {
	v := String(c, key)
	d, err := css.ParseDimen(style.Property(v))
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		return du, nil
	}
	return 0, fmt.Errorf("config %s: not an absolute length: %q", key, v)
}

// Int returns the value for key as an integer.
func Int(c Configuration, key string) (int, error) {
	v := String(c, key)
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	return i, nil
}

// --- Conf ------------------------------------------------------------------

// Conf is a map-based configuration with dotted keys.
type Conf map[string]interface{}

// IsSet is true if key has a value.
func (c Conf) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString returns the value of key as a string.
func (c Conf) GetString(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// GetBool returns the value of key as a boolean.
func (c Conf) GetBool(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// LoadYAML reads a YAML document and flattens it into dotted keys.
func LoadYAML(r io.Reader) (Conf, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Conf{}, nil
		}
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	c := Conf{}
	flatten(c, "", doc)
	tracer().Debugf("loaded %d configuration keys", len(c))
	return c, nil
}

func flatten(c Conf, prefix string, m map[string]interface{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(c, key, sub)
			continue
		}
		c[key] = v
	}
}
