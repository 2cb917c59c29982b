package style

// User-agent defaults for the properties relevant to box geometry.
var boxDefaults = map[string]Property{
	"margin-top":          "0",
	"margin-left":         "0",
	"margin-right":        "0",
	"margin-bottom":       "0",
	"padding-top":         "0",
	"padding-left":        "0",
	"padding-right":       "0",
	"padding-bottom":      "0",
	"border-top-width":    "medium",
	"border-left-width":   "medium",
	"border-right-width":  "medium",
	"border-bottom-width": "medium",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"max-width":           "none",
	"white-space":         "normal",
}

// DefaultProperty returns the user-agent default property for a given key,
// or NullStyle for properties without a known default.
func DefaultProperty(key string) Property {
	if p, ok := boxDefaults[key]; ok {
		return p
	}
	return NullStyle
}
