package style

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     margin-left: 4pt
//
// a property value of "4pt" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(string(p)))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":          PGMargins, // Margins
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding-top":         PGPadding, // Padding
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-top-width":    PGBorder, // Border
	"border-left-width":   PGBorder,
	"border-right-width":  PGBorder,
	"border-bottom-width": PGBorder,
	"border-top-style":    PGBorder,
	"border-left-style":   PGBorder,
	"border-right-style":  PGBorder,
	"border-bottom-style": PGBorder,
	"border-top-color":    PGBorder,
	"border-left-color":   PGBorder,
	"border-right-color":  PGBorder,
	"border-bottom-color": PGBorder,
	"width":               PGDimension, // Dimension
	"height":              PGDimension,
	"max-width":           PGDimension,
	"white-space":         PGText, // Text
	"word-spacing":        PGText,
	"letter-spacing":      PGText,
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fields)
	case "padding":
		return feazeCompound4("padding", "", fields)
	case "border-color":
		return feazeCompound4("border", "color", fields)
	case "border-width":
		return feazeCompound4("border", "width", fields)
	case "border-style":
		return feazeCompound4("border", "style", fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompoundProperty is true for shortcut properties SplitCompoundProperty
// knows how to split.
func IsCompoundProperty(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
// Values are given in order top, right, bottom, left.
func feazeCompound4(pre string, suf string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	var v [4]string // top, right, bottom, left
	switch l {
	case 1:
		v = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		v = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		v = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		v = [4]string{fields[0], fields[1], fields[2], fields[3]}
	}
	r := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		r[i] = KeyValue{p(pre, suf, dir), Property(v[i])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// Property maps are split into property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	names := make([]string, 0, pmap.Size())
	for n := range pmap.m {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		s += pmap.m[n].String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// GetPropertyValue returns the property value for a given key, falling
// back to the user-agent default if the property is not set.
func (pmap *PropertyMap) GetPropertyValue(key string) Property {
	if p, ok := pmap.Property(key); ok && !p.IsEmpty() {
		return p
	}
	return DefaultProperty(key)
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("margin-left", "4pt")
//
// Compound properties (like "padding") are split into their components.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if IsCompoundProperty(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Errorf("ignoring property %s: %v", key, err)
			return
		}
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}
