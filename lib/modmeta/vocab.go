package modmeta

import (
	"slices"
	"strings"
)

// Shape is the geometry of a mod slot.
type Shape string

const (
	ShapeArrow    Shape = "arrow"
	ShapeTriangle Shape = "triangle"
	ShapeCross    Shape = "cross"
	ShapeCircle   Shape = "circle"
)

// Slot identifies one of the four observed primary stat columns of the
// mod meta report.
type Slot int

const (
	SlotReceiver Slot = iota
	SlotHoloArray
	SlotDataBus
	SlotMultiplexer
)

func (s Slot) String() string {
	switch s {
	case SlotReceiver:
		return "receiver"
	case SlotHoloArray:
		return "holo_array"
	case SlotDataBus:
		return "data_bus"
	case SlotMultiplexer:
		return "multiplexer"
	}
	return "unknown"
}

// ShapeRule binds a shape to the column it is reported in and the primary
// stats a mod of that shape can roll.
type ShapeRule struct {
	Shape     Shape
	Slot      Slot
	primaries []string
}

// Primaries returns a copy of the valid primary stats for the rule's shape.
func (r ShapeRule) Primaries() []string {
	return slices.Clone(r.primaries)
}

// Allows reports whether primary is a legal primary stat for the shape.
func (r ShapeRule) Allows(primary string) bool {
	return slices.Contains(r.primaries, strings.ToLower(strings.TrimSpace(primary)))
}

var shapeOrder = []Shape{ShapeArrow, ShapeTriangle, ShapeCross, ShapeCircle}

var shapeRules = map[Shape]ShapeRule{
	ShapeArrow: {
		Shape: ShapeArrow,
		Slot:  SlotReceiver,
		primaries: []string{
			"health", "protection", "accuracy", "speed",
			"offense", "critical avoidance", "defense",
		},
	},
	ShapeTriangle: {
		Shape: ShapeTriangle,
		Slot:  SlotHoloArray,
		primaries: []string{
			"critical chance", "critical damage", "defense",
			"health", "offense", "protection",
		},
	},
	ShapeCross: {
		Shape: ShapeCross,
		Slot:  SlotMultiplexer,
		primaries: []string{
			"offense", "tenacity", "protection",
			"potency", "defense", "health",
		},
	},
	ShapeCircle: {
		Shape:     ShapeCircle,
		Slot:      SlotDataBus,
		primaries: []string{"health", "protection"},
	},
}

// RuleFor looks up the rule of a shape, the second return value is false
// for an empty or unknown shape.
func RuleFor(shape Shape) (ShapeRule, bool) {
	rule, ok := shapeRules[shape]
	return rule, ok
}

// Shapes returns every shape in display order.
func Shapes() []Shape {
	return slices.Clone(shapeOrder)
}

// IsShape reports whether token names one of the four shapes.
func IsShape(token string) bool {
	_, ok := shapeRules[Shape(token)]
	return ok
}

var setNames = []string{
	"health",
	"critical chance",
	"critical damage",
	"tenacity",
	"potency",
	"speed",
	"offense",
	"defense",
}

var primaryNames = []string{
	"health",
	"protection",
	"accuracy",
	"speed",
	"offense",
	"critical avoidance",
	"defense",
	"critical chance",
	"critical damage",
	"tenacity",
	"potency",
}

// SetNames returns the normalized names of every mod set.
func SetNames() []string {
	return slices.Clone(setNames)
}

// PrimaryNames returns every primary stat a mod can roll on any shape.
func PrimaryNames() []string {
	return slices.Clone(primaryNames)
}

func IsSetName(name string) bool {
	return slices.Contains(setNames, name)
}

func IsPrimaryName(name string) bool {
	return slices.Contains(primaryNames, name)
}

// the report titles critical sets by their last word only
var setSynonyms = map[string]string{
	"chance": "critical chance",
	"damage": "critical damage",
}

// NormalizeSetName lowercases and trims a set name and expands the short
// forms the report uses. Normalizing an already normalized name is a no-op.
func NormalizeSetName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if full, ok := setSynonyms[name]; ok {
		return full
	}
	return name
}

// SetNameFromTitle turns a set icon title like "Critical Chance" into a
// normalized set name. It returns an empty string for a blank title.
func SetNameFromTitle(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return NormalizeSetName(fields[len(fields)-1])
}
