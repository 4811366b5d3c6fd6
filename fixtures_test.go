package gencode_test

import (
	"time"

	"github.com/zoobzio/gencode"
)

type level int

const (
	levelLow level = iota
	levelHigh
	levelExtreme
)

func (l level) String() string {
	switch l {
	case levelLow:
		return "LOW"
	case levelHigh:
		return "HIGH"
	case levelExtreme:
		return "EXTREME"
	default:
		return "level?"
	}
}

type shape struct {
	Circle *float64 `gencode:"circle"`
	Label  *string  `gencode:"label"`
}

type inner struct {
	Depth int `gencode:"depth"`
}

type widget struct {
	Name     string            `gencode:"name"`
	Count    int32             `gencode:"count,optional"`
	Size     uint16            `gencode:"size,optional"`
	Ratio    float64           `gencode:"ratio,optional"`
	Enabled  bool              `gencode:"enabled,optional"`
	Level    level             `gencode:"level,optional"`
	Shape    *shape            `gencode:"shape"`
	Inner    inner             `gencode:"inner,optional"`
	Tags     []string          `gencode:"tags,optional"`
	Levels   []level           `gencode:"levels,optional"`
	Attrs    map[string]int    `gencode:"attrs,optional"`
	Raw      []byte            `gencode:"raw,optional"`
	Created  time.Time         `gencode:"created,optional"`
	Extra    any               `gencode:"extra,optional"`
	Scratch  string            `gencode:"-"`
	Children []inner           `gencode:"children,optional"`
	Notes    map[string]string `gencode:"notes,optional"`
}

func (w *widget) SetDefaults() {
	w.Count = 7
}

func widgetMapping() gencode.NameMapping {
	return gencode.MustNameMapping(
		gencode.Name("name", "Name"),
		gencode.Name("count", "Count"),
		gencode.Name("size", "Size"),
		gencode.Name("ratio", "Ratio"),
		gencode.Name("enabled", "isEnabled"),
		gencode.Name("level", "lvl"),
		gencode.Name("shape", "shape"),
		gencode.Name("inner", "Inner"),
		gencode.Name("tags", "Tags"),
		gencode.Name("levels", "Levels"),
		gencode.Name("attrs", "Attrs"),
		gencode.Name("raw", "Raw"),
		gencode.Name("created", "Created"),
		gencode.Name("extra", "Extra"),
		gencode.Name("children", "Children"),
		gencode.Name("notes", "Notes"),
	)
}

func levelMapping() gencode.NameMapping {
	return gencode.MustNameMapping(
		gencode.Name("LOW", "low"),
		gencode.Name("HIGH", "High"),
		gencode.Name("EXTREME", "extreme-LEVEL"),
	)
}

func shapeMapping() gencode.NameMapping {
	return gencode.MustNameMapping(
		gencode.Name("circle", "Circle"),
		gencode.Name("label", "Label"),
	)
}

func innerMapping() gencode.NameMapping {
	return gencode.MustNameMapping(gencode.Name("depth", "Depth"))
}

func newTestRegistry() *gencode.Registry {
	return gencode.MustRegistry(
		gencode.Record[widget](widgetMapping()),
		gencode.Record[inner](innerMapping()),
		gencode.Enumeration(levelMapping(), levelLow, levelHigh, levelExtreme),
		gencode.Choice[shape](shapeMapping()),
	)
}
