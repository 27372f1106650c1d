package reducer

import (
	"slices"

	"github.com/aretw0/reducto/pkg/domain"
)

// Shape describes how a reducer is assembled, for inspection tools.
// Raw Reducer functions are opaque and have an empty Shape.
type Shape struct {
	Kinds  []string     `json:"kinds,omitempty" yaml:"kinds,omitempty"`
	Fields []FieldShape `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FieldShape is one part of a composite reducer.
type FieldShape struct {
	Name  string `json:"name" yaml:"name"`
	Shape Shape  `json:"shape" yaml:"shape"`
}

type shaper interface {
	Shape() Shape
}

// ShapeOf returns the Shape of src.
func ShapeOf[S any](src Source[S]) Shape {
	return shapeOf(src)
}

func shapeOf(src any) Shape {
	if s, ok := src.(shaper); ok {
		return s.Shape()
	}
	return Shape{}
}

// Shape lists the handled action kinds, sorted by name.
func (r *SimpleReducer[S]) Shape() Shape {
	kinds := make([]string, 0, len(r.handlers))
	for kind := range r.handlers {
		if kind == domain.KindFor[domain.InitAction]() {
			continue
		}
		kinds = append(kinds, kind.String())
	}
	slices.Sort(kinds)
	return Shape{Kinds: kinds}
}

// Shape lists the registered fields in registration order.
func (c *CompositeReducer[S]) Shape() Shape {
	fields := make([]FieldShape, len(c.parts))
	for i, p := range c.parts {
		fields[i] = FieldShape{Name: p.name, Shape: shapeOf(p.child)}
	}
	return Shape{Fields: fields}
}

// AllKinds returns every kind handled anywhere in the shape, sorted and deduplicated.
func (s Shape) AllKinds() []string {
	var kinds []string
	var walk func(Shape)
	walk = func(s Shape) {
		kinds = append(kinds, s.Kinds...)
		for _, f := range s.Fields {
			walk(f.Shape)
		}
	}
	walk(s)
	slices.Sort(kinds)
	return slices.Compact(kinds)
}
