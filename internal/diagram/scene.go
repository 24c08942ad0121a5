package diagram

import "math"

// ElementKind tags the primitive an Element describes.
type ElementKind string

const (
	KindRect ElementKind = "rect"
	KindText ElementKind = "text"
)

// Element is one drawing primitive in canvas units. Rect elements use
// Width and Height; text elements use FontSize, Weight and Content and are
// anchored at their baseline start (X, Y).
type Element struct {
	Kind        ElementKind `json:"type"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Width       float64     `json:"width,omitempty"`
	Height      float64     `json:"height,omitempty"`
	Fill        string      `json:"fill,omitempty"`
	Stroke      string      `json:"stroke,omitempty"`
	StrokeWidth float64     `json:"strokeWidth,omitempty"`
	Dash        string      `json:"strokeDasharray,omitempty"`
	FontSize    float64     `json:"fontSize,omitempty"`
	Weight      string      `json:"fontWeight,omitempty"`
	Content     string      `json:"content,omitempty"`
}

// Section groups the elements of one view.
type Section struct {
	Title    string    `json:"title"`
	Elements []Element `json:"elements"`
}

// Scene is a renderer-independent description of the assembly drawing.
type Scene struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Sections []Section `json:"sections"`
}

// Box is an axis-aligned extent.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the extent of every element in the scene. Text counts as
// its anchor point only. An empty scene has a zero Box.
func (s Scene) Bounds() Box {
	b := Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	empty := true
	for _, sec := range s.Sections {
		for _, el := range sec.Elements {
			empty = false
			b.MinX = math.Min(b.MinX, el.X)
			b.MinY = math.Min(b.MinY, el.Y)
			b.MaxX = math.Max(b.MaxX, el.X+el.Width)
			b.MaxY = math.Max(b.MaxY, el.Y+el.Height)
		}
	}
	if empty {
		return Box{}
	}
	return b
}

// Rects returns the rect elements of a section, in drawing order.
func (sec Section) Rects() []Element {
	var out []Element
	for _, el := range sec.Elements {
		if el.Kind == KindRect {
			out = append(out, el)
		}
	}
	return out
}

// Section returns the section with the given title.
func (s Scene) Section(title string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Title == title {
			return sec, true
		}
	}
	return Section{}, false
}
