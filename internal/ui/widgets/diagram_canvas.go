package widgets

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlanterCut/internal/diagram"
)

// DiagramCanvas renders an assembly drawing scene scaled to fit a box.
// Dashed outlines are drawn solid.
type DiagramCanvas struct {
	widget.BaseWidget
	scene     diagram.Scene
	maxWidth  float32
	maxHeight float32
}

func NewDiagramCanvas(scene diagram.Scene, maxW, maxH float32) *DiagramCanvas {
	dc := &DiagramCanvas{
		scene:     scene,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (dc *DiagramCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &diagramCanvasRenderer{dc: dc}
	r.rebuild()
	return r
}

// scale fits the scene into the max bounds without upscaling.
func (dc *DiagramCanvas) scale() float32 {
	if dc.scene.Width <= 0 || dc.scene.Height <= 0 {
		return 1
	}
	s := min(dc.maxWidth/float32(dc.scene.Width), dc.maxHeight/float32(dc.scene.Height))
	return min(s, 1)
}

type diagramCanvasRenderer struct {
	dc      *DiagramCanvas
	objects []fyne.CanvasObject
}

func (r *diagramCanvasRenderer) rebuild() {
	r.objects = nil
	s := r.dc.scale()

	bg := canvas.NewRectangle(color.White)
	bg.Resize(fyne.NewSize(float32(r.dc.scene.Width)*s, float32(r.dc.scene.Height)*s))
	r.objects = append(r.objects, bg)

	for _, sec := range r.dc.scene.Sections {
		for _, el := range sec.Elements {
			switch el.Kind {
			case diagram.KindRect:
				r.objects = append(r.objects, sceneRect(el, s))
			case diagram.KindText:
				r.objects = append(r.objects, sceneText(el, s))
			}
		}
	}
}

func sceneRect(el diagram.Element, s float32) *canvas.Rectangle {
	fill, ok := ParseHexColor(el.Fill)
	if !ok {
		fill = color.NRGBA{}
	}
	rect := canvas.NewRectangle(fill)
	if stroke, ok := ParseHexColor(el.Stroke); ok {
		rect.StrokeColor = stroke
		w := el.StrokeWidth
		if w == 0 {
			w = 2
		}
		rect.StrokeWidth = float32(w) * s
	}
	rect.Resize(fyne.NewSize(float32(el.Width)*s, float32(el.Height)*s))
	rect.Move(fyne.NewPos(float32(el.X)*s, float32(el.Y)*s))
	return rect
}

// sceneText converts a baseline-anchored scene label to a fyne text, which
// is positioned by its top-left corner.
func sceneText(el diagram.Element, s float32) *canvas.Text {
	col, ok := ParseHexColor(el.Fill)
	if !ok {
		col = color.NRGBA{A: 255}
	}
	size := float32(el.FontSize) * s
	text := canvas.NewText(el.Content, col)
	text.TextSize = size
	text.TextStyle = fyne.TextStyle{Bold: el.Weight == "bold"}
	text.Move(fyne.NewPos(float32(el.X)*s, float32(el.Y)*s-size))
	return text
}

// ParseHexColor parses #rgb and #rrggbb colors. "none" and anything else
// unparseable report false.
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func (r *diagramCanvasRenderer) Layout(size fyne.Size)        {}
func (r *diagramCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *diagramCanvasRenderer) Destroy()                     {}
func (r *diagramCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *diagramCanvasRenderer) MinSize() fyne.Size {
	s := r.dc.scale()
	return fyne.NewSize(float32(r.dc.scene.Width)*s, float32(r.dc.scene.Height)*s)
}

// RenderDiagram wraps the scene in a scroll container, or explains why
// there is nothing to draw.
func RenderDiagram(scene diagram.Scene, err error) fyne.CanvasObject {
	if err != nil {
		return widget.NewLabel("No diagram: " + err.Error())
	}
	return container.NewScroll(NewDiagramCanvas(scene, 900, 1200))
}
