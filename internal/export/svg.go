package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/piwi3910/PlanterCut/internal/diagram"
)

// svgPrecision is the number of SVG user units per scene unit. The SVG
// canvas only takes integer coordinates, so the scene is drawn at this
// multiple and scaled back down with the view box.
const svgPrecision = 4

// errWriter remembers the first write error, since the SVG canvas does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func su(v float64) int {
	return int(math.Round(v * svgPrecision))
}

// WriteSVG renders an assembly scene as a standalone SVG document.
func WriteSVG(w io.Writer, scene diagram.Scene) error {
	if len(scene.Sections) == 0 {
		return ErrNothingToExport
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := int(math.Round(scene.Width)), int(math.Round(scene.Height))
	canvas.Startview(width, height, 0, 0, su(scene.Width), su(scene.Height))

	for i, sec := range scene.Sections {
		canvas.Gid(fmt.Sprintf("section-%d", i+1))
		canvas.Title(sec.Title)
		for _, el := range sec.Elements {
			switch el.Kind {
			case diagram.KindRect:
				canvas.Rect(su(el.X), su(el.Y), su(el.Width), su(el.Height), rectStyle(el))
			case diagram.KindText:
				canvas.Text(su(el.X), su(el.Y), el.Content, textStyle(el))
			}
		}
		canvas.Gend()
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func rectStyle(el diagram.Element) string {
	strokeWidth := el.StrokeWidth
	if strokeWidth == 0 {
		strokeWidth = 2
	}
	style := []string{
		"fill:" + orNone(el.Fill),
		"stroke:" + orNone(el.Stroke),
		fmt.Sprintf("stroke-width:%d", su(strokeWidth)),
	}
	if el.Dash != "" {
		style = append(style, "stroke-dasharray:"+scaleDash(el.Dash))
	}
	return strings.Join(style, ";")
}

func textStyle(el diagram.Element) string {
	style := []string{
		"font-family:sans-serif",
		fmt.Sprintf("font-size:%dpx", su(el.FontSize)),
		"fill:" + orNone(el.Fill),
	}
	if el.Weight != "" {
		style = append(style, "font-weight:"+el.Weight)
	}
	return strings.Join(style, ";")
}

func orNone(c string) string {
	if c == "" {
		return "none"
	}
	return c
}

// scaleDash multiplies every number of a dash array like "6,4".
func scaleDash(dash string) string {
	values := parseDash(dash)
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(su(v))
	}
	return strings.Join(fields, ",")
}
