// Package diagram lays out the schematic assembly drawing of a planter box
// as plain data for any renderer to consume.
package diagram

import (
	"errors"
	"fmt"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ErrNotComputed is returned when composing a layout without parts.
var ErrNotComputed = errors.New("layout has not been computed")

const (
	canvasWidth  = 700
	canvasHeight = 340
	scale        = 5 // canvas units per inch

	frontX = 60
	sideX  = 300
	panelY = 50
	legTop = panelY - 5

	bottomX     = 510
	bottomY     = 90
	slatSpacing = 5

	cornerX = 60
	cornerY = 220

	defaultRimHeight = 10
)

// Section titles.
const (
	TitleFront  = "Front Panel Assembly"
	TitleSide   = "Side Panel Assembly"
	TitleBottom = "Bottom View (Slats)"
	TitleCorner = "Top Rim Corner (Top View)"
)

// Palette.
const (
	colorPanelFront  = "#ffe5b4"
	colorPanelSide   = "#ffdca8"
	colorPanelStroke = "#986a3d"
	colorLegFront    = "#d2a56d"
	colorLegSide     = "#cfac7e"
	colorLegStroke   = "#7b6241"
	colorRim         = "#ffe6ba"
	colorRimAlt      = "#ffd89a"
	colorRimStroke   = "#b1976e"
	colorCorner      = "#d4a574"
	colorCornerEdge  = "#8b6f47"
	colorOutline     = "#aaa"
	colorSlat        = "#fff1cf"
	colorSlatStroke  = "#ad893c"
	colorCallout     = "#7d5a3a"
	colorTitle       = "#444"
	colorDimension   = "#666"
)

// geometry holds the scaled sizes shared by the views.
type geometry struct {
	panelWidth, panelHeight float64
	legWidth, legHeight     float64
	rimHeight               float64
	rimLengthRun            float64
	rimWidthRun             float64
	sidePanelWidth          float64
	slatLength, slatHeight  float64
}

func newGeometry(box model.BoxConfig, parts model.Parts) geometry {
	g := geometry{
		panelWidth:     parts.SidePanelLength.Length * scale,
		panelHeight:    parts.SidePanelLength.Width * scale * 0.7,
		legWidth:       box.LegWidth * scale,
		legHeight:      box.Height * scale,
		sidePanelWidth: box.InteriorWidth * scale * 0.5,
		slatLength:     parts.BottomSlat.Length * scale,
		slatHeight:     parts.BottomSlat.Width * scale * 0.4,
	}

	g.rimHeight = defaultRimHeight
	g.rimLengthRun = g.panelWidth
	g.rimWidthRun = g.panelWidth
	if parts.Rim.Present {
		if h := parts.Rim.Length.Width * scale; h != 0 {
			g.rimHeight = h
		}
		if l := parts.Rim.Length.Length * scale; l != 0 {
			g.rimLengthRun = l
		}
		if l := parts.Rim.Width.Length * scale; l != 0 {
			g.rimWidthRun = l
		}
	}
	return g
}

// Compose builds the assembly drawing for a computed layout: front and side
// assemblies, the bottom slats, and the rim corner when the box has a rim.
func Compose(layout model.Layout) (Scene, error) {
	if !layout.Computed() || layout.Box == nil {
		return Scene{}, ErrNotComputed
	}
	box := *layout.Box
	parts := *layout.Parts
	g := newGeometry(box, parts)

	scene := Scene{
		Width:  canvasWidth,
		Height: canvasHeight,
		Sections: []Section{
			frontView(g, layout.PanelRows, parts.Rim.Present),
			sideView(g, layout.PanelRows, parts.Rim.Present),
			bottomView(g, box, layout.BottomSlats),
		},
	}
	if parts.Rim.Present {
		scene.Sections = append(scene.Sections, cornerView(g, parts.Rim))
	}
	return scene, nil
}

func rect(x, y, w, h float64, fill, stroke string, strokeWidth float64) Element {
	return Element{Kind: KindRect, X: x, Y: y, Width: w, Height: h, Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth}
}

func callout(x, y, size float64, symbol string) Element {
	return Element{Kind: KindText, X: x, Y: y, FontSize: size, Fill: colorCallout, Weight: "bold", Content: symbol}
}

func label(x, y, size float64, fill, content string) Element {
	return Element{Kind: KindText, X: x, Y: y, FontSize: size, Fill: fill, Content: content}
}

func frontView(g geometry, rows int, rim bool) Section {
	var els []Element
	for i := 0; i < rows; i++ {
		els = append(els, rect(frontX, panelY+float64(i)*g.panelHeight, g.panelWidth, g.panelHeight,
			colorPanelFront, colorPanelStroke, 2))
	}
	els = append(els,
		rect(frontX-g.legWidth/2, legTop, g.legWidth, g.legHeight, colorLegFront, colorLegStroke, 2),
		rect(frontX+g.panelWidth-g.legWidth/2, legTop, g.legWidth, g.legHeight, colorLegFront, colorLegStroke, 2),
	)
	if rim {
		els = append(els, rect(frontX-g.legWidth/2, legTop-g.rimHeight, g.rimLengthRun, g.rimHeight,
			colorRim, colorRimStroke, 1))
	}
	els = append(els,
		callout(frontX+g.panelWidth/2, panelY+g.panelHeight+5, 19, model.PartSidePanelLength.Symbol()),
		callout(frontX-g.legWidth-10, panelY+g.legHeight/2+5, 19, model.PartLeg.Symbol()),
	)
	if rim {
		els = append(els, callout(frontX+g.panelWidth+15, legTop, 17, model.PartTopRimLength.Symbol()))
	}
	els = append(els, label(75, 32, 14, colorTitle, TitleFront))
	return Section{Title: TitleFront, Elements: els}
}

// sideView draws the short wall with its width compressed by half and the
// legs seen edge-on.
func sideView(g geometry, rows int, rim bool) Section {
	sideLeg := g.legWidth * 0.7

	var els []Element
	for i := 0; i < rows; i++ {
		els = append(els, rect(sideX, panelY+float64(i)*g.panelHeight, g.sidePanelWidth, g.panelHeight,
			colorPanelSide, colorPanelStroke, 2))
	}
	els = append(els,
		rect(sideX-sideLeg, legTop, sideLeg, g.legHeight, colorLegSide, colorLegStroke, 2),
		rect(sideX+g.sidePanelWidth, legTop, sideLeg, g.legHeight, colorLegSide, colorLegStroke, 2),
	)
	if rim {
		els = append(els, rect(sideX-sideLeg, legTop-g.rimHeight, g.sidePanelWidth+g.legWidth*1.4, g.rimHeight,
			colorRim, colorRimStroke, 1))
	}
	els = append(els,
		callout(sideX+g.sidePanelWidth/2-5, panelY+g.panelHeight+5, 19, model.PartSidePanelWidth.Symbol()),
		callout(sideX-g.legWidth-10, panelY+g.legHeight/2+5, 19, model.PartLeg.Symbol()),
	)
	if rim {
		els = append(els, callout(sideX+g.sidePanelWidth+20, legTop, 17, model.PartTopRimWidth.Symbol()))
	}
	els = append(els, label(302, 32, 14, colorTitle, TitleSide))
	return Section{Title: TitleSide, Elements: els}
}

func bottomView(g geometry, box model.BoxConfig, slats int) Section {
	outline := rect(bottomX, bottomY, box.InteriorLength*scale, box.InteriorWidth*scale, "none", colorOutline, 2)
	outline.Dash = "6,4"

	els := []Element{outline}
	for i := 0; i < slats; i++ {
		els = append(els, rect(bottomX, bottomY+float64(i)*(g.slatHeight+slatSpacing), g.slatLength, g.slatHeight,
			colorSlat, colorSlatStroke, 2))
	}
	els = append(els,
		callout(bottomX+g.slatLength/2-5, bottomY+g.slatHeight-2, 19, model.PartBottomSlat.Symbol()),
		label(520, 80, 14, colorTitle, TitleBottom),
	)
	return Section{Title: TitleBottom, Elements: els}
}

// cornerView shows, from above, how the two rim runs meet over a leg. Both
// runs are drawn at 60% of their length.
func cornerView(g geometry, rim model.RimParts) Section {
	return Section{
		Title: TitleCorner,
		Elements: []Element{
			label(70, 200, 14, colorTitle, TitleCorner),
			rect(cornerX, cornerY, g.rimLengthRun*0.6, g.rimHeight, colorRim, colorRimStroke, 2),
			rect(cornerX, cornerY, g.rimHeight, g.rimWidthRun*0.6, colorRimAlt, colorRimStroke, 2),
			rect(cornerX, cornerY, g.rimHeight, g.rimHeight, colorCorner, colorCornerEdge, 2),
			callout(cornerX+g.rimLengthRun*0.3, cornerY+g.rimHeight/2+5, 17, model.PartTopRimLength.Symbol()),
			callout(cornerX+g.rimHeight/2-4, cornerY+g.rimWidthRun*0.3, 17, model.PartTopRimWidth.Symbol()),
			label(cornerX+g.rimLengthRun*0.6+10, cornerY+g.rimHeight/2+5, 11, colorDimension,
				fmt.Sprintf("%s\"", model.FormatNumber(rim.Length.Length))),
			label(cornerX+g.rimHeight+5, cornerY+g.rimWidthRun*0.6+15, 11, colorDimension,
				fmt.Sprintf("%s\"", model.FormatNumber(rim.Width.Length))),
		},
	}
}
