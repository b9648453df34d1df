package render

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	schlayout "github.com/OpenTraceLab/schlayout/pkg/layout"
)

// Global theme for text rendering
var defaultTheme = material.NewTheme()

func init() {
	defaultTheme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
}

// RenderResult renders a placement result: symbol boxes, designator
// text, the debug overlay when present, and failure markers.
func RenderResult(gtx layout.Context, camera *Camera, res *schlayout.Result, colors *LayoutColors) {
	if res == nil {
		return
	}

	// 1. Symbol bounding boxes
	for _, sym := range res.Symbols {
		strokeBox(gtx, camera, sym.BBox, colors.SymbolBody, 2.0)
	}

	// 2. Overlay rectangles (thinner, colored per region)
	for _, rect := range res.Overlay {
		strokeBox(gtx, camera, rect.Box, overlayColor(rect.Region, colors), 1.0)
	}

	// 3. Failure markers at the last attempted position
	for _, f := range res.Failures {
		drawFailureMarker(gtx, camera, f.LastPosition, colors.Failure)
	}

	// 4. Designator text (on top of everything)
	for _, sym := range res.Symbols {
		c := colors.Designator
		if sym.DesignatorFallback {
			c = colors.Fallback
		}
		drawText(gtx, camera, sym.DesignatorPos, sym.Designator, c)
	}
}

// ContentBounds returns the box enclosing everything the result draws.
// Used to fit the camera on startup.
func ContentBounds(res *schlayout.Result) geometry.BoundingBox {
	bb := geometry.NewBoundingBox()
	if res == nil {
		return bb
	}
	for _, sym := range res.Symbols {
		bb.ExpandBox(sym.BBox)
	}
	for _, rect := range res.Overlay {
		bb.ExpandBox(rect.Box)
	}
	for _, f := range res.Failures {
		bb.Expand(f.LastPosition)
	}
	return bb
}

func overlayColor(region schlayout.Region, colors *LayoutColors) color.NRGBA {
	switch region {
	case schlayout.RegionBody:
		return colors.OverlayBody
	case schlayout.RegionPinLabels:
		return colors.OverlayPinLabels
	case schlayout.RegionDesignator:
		return colors.OverlayDesignator
	}
	return colors.OverlayBody
}

// strokeBox draws the outline of a world-space box
func strokeBox(gtx layout.Context, camera *Camera, box geometry.BoundingBox, c color.NRGBA, width float32) {
	if box.IsEmpty() {
		return
	}

	x0, y0 := camera.WorldToScreen(box.Min)
	x1, y1 := camera.WorldToScreen(box.Max)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x0), float32(y0)))
	path.LineTo(f32.Pt(float32(x1), float32(y0)))
	path.LineTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x0), float32(y1)))
	path.Close()

	paint.FillShape(gtx.Ops, c, clip.Stroke{
		Path:  path.End(),
		Width: width,
	}.Op())
}

// drawFailureMarker draws an X at a world position
func drawFailureMarker(gtx layout.Context, camera *Camera, pos geometry.Position, c color.NRGBA) {
	const markerSize = 12.0
	const halfSize = markerSize / 2.0

	x, y := camera.WorldToScreen(pos)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x-halfSize), float32(y-halfSize)))
	path.LineTo(f32.Pt(float32(x+halfSize), float32(y+halfSize)))
	path.MoveTo(f32.Pt(float32(x+halfSize), float32(y-halfSize)))
	path.LineTo(f32.Pt(float32(x-halfSize), float32(y+halfSize)))

	paint.FillShape(gtx.Ops, c, clip.Stroke{
		Path:  path.End(),
		Width: 2.0,
	}.Op())
}

// drawText renders a text string anchored at a world position
func drawText(gtx layout.Context, camera *Camera, pos geometry.Position, textStr string, c color.NRGBA) {
	if textStr == "" {
		return
	}

	x, y := camera.WorldToScreen(pos)

	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	lbl := material.Label(defaultTheme, unit.Sp(12), textStr)
	lbl.Color = c
	lbl.Alignment = text.Start
	lbl.Layout(gtx)
}
