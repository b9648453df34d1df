// layout-viewer displays a placement result JSON file: symbol boxes,
// designator labels, failure markers and the debug overlay when the
// result carries one.
//
// Usage: layout-viewer <layout.json>
//
// Controls: left-drag to pan, scroll to zoom, F to fit, R to reload,
// Ctrl+T to toggle the theme, Q or Esc to quit.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	schlayout "github.com/OpenTraceLab/schlayout/pkg/layout"
	"github.com/OpenTraceLab/schlayout/pkg/render"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: layout-viewer <layout.json>")
		os.Exit(2)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Layout Viewer"))
		w.Option(app.Size(unit.Dp(1200), unit.Dp(800)))

		if err := run(w, os.Args[1]); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type ViewerApp struct {
	window *app.Window
	theme  *material.Theme

	result     *schlayout.Result
	camera     *render.Camera
	colorTheme render.Theme
	colors     *render.LayoutColors

	// UI widgets
	themeBtn widget.Clickable
	fitBtn   widget.Clickable

	// Mouse interaction
	lastPointerPos f32.Point
	isDragging     bool

	filepath string
}

func run(w *app.Window, filepath string) error {
	viewer := &ViewerApp{
		window:     w,
		theme:      material.NewTheme(),
		camera:     render.NewCamera(1200, 800),
		colorTheme: render.ThemeLight,
		filepath:   filepath,
	}
	viewer.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	viewer.colors = render.GetLayoutColors(viewer.colorTheme)

	viewer.loadResult()

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			viewer.camera.UpdateScreenSize(e.Size.X, e.Size.Y)
			viewer.handleInput(gtx)
			viewer.layout(gtx)
			e.Frame(&ops)
		}
	}
}

func (v *ViewerApp) handleInput(gtx layout.Context) {
	if v.themeBtn.Clicked(gtx) {
		v.toggleTheme()
	}

	if v.fitBtn.Clicked(gtx) {
		v.fitToView()
	}

	// Ctrl+T for theme toggle
	for {
		ev, ok := gtx.Event(key.Filter{Name: "T", Required: key.ModShortcut})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.toggleTheme()
		}
	}

	// F for fit to view
	for {
		ev, ok := gtx.Event(key.Filter{Name: "F"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.fitToView()
		}
	}

	// R to reload the result file
	for {
		ev, ok := gtx.Event(key.Filter{Name: "R"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			v.loadResult()
			v.window.Invalidate()
		}
	}

	// Q or Escape to quit
	for {
		ev, ok := gtx.Event(key.Filter{Name: "Q"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			os.Exit(0)
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			os.Exit(0)
		}
	}

	// Handle mouse events
	for {
		ev, ok := gtx.Event(
			pointer.Filter{
				Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
			},
		)
		if !ok {
			break
		}

		if pe, ok := ev.(pointer.Event); ok {
			switch pe.Kind {
			case pointer.Press:
				if pe.Buttons == pointer.ButtonPrimary {
					v.isDragging = true
					v.lastPointerPos = pe.Position
				}

			case pointer.Drag:
				if v.isDragging && pe.Buttons == pointer.ButtonPrimary {
					deltaX := float64(pe.Position.X - v.lastPointerPos.X)
					deltaY := float64(pe.Position.Y - v.lastPointerPos.Y)
					v.camera.Pan(deltaX, deltaY)
					v.lastPointerPos = pe.Position
					v.window.Invalidate()
				}

			case pointer.Release:
				v.isDragging = false

			case pointer.Scroll:
				zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
				v.camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
				v.window.Invalidate()
			}
		}
	}
}

func (v *ViewerApp) loadResult() {
	data, err := os.ReadFile(v.filepath)
	if err != nil {
		log.Printf("Error reading result: %v", err)
		return
	}

	var res schlayout.Result
	if err := json.Unmarshal(data, &res); err != nil {
		log.Printf("Error decoding result: %v", err)
		return
	}

	v.result = &res
	v.window.Option(app.Title("Layout Viewer - " + v.filepath))
	v.fitToView()

	log.Printf("Loaded layout: %s", v.filepath)
	log.Printf("  Symbols: %d", len(res.Symbols))
	log.Printf("  Failures: %d", len(res.Failures))
	log.Printf("  Overlay rects: %d", len(res.Overlay))
}

func (v *ViewerApp) toggleTheme() {
	if v.colorTheme == render.ThemeLight {
		v.colorTheme = render.ThemeDark
	} else {
		v.colorTheme = render.ThemeLight
	}
	v.colors = render.GetLayoutColors(v.colorTheme)
	v.window.Invalidate()
}

func (v *ViewerApp) fitToView() {
	bbox := render.ContentBounds(v.result)
	if bbox.IsEmpty() {
		log.Println("Layout has no content to fit")
		return
	}

	v.camera.Fit(bbox)
	v.window.Invalidate()
}

func (v *ViewerApp) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, v.colors.Background)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.layoutToolbar(gtx)
		}),

		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return v.layoutCanvas(gtx)
		}),
	)
}

func (v *ViewerApp) layoutToolbar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Top: 8, Bottom: 8, Left: 8, Right: 8}

	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						themeName := v.colorTheme.String()
						btn := material.Button(v.theme, &v.themeBtn, "Theme: "+themeName+" (Ctrl+T)")
						return btn.Layout(gtx)
					}),

					layout.Rigid(layout.Spacer{Width: 8}.Layout),

					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := material.Button(v.theme, &v.fitBtn, "Fit (F)")
						return btn.Layout(gtx)
					}),
				)
			}),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if v.result == nil {
					label := material.Body1(v.theme, "No layout loaded")
					return label.Layout(gtx)
				}

				info := fmt.Sprintf("Symbols: %d | Failures: %d | Zoom: %.1fx",
					len(v.result.Symbols),
					len(v.result.Failures),
					v.camera.Zoom/10.0)
				label := material.Body1(v.theme, info)
				return label.Layout(gtx)
			}),
		)
	})
}

func (v *ViewerApp) layoutCanvas(gtx layout.Context) layout.Dimensions {
	if v.result == nil {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					title := material.H4(v.theme, "Layout Viewer")
					return title.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: 16}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					msg := material.Body1(v.theme, "Could not load "+v.filepath+", press R to retry")
					return msg.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: 8}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					msg := material.Body2(v.theme, "Controls: Left-drag to pan | Scroll to zoom | F to fit | R to reload | Q or Esc to quit")
					return msg.Layout(gtx)
				}),
			)
		})
	}

	render.RenderResult(gtx, v.camera, v.result, v.colors)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}
