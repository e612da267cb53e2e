package main

import (
	"fmt"
	"math"
	"time"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/input"
	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/Carmen-Shannon/wayfinder/engine/monitoring"
	"github.com/Carmen-Shannon/wayfinder/engine/scene"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

const (
	tuiTickRate   = 60
	tuiWheelDelta = 100.0
)

// headingGlyphs are indexed by heading octant, clockwise from up.
var headingGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Ride the route in the terminal",
		Long: `Ride the route in the terminal.

Controls:
  Up/Down, W/S   - Step along the route
  Scroll         - Move along the route
  PgUp/PgDn      - Previous/next unit
  Home/End       - Jump to start/end
  Space          - Toggle autoplay
  Esc, q         - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			route, err := buildRoute(cfg)
			if err != nil {
				return err
			}
			rail := camera.NewRailController(route, cfg.RailOptions()...)
			s := scene.NewScene("tui", camera.NewCamera(), rail, scene.WithMinimap(cfg.MinimapOptions()...))
			defer s.Close()

			// Log lines would tear the terminal display.
			monitoring.SetLogger(nil)

			return runTUI(s)
		},
	}
}

type terminalView struct {
	screen tcell.Screen
	scene  scene.Scene
	rail   camera.RailController
	proj   minimap.Projector
}

func runTUI(s scene.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	v := &terminalView{screen: screen, scene: s, rail: s.Rail(), proj: s.Minimap()}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tuiTickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
			v.draw()
		}
	}
}

// handleEvent forwards terminal input to the scene queue. Returns false to quit.
func (v *terminalView) handleEvent(ev tcell.Event) bool {
	q := v.scene.Input()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			q.Push(input.Key(common.KeyUp))
		case tcell.KeyDown:
			q.Push(input.Key(common.KeyDown))
		case tcell.KeyPgUp:
			q.Push(input.Key(common.KeyPageUp))
		case tcell.KeyPgDn:
			q.Push(input.Key(common.KeyPageDown))
		case tcell.KeyHome:
			q.Push(input.Key(common.KeyHome))
		case tcell.KeyEnd:
			q.Push(input.Key(common.KeyEnd))
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			q.Push(input.Key(uint32(ev.Rune())))
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			q.Push(input.Wheel(tuiWheelDelta, float64(x), float64(y)))
		case ev.Buttons()&tcell.WheelUp != 0:
			q.Push(input.Wheel(-tuiWheelDelta, float64(x), float64(y)))
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *terminalView) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	mapRows := rows - 2
	if cols < 4 || mapRows < 4 {
		v.screen.Show()
		return
	}

	cell := canvasToCell(v.proj.Size(), cols, mapRows)

	route := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, p := range v.proj.Samples() {
		cx, cy := cell(p.X(), p.Y())
		v.screen.SetContent(cx, cy, '·', nil, route)
	}

	marker, _ := v.scene.Marker()
	mx, my := cell(marker.X, marker.Y)
	octant := int(math.Round(normalizeDegrees(marker.Heading)/45)) % len(headingGlyphs)
	v.screen.SetContent(mx, my, headingGlyphs[octant], nil, tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true))

	autoplay := "off"
	if v.rail.Autoplaying() {
		autoplay = "on"
	}
	status := fmt.Sprintf(" progress %5.1f%%  unit %d/%d  autoplay %s ",
		v.rail.Progress()*100, v.rail.Index()+1, v.rail.Units(), autoplay)
	drawText(v.screen, 0, rows-1, status, tcell.StyleDefault.Reverse(true))

	v.screen.Show()
}

// canvasToCell maps square minimap canvas coordinates onto a cols x rows cell grid.
// Terminal cells are about twice as tall as they are wide, so one row covers the
// canvas distance of two columns.
func canvasToCell(size float64, cols, rows int) func(x, y float64) (int, int) {
	sx := math.Min(float64(cols-1)/size, 2*float64(rows-1)/size)
	sy := sx / 2
	return func(x, y float64) (int, int) {
		return int(math.Round(x * sx)), int(math.Round(y * sy))
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
