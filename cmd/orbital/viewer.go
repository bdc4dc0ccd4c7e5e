package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orbital/audio"
	"github.com/lixenwraith/orbital/camera"
	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/orbital"
	"github.com/lixenwraith/orbital/parameter"
	"github.com/lixenwraith/orbital/render"
)

const (
	panelProfile = iota
	panelSection
	panelProjected
	panelCount
)

// Viewer owns the screen, the model and the camera; all access happens on the event loop
type Viewer struct {
	screen  tcell.Screen
	painter *render.Painter
	model   *orbital.Model
	camera  *camera.Controller
	sound   *audio.SoundManager

	width, height int
	panel         int
	view          orbital.View

	// Sample grid for the current panel
	buf        []float64
	bufW, bufH int
	elapsed    time.Duration

	// Mouse drag tracking
	mouseX, mouseY int

	dirty       bool
	rejectUntil time.Time
}

// NewViewer builds a viewer on an initialized screen; sound may be nil
func NewViewer(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) (*Viewer, error) {
	q, err := cfg.QuantumNumbers()
	if err != nil {
		return nil, err
	}

	m := orbital.New()
	m.SetQuantumNumbers(q)
	m.SetDensityMode(cfg.Density)
	if cfg.Workers > 0 {
		m.SetWorkers(cfg.Workers)
	}

	v := &Viewer{
		screen:  screen,
		painter: render.NewPainter(screen),
		model:   m,
		sound:   sound,
		panel:   cfg.PanelIndex(),
		dirty:   true,
	}
	v.width, v.height = screen.Size()
	cols, rows := v.fieldSize()
	v.camera = camera.New(cols, rows)
	v.camera.OnChange = func(view orbital.View) {
		v.view = view
		v.dirty = true
	}
	return v, nil
}

// fieldSize is the cell rectangle between the title and the HUD
func (v *Viewer) fieldSize() (cols, rows int) {
	return v.width, max(v.height-parameter.TitleRows-parameter.HUDRows, 0)
}

func (v *Viewer) handleResize() {
	w, h := v.screen.Size()
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	cols, rows := v.fieldSize()
	v.camera.Resize(cols, rows)
	v.view = v.camera.View()
	v.dirty = true
	log.Printf("Resize %dx%d", w, h)
}

// handleInput processes one event and returns false on quit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.handleResize()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		v.cyclePanel()
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return true
}

func (v *Viewer) cyclePanel() {
	v.panel = (v.panel + 1) % panelCount
	v.camera.Release()
	v.dirty = true
}

func (v *Viewer) handleRune(r rune) bool {
	m := v.model
	switch r {
	case 'q':
		return false
	case 'n':
		v.changePrincipal(m.Principal() - 1)
	case 'N':
		v.changePrincipal(m.Principal() + 1)
	case 'l':
		v.changeOrbital(m.Orbital() - 1)
	case 'L':
		v.changeOrbital(m.Orbital() + 1)
	case 'm':
		v.changeMagnetic(m.Magnetic() - 1)
	case 'M':
		v.changeMagnetic(m.Magnetic() + 1)
	case 'd':
		m.SetDensityMode(!m.DensityMode())
		log.Printf("Density mode %v", m.DensityMode())
		v.dirty = true
	case 'r':
		v.camera.Reset()
	}
	return true
}

// changePrincipal applies n and narrows l and m into the new range
func (v *Viewer) changePrincipal(n int) {
	if n < parameter.MinPrincipal || n > parameter.MaxPrincipal || !v.model.SetPrincipal(n) {
		v.reject("n", n)
		return
	}
	if l := v.model.Orbital(); l > n-1 {
		v.model.SetOrbital(n - 1)
	}
	v.narrowMagnetic()
	v.accept()
}

func (v *Viewer) changeOrbital(l int) {
	if !v.model.SetOrbital(l) {
		v.reject("l", l)
		return
	}
	v.narrowMagnetic()
	v.accept()
}

func (v *Viewer) changeMagnetic(m int) {
	if !v.model.SetMagnetic(m) {
		v.reject("m", m)
		return
	}
	v.accept()
}

func (v *Viewer) narrowMagnetic() {
	l := v.model.Orbital()
	m := min(max(v.model.Magnetic(), -l), l)
	if m != v.model.Magnetic() {
		v.model.SetMagnetic(m)
	}
}

func (v *Viewer) accept() {
	log.Printf("State %s n=%d l=%d m=%d", v.model.StateLabel(), v.model.Principal(), v.model.Orbital(), v.model.Magnetic())
	if v.sound != nil {
		v.sound.PlayState(v.model.Principal())
	}
	v.dirty = true
}

func (v *Viewer) reject(name string, value int) {
	log.Printf("Rejected %s=%d", name, value)
	if v.sound != nil {
		v.sound.PlayReject()
	}
	v.rejectUntil = time.Now().Add(parameter.RejectFlashDuration)
	v.dirty = true
}

// rejecting reports whether the HUD flash is active
func (v *Viewer) rejecting() bool {
	return time.Now().Before(v.rejectUntil)
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	v.handlePointer(x, y, ev.Buttons())
}

// handlePointer maps primary drag to camera move and secondary drag to rotation
func (v *Viewer) handlePointer(x, y int, buttons tcell.ButtonMask) {
	var b camera.Button
	switch {
	case buttons&tcell.ButtonPrimary != 0:
		b = camera.ButtonMove
	case buttons&tcell.ButtonSecondary != 0:
		b = camera.ButtonRotate
	}

	switch {
	case b == camera.ButtonNone:
		v.camera.Release()
	case v.panel != panelProjected:
		return
	case v.camera.Pressed() != b:
		v.camera.Press(b)
	default:
		v.camera.Drag(x-v.mouseX, y-v.mouseY)
	}
	v.mouseX, v.mouseY = x, y
}

// sample refreshes buf for the current panel and field size
func (v *Viewer) sample() {
	cols, rows := v.fieldSize()
	if cols <= 0 || rows <= 0 {
		v.bufW, v.bufH = 0, 0
		return
	}

	start := time.Now()
	switch v.panel {
	case panelProfile:
		v.resize(parameter.RadialPoints, 1)
		v.model.RadialProfile(v.buf)
	case panelSection:
		v.resize(cols, rows*parameter.PixelRowsPerCell)
		if err := v.model.PlanarSection(v.buf, v.bufW, v.bufH); err != nil {
			log.Printf("Section: %v", err)
		}
	case panelProjected:
		v.resize(cols, rows*parameter.PixelRowsPerCell)
		if err := v.model.ProjectedField(v.buf, v.bufW, v.bufH, v.view); err != nil {
			log.Printf("Projection: %v", err)
		}
	}
	v.elapsed = time.Since(start)
}

func (v *Viewer) resize(w, h int) {
	if n := w * h; cap(v.buf) < n {
		v.buf = make([]float64, n)
	} else {
		v.buf = v.buf[:n]
	}
	v.bufW, v.bufH = w, h
}

func (v *Viewer) draw() {
	v.sample()
	v.painter.Fill(0, 0, v.width, v.height, render.StyleStatus)

	cols, rows := v.fieldSize()
	y0 := parameter.TitleRows
	v.painter.Text(0, 0, v.width, v.title(), render.StyleTitle)

	if v.bufW > 0 && v.bufH > 0 {
		switch v.panel {
		case panelProfile:
			v.painter.Bars(0, y0, cols, rows, v.buf, render.Profile)
		case panelSection:
			v.painter.Field(0, y0, cols, rows, v.buf, v.bufW, v.bufH, render.Section)
		case panelProjected:
			v.painter.Field(0, y0, cols, rows, v.buf, v.bufW, v.bufH, render.Projected)
		}
	}

	hud := y0 + rows
	style := render.StyleStatus
	if v.rejecting() {
		style = render.StyleReject
		v.painter.Fill(0, hud, v.width, 1, style)
	}
	v.painter.Text(0, hud, v.width, v.status(), style)
	v.painter.Text(0, hud+1, v.width, parameter.KeyHelp, render.StyleHelp)

	v.screen.Show()
	v.dirty = false
}

func (v *Viewer) title() string {
	names := [panelCount]string{"radial profile", "planar section", "projected field"}
	return fmt.Sprintf(" Hydrogen %s | %s", v.model.StateLabel(), names[v.panel])
}

func (v *Viewer) status() string {
	m := v.model
	mode := "amplitude"
	if m.DensityMode() {
		mode = "density"
	}
	s := fmt.Sprintf(" n=%d l=%d m=%d  %s  R=%.1f a0  %s",
		m.Principal(), m.Orbital(), m.Magnetic(), mode, m.MaxRelativeRadius(), v.elapsed.Round(time.Microsecond))
	if v.panel == panelProjected {
		s += fmt.Sprintf("  move(%.2f,%.2f) rot(%.2f,%.2f)", v.view.MoveX, v.view.MoveY, v.view.RotX, v.view.RotY)
	}
	return s
}

// run drives the viewer until quit; redraws only on change or when the reject flash ends
func (v *Viewer) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	flashing := false
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if r := v.rejecting(); r != flashing {
				flashing = r
				v.dirty = true
			}
			if v.dirty {
				v.draw()
			}
		}
	}
}
