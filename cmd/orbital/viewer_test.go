package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/orbital"
	"github.com/lixenwraith/orbital/parameter"
)

func newTestViewer(t *testing.T, w, h int, mutate func(*config.Config)) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	v, err := NewViewer(screen, cfg, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return v, screen
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func assertState(t *testing.T, v *Viewer, n, l, m int) {
	t.Helper()
	got := v.model
	if got.Principal() != n || got.Orbital() != l || got.Magnetic() != m {
		t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", n, l, m, got.Principal(), got.Orbital(), got.Magnetic())
	}
}

func TestViewerQuantumKeys(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, nil)

	for _, r := range "NNLLMM" {
		v.handleRune(r)
	}
	assertState(t, v, 3, 2, 2)
	if v.rejecting() {
		t.Error("Expected no rejection for valid steps")
	}

	// l cannot exceed n-1
	v.handleRune('L')
	assertState(t, v, 3, 2, 2)
	if !v.rejecting() {
		t.Error("Expected rejection flash for l=n")
	}
}

func TestViewerPrincipalNarrowsRange(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, func(c *config.Config) {
		c.N, c.L, c.M = 3, 2, -2
	})

	v.handleRune('n')
	assertState(t, v, 2, 1, -1)
	if !v.model.Consistent() {
		t.Error("Expected consistent state after narrowing")
	}

	v.handleRune('n')
	assertState(t, v, 1, 0, 0)

	v.handleRune('n')
	assertState(t, v, 1, 0, 0)
	if !v.rejecting() {
		t.Error("Expected rejection for n=0")
	}
}

func TestViewerOrbitalNarrowsMagnetic(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, func(c *config.Config) {
		c.N, c.L, c.M = 4, 3, 3
	})

	v.handleRune('l')
	assertState(t, v, 4, 2, 2)
	v.handleRune('l')
	v.handleRune('l')
	assertState(t, v, 4, 0, 0)
}

func TestViewerPrincipalUpperBound(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, func(c *config.Config) {
		c.N = parameter.MaxPrincipal
	})

	v.handleRune('N')
	if v.model.Principal() != parameter.MaxPrincipal {
		t.Errorf("Expected n capped at %d, got %d", parameter.MaxPrincipal, v.model.Principal())
	}
	if !v.rejecting() {
		t.Error("Expected rejection above the input range")
	}
}

func TestViewerQuitAndToggles(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, nil)

	if !v.handleRune('d') || !v.model.DensityMode() {
		t.Error("Expected density mode toggled on")
	}
	if v.handleRune('q') {
		t.Error("Expected q to quit")
	}

	start := v.panel
	for i := 0; i < panelCount; i++ {
		v.cyclePanel()
	}
	if v.panel != start {
		t.Errorf("Expected panel cycle to wrap to %d, got %d", start, v.panel)
	}
}

func TestViewerPointerDrivesCamera(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, func(c *config.Config) {
		c.Panel = "projected"
	})

	v.handlePointer(10, 10, tcell.ButtonPrimary)
	v.handlePointer(14, 8, tcell.ButtonPrimary)
	v.handlePointer(14, 8, tcell.ButtonNone)
	if v.view.MoveX <= 0 || v.view.MoveY <= 0 {
		t.Errorf("Expected positive move after right-up drag, got %+v", v.view)
	}

	v.handlePointer(5, 5, tcell.ButtonSecondary)
	v.handlePointer(9, 5, tcell.ButtonSecondary)
	if v.view.RotX <= 0 {
		t.Errorf("Expected rotation after secondary drag, got %+v", v.view)
	}

	v.handleRune('r')
	if v.view != (orbital.View{}) {
		t.Errorf("Expected neutral view after reset, got %+v", v.view)
	}
}

func TestViewerPointerIgnoredOutsideProjection(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20, nil)

	v.handlePointer(10, 10, tcell.ButtonPrimary)
	v.handlePointer(20, 15, tcell.ButtonPrimary)
	if v.view != (orbital.View{}) {
		t.Errorf("Expected camera untouched on section panel, got %+v", v.view)
	}
}

func TestViewerDrawPanels(t *testing.T) {
	v, screen := newTestViewer(t, 40, 12, nil)

	for i := 0; i < panelCount; i++ {
		v.panel = i
		v.draw()
		if v.dirty {
			t.Error("Expected draw to clear the dirty flag")
		}
		if !strings.Contains(rowText(screen, 0, 40), "Hydrogen 1s") {
			t.Errorf("Panel %d: expected title row, got %q", i, rowText(screen, 0, 40))
		}
		_, rows := v.fieldSize()
		hud := rowText(screen, parameter.TitleRows+rows, 40)
		if !strings.Contains(hud, "n=1 l=0 m=0") {
			t.Errorf("Panel %d: expected status row, got %q", i, hud)
		}
	}

	// Field buffers follow the panel geometry
	v.panel = panelSection
	v.sample()
	cols, rows := v.fieldSize()
	if v.bufW != cols || v.bufH != rows*parameter.PixelRowsPerCell {
		t.Errorf("Expected %dx%d grid, got %dx%d", cols, rows*2, v.bufW, v.bufH)
	}
}

func TestViewerResize(t *testing.T) {
	v, screen := newTestViewer(t, 40, 12, nil)
	v.dirty = false

	screen.SetSize(60, 20)
	v.handleResize()
	if !v.dirty || v.width != 60 || v.height != 20 {
		t.Errorf("Expected resize to 60x20 marked dirty, got %dx%d dirty=%v", v.width, v.height, v.dirty)
	}

	// Too small for a field still draws the HUD without panicking
	screen.SetSize(10, 2)
	v.handleResize()
	v.draw()
	if v.bufW != 0 {
		t.Errorf("Expected no field on a tiny screen, got width %d", v.bufW)
	}
}

func TestViewerRejectFlashExpires(t *testing.T) {
	v, _ := newTestViewer(t, 40, 12, nil)
	v.reject("n", 0)
	if !v.rejecting() {
		t.Fatal("Expected flash active")
	}
	v.rejectUntil = time.Now().Add(-time.Millisecond)
	if v.rejecting() {
		t.Error("Expected flash expired")
	}
}
