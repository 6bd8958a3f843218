package nodeflow

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable lets the user resize the window; the viewport follows.
	Resizable bool
}

// editorGame adapts an Editor to ebiten.Game.
type editorGame struct {
	editor *Editor
}

func (g *editorGame) Update() error {
	g.editor.Update()
	return nil
}

func (g *editorGame) Draw(screen *ebiten.Image) {
	g.editor.Draw(screen)
}

func (g *editorGame) Layout(w, h int) (int, int) {
	g.editor.viewport.Screen = Rect{Width: float64(w), Height: float64(h)}
	return w, h
}

// Run opens a window and drives the editor until the window is closed.
func Run(e *Editor, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	e.viewport.Screen = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	return ebiten.RunGame(&editorGame{editor: e})
}
