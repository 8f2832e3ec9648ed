package main

import (
	"context"
	"image"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cosmicfolio/cosmicfolio/internal/game"
	"github.com/cosmicfolio/cosmicfolio/internal/render"
	"github.com/cosmicfolio/cosmicfolio/internal/view"
)

const (
	rotateButton = ebiten.MouseButtonRight
	panSpeed     = 0.01 // target units per frame per unit of camera distance
)

//nolint:gochecknoglobals // Cobra boilerplate
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the portfolio window (default)",
	Long: `Open the portfolio window.

Controls:
  left click     select a planet, moon or star
  right drag     rotate the camera
  wheel          zoom
  WASD / arrows  pan
  1-6            switch the side panel
  Esc            close the detail panel
  Q              quit`,
	RunE: runWindow,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(runCmd)
}

//nolint:gochecknoglobals // key table
var sectionKeys = [game.SectionCount]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All portfolio state lives in scene.
type Game struct {
	ctx       context.Context
	width     int
	height    int
	scene     *game.Scene
	camera    view.Camera
	buffer    *view.CellBuffer
	grid      *render.GridRenderer
	drawer    *render.SceneRenderer
	backdrops []image.Rectangle

	dragging     bool
	lastX, lastY int
}

// NewGame wires the renderers to an open session.
func NewGame(ctx context.Context, s *session) *Game {
	w, h := s.cfg.Window.Width, s.cfg.Window.Height
	return &Game{
		ctx:    ctx,
		width:  w,
		height: h,
		scene:  s.scene,
		camera: view.NewCamera(w, h),
		buffer: view.NewCellBuffer(w/view.CellSize, h/view.CellSize),
		grid:   render.NewGridRenderer(render.NewFontAtlas(), view.CellSize, view.CellSize),
		drawer: render.NewSceneRenderer(s.scene, s.cfg),
	}
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.ClearSelection()
	}
	for i, key := range sectionKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if sec, ok := game.SectionForKey(rune('1' + i)); ok {
			g.scene.SetSection(sec)
		}
	}

	g.updateCamera()
	g.updatePointer()
	g.scene.Tick(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) updateCamera() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(rotateButton) {
		if g.dragging {
			g.camera.Rotate(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(wy)
	}

	var strafe, advance float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		advance++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		advance--
	}
	if strafe != 0 || advance != 0 {
		k := panSpeed * g.camera.Distance
		g.camera.Pan(strafe*k, advance*k)
		g.scene.SetFocus(g.camera.Target)
	}
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	hit, ok := g.pick(x, y)

	sel := g.scene.Selection()
	hovered := sel.Hovered()
	switch {
	case ok && hit.BodyID != hovered:
		if hovered != "" {
			g.scene.PointerOut(hovered)
		}
		g.scene.PointerOver(hit.BodyID)
	case !ok && hovered != "":
		g.scene.PointerOut(hovered)
	}

	if !ok || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if hit.Project >= 0 {
		g.scene.ClickProject(hit.BodyID, hit.Project)
		return
	}
	g.scene.Click(hit.BodyID)
}

// pick finds the body under the cursor. Panels block the scene behind them.
func (g *Game) pick(x, y int) (game.Primitive, bool) {
	cell := image.Pt(x/view.CellSize, y/view.CellSize)
	for _, r := range g.backdrops {
		if cell.In(r) {
			return game.Primitive{}, false
		}
	}
	return g.camera.Pick(g.scene.Primitives(), float64(x), float64(y))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(screen, g.scene, &g.camera)
	g.backdrops = view.Compose(g.buffer, g.scene, &g.camera)
	g.grid.DrawBackdrops(screen, g.backdrops)
	g.grid.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func runWindow(cmd *cobra.Command, args []string) (err error) {
	var s *session
	s, err = openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ebiten.SetWindowSize(s.cfg.Window.Width, s.cfg.Window.Height)
	ebiten.SetWindowTitle(s.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(NewGame(ctx, s))
	if err != nil {
		err = errors.Wrap(err, "game loop")
		return err
	}
	return nil
}
