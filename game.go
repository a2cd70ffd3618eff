package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/ebitenui/ebitenui"

	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/levels"
	"github.com/milk9111/parallax/obj"
	"github.com/milk9111/parallax/render"
	"github.com/milk9111/parallax/tuning"
)

// tickDT is the fixed simulation step. Ebiten drives Update at 60 TPS.
const tickDT = 1.0 / 60.0

type Game struct {
	debug  bool
	paused bool
	quit   bool
	frames int

	pauseUI *ebitenui.UI

	levelName string
	level     *levels.Level
	physics   obj.Physics
	enemySpec *tuning.EnemiesSpec

	ctx    *obj.Context
	camera *obj.Camera
	input  *obj.Input
	player *obj.Player
	actors []*obj.Enemy

	playerSheet  *render.Sheet
	enemySheets  map[obj.BehaviorKind]*render.Sheet
	playerFrames *render.FrameCache
	enemyFrames  map[obj.BehaviorKind]*render.FrameCache
	backdrop     *ebiten.Image
	foreground   *ebiten.Image

	watcher   *tuning.Watcher
	playerHit bool
}

func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		levelName: levelName,
		input:     &obj.Input{},
	}
	g.pauseUI = NewPauseUI(g)

	physicsSpec, err := tuning.LoadPhysicsSpec()
	if err != nil {
		log.Printf("game: %v, using default physics", err)
		physicsSpec = tuning.DefaultPhysicsSpec()
	}
	g.physics = physicsSpec.Physics()

	g.enemySpec, err = tuning.LoadEnemiesSpec()
	if err != nil {
		log.Printf("game: %v, using default enemy tuning", err)
		g.enemySpec = tuning.DefaultEnemiesSpec()
	}

	g.level, err = levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.playerSheet = loadPlayerSheet()
	g.playerFrames = render.NewFrameCache(g.playerSheet)
	g.enemySheets = make(map[obj.BehaviorKind]*render.Sheet)
	g.enemyFrames = make(map[obj.BehaviorKind]*render.FrameCache)
	for _, kind := range []obj.BehaviorKind{obj.Patrol, obj.Flying, obj.Jumping} {
		sheet := loadEnemySheet(kind)
		g.enemySheets[kind] = sheet
		g.enemyFrames[kind] = render.NewFrameCache(sheet)
	}
	g.backdrop = ebiten.NewImageFromImage(loadBackdrop())
	g.foreground = ebiten.NewImageFromImage(loadForeground())

	g.buildWorld()

	if w, err := tuning.NewWatcher("tuning", "levels"); err != nil {
		log.Printf("game: live reload unavailable: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

// buildWorld constructs the collision context, camera, player, and enemies
// from the loaded level and tuning. Called at startup and again on reload.
func (g *Game) buildWorld() {
	g.ctx = g.level.BuildContext(g.physics)

	g.camera = obj.NewCamera(common.BaseWidth, common.BaseHeight, g.level.PixelWidth(), g.level.PixelHeight())
	g.camera.FgScrollRate = g.level.Parallax.FgScrollRate
	g.camera.BgScrollRate = g.level.Parallax.BgScrollRate

	spawnX, spawnY := g.level.SpawnPosition()
	g.player = obj.NewPlayer(g.playerSheet, spawnX, spawnY, g.input)

	g.actors = g.actors[:0]
	cellSize := g.level.Dimensions.CellSize
	for _, def := range g.level.Enemies {
		kind, _ := obj.BehaviorKindFromString(def.Type)
		t := g.enemySpec.Tuning(kind, cellSize)
		g.actors = append(g.actors, obj.NewEnemy(g.enemySheets[kind], def.X, def.Y, kind, cellSize, t))
	}

	g.camera.Follow(g.player.CollisionRect.CenterX(), g.player.CollisionRect.CenterY())
}

// reload re-reads the tuning files and the level, then rebuilds the world.
// A broken file keeps the previous values so a half-saved edit can't crash
// a running session.
func (g *Game) reload() {
	if spec, err := tuning.LoadPhysicsSpec(); err != nil {
		log.Printf("game: reload physics: %v", err)
	} else {
		g.physics = spec.Physics()
	}
	if spec, err := tuning.LoadEnemiesSpec(); err != nil {
		log.Printf("game: reload enemies: %v", err)
	} else {
		g.enemySpec = spec
	}
	if lvl, err := levels.Load(g.levelName); err != nil {
		log.Printf("game: reload level: %v", err)
	} else {
		g.level = lvl
	}

	g.buildWorld()
	log.Printf("game: reloaded %s", g.levelName)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}

	changed := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			if changed {
				g.reload()
			}
			return
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	g.input.Update()
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}

	g.drainWatcher()

	g.player.Update(tickDT, g.ctx)

	g.playerHit = false
	for _, e := range g.actors {
		e.Update(tickDT, g.ctx)
		if e.CollisionRect.Intersects(g.player.CollisionRect) {
			g.playerHit = true
		}
	}

	g.camera.Follow(g.player.CollisionRect.CenterX(), g.player.CollisionRect.CenterY())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	bgW := float64(g.backdrop.Bounds().Dx())
	for _, x := range g.camera.BackgroundTiles(bgW) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(g.backdrop, op)
	}
	fgW := float64(g.foreground.Bounds().Dx())
	for _, x := range g.camera.ForegroundTiles(fgW) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(g.foreground, op)
	}

	// ground blocks have no art of their own; the foreground strip covers
	// them, so they are only outlined in debug
	for _, p := range g.ctx.Platforms {
		g.drawSolid(screen, p.Rect, colornames.Saddlebrown)
	}

	for _, e := range g.actors {
		g.drawActor(screen, &e.Actor, g.enemyFrames[e.Kind])
	}
	g.drawActor(screen, &g.player.Actor, g.playerFrames)

	if g.debug {
		g.drawDebug(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawSolid(screen *ebiten.Image, r obj.Rect, c color.RGBA) {
	s := g.camera.ApplyRect(r)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), c, false)
}

func (g *Game) drawActor(screen *ebiten.Image, a *obj.Actor, frames *render.FrameCache) {
	x, y := g.camera.Apply(a.VisualRect.X, a.VisualRect.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(frames.Image(a.Direction.Row(), a.Frame), op)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	strokeRect := func(r obj.Rect, c color.RGBA) {
		s := g.camera.ApplyRect(r)
		vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 1, c, false)
	}

	// cell grid over the visible slice of the level
	grid := color.RGBA{R: 40, G: 40, B: 40, A: 40}
	cs := float64(g.ctx.CellSize)
	startX := float64(int(g.camera.X/cs)) * cs
	for x := startX; x <= g.camera.X+g.camera.ViewportWidth && x <= g.ctx.Width; x += cs {
		sx, _ := g.camera.Apply(x, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(g.camera.ViewportHeight), 1, grid, false)
	}
	for y := 0.0; y <= g.ctx.Height; y += cs {
		_, sy := g.camera.Apply(0, y)
		vector.StrokeLine(screen, 0, float32(sy), float32(g.camera.ViewportWidth), float32(sy), 1, grid, false)
	}

	for _, c := range g.ctx.Colliders() {
		strokeRect(c, colornames.White)
	}
	strokeRect(g.player.VisualRect, colornames.Cyan)
	strokeRect(g.player.CollisionRect, colornames.Red)
	strokeRect(g.player.FootRect, colornames.Yellow)
	strokeRect(g.player.GroundSensor(g.ctx.Physics), colornames.Lime)
	for _, e := range g.actors {
		strokeRect(e.CollisionRect, colornames.Orange)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.1f  frames %d\npos (%.1f, %.1f)  vel (%.1f, %.1f)\nground %v  buffer %d  hit %v  cam %.1f",
		ebiten.ActualFPS(), g.frames,
		g.player.CollisionRect.CenterX(), g.player.CollisionRect.Bottom(),
		g.player.VelocityX, g.player.VelocityY,
		g.player.OnGround, g.player.GroundBuffer, g.playerHit, g.camera.X,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
