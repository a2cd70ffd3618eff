package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/parallax/common"
)

func main() {
	levelName := flag.String("level", "level1.json", "level file in levels/ (disk copy overrides the embedded one)")
	debug := flag.Bool("debug", false, "start with the debug overlay enabled (F3 toggles)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("parallax")

	game, err := NewGame(*levelName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if game.watcher != nil {
			_ = game.watcher.Close()
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
