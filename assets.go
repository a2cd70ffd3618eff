package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/obj"
	"github.com/milk9111/parallax/render"
)

const graphicsDir = "resources/graphics"

var (
	playerBody = color.NRGBA{R: 60, G: 120, B: 220, A: 255}

	enemyBodies = map[obj.BehaviorKind]color.NRGBA{
		obj.Patrol:  {R: 200, G: 60, B: 60, A: 255},
		obj.Flying:  {R: 160, G: 60, B: 200, A: 255},
		obj.Jumping: {R: 220, G: 140, B: 40, A: 255},
	}
)

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(graphicsDir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// loadImageOr loads a PNG from the graphics directory, substituting the
// procedural fallback with a warning when the asset is missing or broken.
// A missing asset never stops the game.
func loadImageOr(name string, fallback func() image.Image) image.Image {
	img, err := loadImage(name)
	if err != nil {
		log.Printf("assets: %s unavailable (%v), using generated art", name, err)
		return fallback()
	}
	return img
}

func loadPlayerSheet() *render.Sheet {
	src := loadImageOr("player.png", func() image.Image {
		return render.FallbackSheet(64, 64, playerBody)
	})
	return render.NewSheet(src)
}

func loadEnemySheet(kind obj.BehaviorKind) *render.Sheet {
	src := loadImageOr("enemy_"+kind.String()+".png", func() image.Image {
		return render.FallbackSheet(64, 64, enemyBodies[kind])
	})
	return render.NewSheet(src)
}

func loadBackdrop() image.Image {
	return loadImageOr("backdrop.png", func() image.Image {
		return render.FallbackBackdrop(common.BaseWidth, common.BaseHeight)
	})
}

func loadForeground() image.Image {
	return loadImageOr("foreground.png", func() image.Image {
		return render.FallbackForeground(common.BaseWidth, common.BaseHeight)
	})
}
