package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the sampled input state for one tick. Held state drives
// movement; the jump edges feed the jump debounce. Tests set the fields
// directly instead of polling.
type Input struct {
	Left  bool
	Right bool

	// JumpHeld is true while any jump key is down.
	JumpHeld bool
	// JumpPressed is true only on the tick a jump key went down.
	JumpPressed bool
	// JumpReleased is true only on the tick the last jump key came up.
	JumpReleased bool

	DebugPressed bool
	PausePressed bool
}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp}

// Update polls the keyboard. Call once per tick before the player update.
func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)

	held := false
	pressed := false
	released := false
	for _, k := range jumpKeys {
		held = held || ebiten.IsKeyPressed(k)
		pressed = pressed || inpututil.IsKeyJustPressed(k)
		released = released || inpututil.IsKeyJustReleased(k)
	}
	i.JumpHeld = held
	i.JumpPressed = pressed
	i.JumpReleased = released && !held

	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
