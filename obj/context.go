package obj

// Physics holds the simulation constants. Velocities and distances are in
// pixels per tick at a fixed 60 ticks per second; durations are in seconds.
type Physics struct {
	Gravity          float64
	TerminalVelocity float64
	MoveSpeed        float64
	JumpStrength     float64

	// GroundBufferTicks is the coyote-time window after leaving a surface.
	GroundBufferTicks int
	// JumpCooldown is the minimum time between jumps.
	JumpCooldown float64
	// JumpNudge lifts the body on jump so the foot sensor clears the floor.
	JumpNudge float64

	// GroundSnapTolerance bounds how deep a body may sink into a surface in
	// one tick and still snap to its top.
	GroundSnapTolerance float64
	// FootSensorDepth extends the ground sensor below the body.
	FootSensorDepth float64
	// FootSensorHeight is the ground sensor's vertical extent.
	FootSensorHeight float64
}

func DefaultPhysics() Physics {
	return Physics{
		Gravity:             0.6,
		TerminalVelocity:    16,
		MoveSpeed:           5,
		JumpStrength:        -12,
		GroundBufferTicks:   5,
		JumpCooldown:        0.2,
		JumpNudge:           5,
		GroundSnapTolerance: 20,
		FootSensorDepth:     2,
		FootSensorHeight:    12,
	}
}

// Platform is a floating solid placed on the level grid.
type Platform struct {
	Rect Rect
}

// NewPlatform builds a platform from grid cells. A non-positive height is
// treated as one cell.
func NewPlatform(cellX, cellY, widthCells, heightCells, cellSize int) Platform {
	if heightCells <= 0 {
		heightCells = 1
	}
	cs := float64(cellSize)
	return Platform{Rect: NewRect(
		float64(cellX)*cs,
		float64(cellY)*cs,
		float64(widthCells)*cs,
		float64(heightCells)*cs,
	)}
}

// GroundBlock is a one-cell-tall run of solid ground.
type GroundBlock struct {
	Rect Rect
}

func NewGroundBlock(cellX, cellY, widthCells, cellSize int) GroundBlock {
	cs := float64(cellSize)
	return GroundBlock{Rect: NewRect(
		float64(cellX)*cs,
		float64(cellY)*cs,
		float64(widthCells)*cs,
		cs,
	)}
}

// Context is the static world every actor resolves against: the physics
// constants, the level extents, and the solid geometry. The collider list is
// built once at construction in a stable order, platforms first.
type Context struct {
	Physics  Physics
	CellSize int
	Width    float64
	Height   float64

	Platforms    []Platform
	GroundBlocks []GroundBlock

	colliders []Rect
}

func NewContext(cellSize, widthCells, heightCells int, platforms []Platform, blocks []GroundBlock, p Physics) *Context {
	ctx := &Context{
		Physics:      p,
		CellSize:     cellSize,
		Width:        float64(widthCells * cellSize),
		Height:       float64(heightCells * cellSize),
		Platforms:    platforms,
		GroundBlocks: blocks,
	}

	ctx.colliders = make([]Rect, 0, len(platforms)+len(blocks))
	for _, pl := range platforms {
		ctx.colliders = append(ctx.colliders, pl.Rect)
	}
	for _, gb := range blocks {
		ctx.colliders = append(ctx.colliders, gb.Rect)
	}
	return ctx
}

// Colliders returns the solid geometry in construction order. Callers must
// not mutate the returned slice.
func (c *Context) Colliders() []Rect {
	return c.colliders
}
