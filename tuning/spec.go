package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/parallax/obj"
)

// PhysicsSpec is the physics.yaml schema. Every field defaults to the
// built-in constants; the file only has to name what it changes.
type PhysicsSpec struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpStrength     float64 `yaml:"jump_strength"`

	GroundBufferTicks int     `yaml:"ground_buffer_ticks"`
	JumpCooldown      float64 `yaml:"jump_cooldown"`
	JumpNudge         float64 `yaml:"jump_nudge"`

	GroundSnapTolerance float64 `yaml:"ground_snap_tolerance"`
	FootSensorDepth     float64 `yaml:"foot_sensor_depth"`
	FootSensorHeight    float64 `yaml:"foot_sensor_height"`
}

func DefaultPhysicsSpec() *PhysicsSpec {
	p := obj.DefaultPhysics()
	return &PhysicsSpec{
		Gravity:             p.Gravity,
		TerminalVelocity:    p.TerminalVelocity,
		MoveSpeed:           p.MoveSpeed,
		JumpStrength:        p.JumpStrength,
		GroundBufferTicks:   p.GroundBufferTicks,
		JumpCooldown:        p.JumpCooldown,
		JumpNudge:           p.JumpNudge,
		GroundSnapTolerance: p.GroundSnapTolerance,
		FootSensorDepth:     p.FootSensorDepth,
		FootSensorHeight:    p.FootSensorHeight,
	}
}

// Physics converts the spec into the simulation constants.
func (s *PhysicsSpec) Physics() obj.Physics {
	return obj.Physics{
		Gravity:             s.Gravity,
		TerminalVelocity:    s.TerminalVelocity,
		MoveSpeed:           s.MoveSpeed,
		JumpStrength:        s.JumpStrength,
		GroundBufferTicks:   s.GroundBufferTicks,
		JumpCooldown:        s.JumpCooldown,
		JumpNudge:           s.JumpNudge,
		GroundSnapTolerance: s.GroundSnapTolerance,
		FootSensorDepth:     s.FootSensorDepth,
		FootSensorHeight:    s.FootSensorHeight,
	}
}

// LoadPhysicsSpec loads physics.yaml over the defaults.
func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec := DefaultPhysicsSpec()
	data, err := Load("physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("tuning: load physics.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal physics.yaml: %w", err)
	}
	return spec, nil
}

// EnemyKindSpec tunes one behavior kind. Distances are in grid cells so
// the values survive cell size changes; durations are in seconds.
type EnemyKindSpec struct {
	Speed               float64 `yaml:"speed"`
	PatrolDistanceCells float64 `yaml:"patrol_distance_cells"`
	FlightHeightCells   float64 `yaml:"flight_height_cells"`
	JumpInterval        float64 `yaml:"jump_interval"`
	JumpStrength        float64 `yaml:"jump_strength"`
}

// EnemiesSpec is the enemies.yaml schema, one section per behavior kind.
type EnemiesSpec struct {
	Basic   EnemyKindSpec `yaml:"basic"`
	Flying  EnemyKindSpec `yaml:"flying"`
	Jumping EnemyKindSpec `yaml:"jumping"`
}

func DefaultEnemiesSpec() *EnemiesSpec {
	return &EnemiesSpec{
		Basic: EnemyKindSpec{
			Speed:               2,
			PatrolDistanceCells: 4,
		},
		Flying: EnemyKindSpec{
			Speed:               2,
			PatrolDistanceCells: 4,
			FlightHeightCells:   2,
		},
		Jumping: EnemyKindSpec{
			Speed:               2,
			PatrolDistanceCells: 4,
			JumpInterval:        2.0,
			JumpStrength:        -10,
		},
	}
}

// Tuning converts the section for the given kind into pixel-space tuning.
func (s *EnemiesSpec) Tuning(kind obj.BehaviorKind, cellSize int) obj.EnemyTuning {
	var k EnemyKindSpec
	switch kind {
	case obj.Flying:
		k = s.Flying
	case obj.Jumping:
		k = s.Jumping
	default:
		k = s.Basic
	}

	cs := float64(cellSize)
	return obj.EnemyTuning{
		Speed:          k.Speed,
		PatrolDistance: k.PatrolDistanceCells * cs,
		FlightHeight:   k.FlightHeightCells * cs,
		JumpInterval:   k.JumpInterval,
		JumpStrength:   k.JumpStrength,
	}
}

// LoadEnemiesSpec loads enemies.yaml over the defaults.
func LoadEnemiesSpec() (*EnemiesSpec, error) {
	spec := DefaultEnemiesSpec()
	data, err := Load("enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("tuning: load enemies.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal enemies.yaml: %w", err)
	}
	return spec, nil
}
