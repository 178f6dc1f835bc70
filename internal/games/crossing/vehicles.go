package crossing

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// Direction is the horizontal travel direction of a vehicle or animal.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Vehicle is a car driving along one lane.
type Vehicle struct {
	Pos   core.Vec
	Lane  int // Index into the configured lanes
	Dir   Direction
	Color core.Color
}

// VehicleManager handles spawning, movement, and removal of vehicles.
// All vehicles share one speed which grows on every level-up.
type VehicleManager struct {
	vehicles []Vehicle
	speed    float64
	rng      *rand.Rand
	cfg      config.VehicleConfig
	scaler   *config.LevelScaler
	palette  []core.Color
}

// NewVehicleManager creates an empty manager drawing randomness from rng.
func NewVehicleManager(cfg config.VehicleConfig, scaler *config.LevelScaler, rng *rand.Rand) *VehicleManager {
	vm := &VehicleManager{
		vehicles: make([]Vehicle, 0, 32),
		rng:      rng,
		cfg:      cfg,
		scaler:   scaler,
		palette:  parsePalette(cfg.Colors),
	}
	vm.Reset()
	return vm
}

// Spawn rolls the per-frame spawn chance for the given level and, on
// success, adds a vehicle in a random lane heading in a random direction.
// Returns true if a vehicle was added.
func (vm *VehicleManager) Spawn(level int) bool {
	if vm.rng.Intn(vm.scaler.SpawnChance(level)) != 0 {
		return false
	}

	lane := vm.rng.Intn(len(vm.cfg.Lanes))
	v := Vehicle{
		Lane:  lane,
		Color: vm.palette[vm.rng.Intn(len(vm.palette))],
	}

	// Vehicles enter from the side they drive away from
	if vm.rng.Intn(2) == 0 {
		v.Dir = DirLeft
		v.Pos = core.Vec{X: vm.cfg.SpawnX, Y: vm.cfg.Lanes[lane]}
	} else {
		v.Dir = DirRight
		v.Pos = core.Vec{X: -vm.cfg.SpawnX, Y: vm.cfg.Lanes[lane]}
	}

	vm.vehicles = append(vm.vehicles, v)
	return true
}

// Move advances every vehicle by the shared speed, then drops the ones
// that left the field. Returns the number of vehicles removed.
func (vm *VehicleManager) Move() int {
	for i := range vm.vehicles {
		vm.vehicles[i].Pos.X += float64(vm.vehicles[i].Dir) * vm.speed
	}

	// Filter in place
	kept := vm.vehicles[:0]
	for _, v := range vm.vehicles {
		if math.Abs(v.Pos.X) <= vm.cfg.DespawnX {
			kept = append(kept, v)
		}
	}
	removed := len(vm.vehicles) - len(kept)
	vm.vehicles = kept
	return removed
}

// IncreaseSpeed applies the per-level speed step.
func (vm *VehicleManager) IncreaseSpeed() {
	vm.speed += vm.scaler.SpeedStep()
}

// Reset removes all vehicles and restores the base speed.
func (vm *VehicleManager) Reset() {
	vm.vehicles = vm.vehicles[:0]
	vm.speed = vm.scaler.BaseSpeed()
}

// Vehicles returns the vehicles currently on the road.
// The slice is only valid until the next Spawn or Move.
func (vm *VehicleManager) Vehicles() []Vehicle {
	return vm.vehicles
}

// Speed returns the current shared vehicle speed.
func (vm *VehicleManager) Speed() float64 {
	return vm.speed
}

// parsePalette converts colour names, skipping unknown ones.
// An empty result falls back to white so spawning always has a colour.
func parsePalette(names []string) []core.Color {
	palette := make([]core.Color, 0, len(names))
	for _, name := range names {
		if c, ok := core.ParseColor(name); ok {
			palette = append(palette, c)
		}
	}
	if len(palette) == 0 {
		palette = append(palette, core.ColorWhite)
	}
	return palette
}
