package crossing

import (
	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// Player is the sprite crossing the road. Its x is fixed at the centre of
// the field; only y changes.
type Player struct {
	pos     core.Vec
	step    float64
	startY  float64
	finishY float64
}

// NewPlayer creates a player standing on the start line.
func NewPlayer(field config.FieldConfig, pc config.PlayerConfig) *Player {
	p := &Player{
		step:    pc.Step,
		startY:  field.StartY,
		finishY: field.FinishY,
	}
	p.ResetPosition()
	return p
}

// MoveUp steps towards the finish line without passing it.
func (p *Player) MoveUp() {
	p.pos.Y = core.ClampF(p.pos.Y+p.step, p.startY, p.finishY)
}

// MoveDown steps back towards the start line without passing it.
func (p *Player) MoveDown() {
	p.pos.Y = core.ClampF(p.pos.Y-p.step, p.startY, p.finishY)
}

// ResetPosition puts the player back on the start line.
func (p *Player) ResetPosition() {
	p.pos = core.Vec{X: 0, Y: p.startY}
}

// ReachedFinish reports whether the player stands on the finish line.
func (p *Player) ReachedFinish() bool {
	return p.pos.Y >= p.finishY
}

// Pos returns the player's world position.
func (p *Player) Pos() core.Vec {
	return p.pos
}
