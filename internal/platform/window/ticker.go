package window

// ticker divides the display update rate down to the game tick rate.
// The window polls input on every display update so short key taps are
// not lost between two game ticks.
type ticker struct {
	rate int // Game ticks per second
	tps  int // Display updates per second
	acc  int
}

func newTicker(rate, tps int) *ticker {
	if rate <= 0 {
		rate = 1
	}
	if rate > tps {
		rate = tps
	}
	return &ticker{rate: rate, tps: tps}
}

// advance is called once per display update and reports whether a game
// tick is due.
func (t *ticker) advance() bool {
	t.acc += t.rate
	if t.acc < t.tps {
		return false
	}
	t.acc -= t.tps
	return true
}
