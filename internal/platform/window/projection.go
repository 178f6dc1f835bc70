package window

import "github.com/vovakirdan/roadcross/internal/config"

// projection maps world units (origin at the centre, y up) to window
// pixels (origin top-left, y down).
type projection struct {
	field config.FieldConfig
}

func newProjection(field config.FieldConfig) projection {
	return projection{field: field}
}

func (p projection) x(wx float64) float64 {
	return wx + p.field.Width/2
}

func (p projection) y(wy float64) float64 {
	return p.field.Height/2 - wy
}
