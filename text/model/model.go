package model

// Model pairs the logical and visual models of one text control.
// Values handed out by a controller are read-only views.
type Model struct {
	Logical *LogicalModel
	Visual  *VisualModel
}

// New returns an empty model.
func New() *Model {
	return &Model{
		Logical: NewLogicalModel(),
		Visual:  NewVisualModel(),
	}
}
