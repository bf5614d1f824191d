package assembler

import "errors"

// ErrEmptyGrid is returned when a builder is handed a grid with no
// phi-slices or no rows.
var ErrEmptyGrid = errors.New("assembler: empty grid")
