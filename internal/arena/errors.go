package arena

import "errors"

// Setup errors. They are returned before any tick runs; steady-state ticking
// never fails.
var (
	ErrInvalidDimensions = errors.New("arena: width and height must be positive")
	ErrEmptyID           = errors.New("arena: robot id must not be empty")
	ErrLongID            = errors.New("arena: robot id must be a single character")
	ErrDuplicateID       = errors.New("arena: duplicate robot id")
	ErrNilControl        = errors.New("arena: robot control must not be nil")
	ErrArenaFull         = errors.New("arena: no free cell left")
	ErrOutOfArena        = errors.New("arena: position outside the arena")
	ErrCellOccupied      = errors.New("arena: cell already occupied")
	ErrInvalidBearing    = errors.New("arena: invalid bearing")
)
