package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidTile       = errors.New("tile must be 0 or a power of two")
	ErrBoardMismatch     = errors.New("board dimensions do not match engine")

	// Engine invariant violations (these indicate a bug and are raised as panics)
	ErrNoEmptyCell       = errors.New("no empty cell to spawn into")
	ErrRowLengthMismatch = errors.New("row length changed during slide")

	// Engine configuration errors
	ErrInvalidWinValue    = errors.New("win value must be at least 2")
	ErrInvalidSpawnChance = errors.New("spawn chance must be between 0 and 100")

	// Session errors
	ErrUnknownEndPolicy = errors.New("unknown end policy")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")

	// History errors
	ErrGameNotFound = errors.New("game not found")
)
