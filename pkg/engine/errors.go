// pkg/engine/errors.go
package engine

import "errors"

// Rejected commands return one of these. The state is left unchanged and,
// where a player can see it, an event.Error effect is published.
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrMaxLevel              = errors.New("upgrade already at max level")
	ErrInsufficientResources = errors.New("not enough crystals for a hyperjump")
	ErrJumpInProgress        = errors.New("hyperjump already in progress")
	ErrUnknownSystem         = errors.New("unknown star system")
	ErrNotConnected          = errors.New("no hyperspace lane to that system")
	ErrNotRunning            = errors.New("session is not accepting commands")
	ErrUnknownUpgrade        = errors.New("unknown upgrade")
	ErrStationOutOfRange     = errors.New("station out of range")
)
