package hunt

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilSettingsRepo  = errors.New("settings repository cannot be nil")
	ErrNilInventoryRepo = errors.New("inventory repository cannot be nil")
	ErrNilCatalog       = errors.New("catalog cannot be nil")
	ErrNilLottery       = errors.New("lottery cannot be nil")
	ErrNilTracker       = errors.New("spawn tracker cannot be nil")
	ErrNilRandom        = errors.New("random source cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")

	ErrInvalidSetting = errors.New("setting value out of range")
)
