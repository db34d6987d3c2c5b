package repositories

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrAlreadyOwned       = errors.New("mascot already owned")
	ErrMascotFull         = errors.New("mascot has no free equipment slot")
	ErrAlreadyEquipped    = errors.New("item is already equipped to a mascot")
	ErrNotEquipped        = errors.New("item is not equipped to this mascot")
)
