package dispatcher

import "errors"

var (
	// ErrInvalidElevatorID is returned by Update for an id outside the bank.
	ErrInvalidElevatorID = errors.New("invalid elevator id")

	// ErrInvalidDirection is returned by Pickup for a zero direction.
	ErrInvalidDirection = errors.New("pickup direction must be nonzero")

	// ErrNoAvailableElevator signals that every car is busy. Step treats it
	// as a transient condition and keeps the request pending.
	ErrNoAvailableElevator = errors.New("no available elevator")
)
