package types

// Direction is the sign of a travel direction. The magnitude carries no
// meaning; callers only compare against zero.
type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
	DirNone Direction = 0
)

// PickupRequest is a rider's call for service at a floor, tagged with the
// desired travel direction. Requests are queued as-is, duplicates included.
type PickupRequest struct {
	Floor     int
	Direction Direction
}

// ElevatorStatus is an immutable snapshot of a single car.
type ElevatorStatus struct {
	ID           int
	CurrentFloor int
	GoalFloor    int
}
