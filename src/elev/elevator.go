package elev

import (
	"github.com/tiendc/go-deepcopy"

	"liftsim/src/types"
)

// NoGoal is the goal floor of a car that has never been given one.
const NoGoal = -1

// Elevator holds the state of a single car. Busy is true while the car is
// committed to reaching an assigned goal floor; it is set and cleared by the
// dispatcher, never in here.
type Elevator struct {
	ID           int
	CurrentFloor int
	GoalFloor    int
	Busy         bool
}

// New returns a car parked at floor 1 with no goal.
func New(id int) *Elevator {
	return &Elevator{
		ID:           id,
		CurrentFloor: 1,
		GoalFloor:    NoGoal,
		Busy:         false,
	}
}

// Update overwrites the current and goal floors unconditionally. Floors are
// unbounded integers, so there is nothing to validate. Busy is left alone.
func (e *Elevator) Update(floor, goal int) {
	e.CurrentFloor = floor
	e.GoalFloor = goal
}

// Direction returns GoalFloor - CurrentFloor. Negative means descending,
// positive ascending, zero no defined direction.
func (e *Elevator) Direction() types.Direction {
	return types.Direction(e.GoalFloor - e.CurrentFloor)
}

// Status clones the car record into a snapshot that does not track later
// mutations.
func (e *Elevator) Status() types.ElevatorStatus {
	status := new(types.ElevatorStatus)
	if err := deepcopy.Copy(status, e); err != nil {
		panic(err)
	}
	return *status
}
