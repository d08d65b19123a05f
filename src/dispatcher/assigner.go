package dispatcher

import (
	"liftsim/src/elev"
	"liftsim/src/types"
)

// findElevatorForPickup picks the car that serves a pickup request.
//
// Candidates are cars that are not busy and whose direction sign strictly
// matches the request's. A car whose goal equals its floor has direction 0
// and matches neither sign, so it is only reachable through the fallback.
// (A car that never had a goal sits at floor 1 with the -1 sentinel, giving
// it a negative direction, so fresh cars do match down requests.)
//
// Among candidates the smallest floor distance wins; the scan runs in index
// order and keeps the first minimum it sees, so ties go to the lowest
// elevator index. With no candidates, a car is drawn uniformly at random
// from the non-busy ones to spread the load. ErrNoAvailableElevator is
// returned when every car is busy.
func (cs *ControlSystem) findElevatorForPickup(req types.PickupRequest) (*elev.Elevator, error) {
	var best *elev.Elevator
	bestDelta := 0
	for _, car := range cs.elevators {
		if car.Busy {
			continue
		}
		dir := car.Direction()
		sameSign := (req.Direction < 0 && dir < 0) || (req.Direction > 0 && dir > 0)
		if !sameSign {
			continue
		}
		delta := abs(req.Floor - car.CurrentFloor)
		if best == nil || delta < bestDelta {
			best = car
			bestDelta = delta
		}
	}
	if best != nil {
		cs.log.Debug().
			Int("elevator", best.ID).
			Int("delta", bestDelta).
			Msg("Found candidate for pickup")
		return best, nil
	}

	free := make([]*elev.Elevator, 0, len(cs.elevators))
	for _, car := range cs.elevators {
		if !car.Busy {
			free = append(free, car)
		}
	}
	if len(free) == 0 {
		return nil, ErrNoAvailableElevator
	}
	return free[cs.rng.Intn(len(free))], nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
