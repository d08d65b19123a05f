package dispatcher

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"

	"liftsim/src/elev"
	"liftsim/src/types"
)

// ControlSystem owns a fixed bank of elevators and the queue of pending
// pickup requests. Nothing moves until Step is called.
//
// The system is not safe for concurrent use. A caller exposing it to more
// than one goroutine must serialize Pickup, Update and Step behind a single
// mutex, since Step reads and writes car state in two phases.
type ControlSystem struct {
	name      string
	elevators []*elev.Elevator
	pending   []types.PickupRequest
	rng       *rand.Rand
	log       zerolog.Logger
}

type Option func(*ControlSystem)

// WithLogger attaches a structured logger. The default discards everything,
// so the core carries no global logging state.
func WithLogger(log zerolog.Logger) Option {
	return func(cs *ControlSystem) { cs.log = log }
}

// WithRand substitutes the randomness source behind the fallback elevator
// choice. Tests pass a seeded source to make the choice reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(cs *ControlSystem) { cs.rng = rng }
}

// WithName sets the system name tagged on every log line. An empty name is
// replaced with a generated one.
func WithName(name string) Option {
	return func(cs *ControlSystem) { cs.name = name }
}

// New creates a control system with numElevators cars indexed 0..N-1, each
// parked at floor 1 with no goal.
func New(numElevators int, opts ...Option) (*ControlSystem, error) {
	if numElevators < 1 {
		return nil, fmt.Errorf("control system needs at least one elevator, got %d", numElevators)
	}

	cs := &ControlSystem{
		elevators: make([]*elev.Elevator, numElevators),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       zerolog.Nop(),
	}
	for i := range cs.elevators {
		cs.elevators[i] = elev.New(i)
	}
	for _, opt := range opts {
		opt(cs)
	}
	if cs.name == "" {
		cs.name = randomstring.EnglishFrequencyString(8)
	}
	cs.log = cs.log.With().Str("system", cs.name).Logger()

	return cs, nil
}

// Name returns the system name.
func (cs *ControlSystem) Name() string {
	return cs.name
}

// Status returns a snapshot of every car in index order. Pure read.
func (cs *ControlSystem) Status() []types.ElevatorStatus {
	statuses := make([]types.ElevatorStatus, len(cs.elevators))
	for i, car := range cs.elevators {
		statuses[i] = car.Status()
	}
	return statuses
}

// Update overwrites the position of a single car.
func (cs *ControlSystem) Update(elevatorID, floor, goal int) error {
	if elevatorID < 0 || elevatorID >= len(cs.elevators) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidElevatorID, elevatorID, len(cs.elevators))
	}
	cs.elevators[elevatorID].Update(floor, goal)
	cs.log.Debug().
		Int("elevator", elevatorID).
		Int("floor", floor).
		Int("goal", goal).
		Msg("Position update applied")
	return nil
}

// Pickup queues a request for service at a floor. The request is resolved
// during the next Step. Duplicates are retained and resolved independently.
func (cs *ControlSystem) Pickup(floor int, direction types.Direction) error {
	if direction == types.DirNone {
		return fmt.Errorf("%w: pickup at floor %d", ErrInvalidDirection, floor)
	}
	cs.pending = append(cs.pending, types.PickupRequest{Floor: floor, Direction: direction})
	cs.log.Debug().
		Int("floor", floor).
		Int("direction", int(direction)).
		Msg("Pickup request queued")
	return nil
}

// Step runs one simulation cycle: every pending request is resolved into a
// goal assignment, then every busy car moves one floor toward its goal.
func (cs *ControlSystem) Step() {
	// Assignment phase. Requests are taken in queue order. A request that
	// finds no car at all (every car busy) stays pending for the next step
	// rather than failing the cycle.
	pending := cs.pending
	cs.pending = nil
	for _, req := range pending {
		car, err := cs.findElevatorForPickup(req)
		if err != nil {
			cs.log.Warn().
				Int("floor", req.Floor).
				Int("direction", int(req.Direction)).
				Msg("All elevators busy, pickup stays pending")
			cs.pending = append(cs.pending, req)
			continue
		}
		cs.log.Info().
			Int("elevator", car.ID).
			Int("floor", req.Floor).
			Msg("Pickup assigned")
		car.Update(car.CurrentFloor, req.Floor)
		car.Busy = true
	}

	// Motion phase. Arrival clears Busy before the move check, so a car
	// assigned its own floor goes idle without moving. A car assigned a new
	// goal above moves within this same step.
	for _, car := range cs.elevators {
		if car.CurrentFloor == car.GoalFloor {
			car.Busy = false
		}
		if car.Busy {
			if car.Direction() < 0 {
				car.CurrentFloor--
			} else {
				car.CurrentFloor++
			}
		}
	}
}
