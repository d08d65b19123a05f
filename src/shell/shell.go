// Package shell parses the line commands of the simulator REPL.
package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Command wraps one parsed input line. Value holds one of the command
// structs below.
type Command struct {
	Value any
}

type StatusCommand struct{}

type StepCommand struct {
	Count int
}

type PickupCommand struct {
	Floor     int
	Direction int
}

type UpdateCommand struct {
	ID    int
	Floor int
	Goal  int
}

type LogLevelCommand struct {
	Level string
}

type QuitCommand struct{}

// Parse turns one input line into a Command.
//
//	status
//	step [n]
//	pickup <floor> <direction>
//	update <id> <floor> <goal>
//	debug | info
//	quit | exit
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "status":
		return Command{Value: StatusCommand{}}, nil

	case "step":
		count := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				return Command{}, fmt.Errorf("step: count must be a positive integer, got %q", fields[1])
			}
			count = n
		}
		return Command{Value: StepCommand{Count: count}}, nil

	case "pickup":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("usage: pickup <floor> <direction>")
		}
		floor, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("pickup: bad floor %q", fields[1])
		}
		dir, err := strconv.Atoi(fields[2])
		if err != nil {
			return Command{}, fmt.Errorf("pickup: bad direction %q", fields[2])
		}
		return Command{Value: PickupCommand{Floor: floor, Direction: dir}}, nil

	case "update":
		if len(fields) != 4 {
			return Command{}, fmt.Errorf("usage: update <id> <floor> <goal>")
		}
		args := make([]int, 3)
		for i, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Command{}, fmt.Errorf("update: bad argument %q", f)
			}
			args[i] = n
		}
		return Command{Value: UpdateCommand{ID: args[0], Floor: args[1], Goal: args[2]}}, nil

	case "debug", "info":
		return Command{Value: LogLevelCommand{Level: fields[0]}}, nil

	case "quit", "exit":
		return Command{Value: QuitCommand{}}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}
