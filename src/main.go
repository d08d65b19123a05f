package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/logger"
	"liftsim/src/shell"
	"liftsim/src/types"
)

// session serializes access to the control system. The core is single
// threaded; the mutex only matters when -tick steps it from a second
// goroutine while the REPL is reading commands.
type session struct {
	mu  sync.Mutex
	ecs *dispatcher.ControlSystem
}

func main() {
	numElevators := flag.Int("elevators", 0, "Number of elevators (overrides .env)")
	envFile := flag.String("env", config.DefaultEnvFile, "Path to the .env file")
	keys := flag.Bool("keys", false, "Single-key mode: s=step, t=status, q=quit")
	tick := flag.Duration("tick", 0, "Advance the simulation automatically at this interval")
	flag.Parse()

	log := logger.Get()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if *numElevators > 0 {
		cfg.NumElevators = *numElevators
	}
	logger.SetLevel(cfg.LogLevel)

	ecs, err := dispatcher.New(cfg.NumElevators,
		dispatcher.WithName(cfg.SystemName),
		dispatcher.WithLogger(log),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not start control system")
	}
	log.Info().
		Str("system", ecs.Name()).
		Int("elevators", cfg.NumElevators).
		Msg("Control system ready")

	s := &session{ecs: ecs}

	if *tick > 0 {
		go runTicker(s, *tick)
	}

	if *keys {
		runKeyLoop(s, log)
	} else {
		runREPL(s)
	}
}

func runREPL(s *session) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Enter action: ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Print("Enter action: ")
			continue
		}
		cmd, err := shell.Parse(line)
		if err != nil {
			fmt.Println(err)
			fmt.Print("Enter action: ")
			continue
		}
		if done := s.apply(cmd); done {
			return
		}
		fmt.Print("Enter action: ")
	}
}

func runKeyLoop(s *session, log zerolog.Logger) {
	if err := keyboard.Open(); err != nil {
		log.Fatal().Err(err).Msg("Could not open keyboard")
	}
	defer keyboard.Close()

	fmt.Println("s: step | t: status | q: quit")
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			log.Fatal().Err(err).Msg("Keyboard read failed")
		}
		switch {
		case char == 's' || char == 'S':
			s.apply(shell.Command{Value: shell.StepCommand{Count: 1}})
			s.apply(shell.Command{Value: shell.StatusCommand{}})
		case char == 't' || char == 'T':
			s.apply(shell.Command{Value: shell.StatusCommand{}})
		case char == 'q' || char == 'Q' || key == keyboard.KeyCtrlC:
			return
		}
	}
}

func runTicker(s *session, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		s.ecs.Step()
		s.mu.Unlock()
	}
}

// apply executes one parsed command. Returns true on quit.
func (s *session) apply(cmd shell.Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.Value.(type) {
	case shell.StatusCommand:
		printStatus(s.ecs.Status())

	case shell.StepCommand:
		for i := 0; i < c.Count; i++ {
			s.ecs.Step()
		}
		fmt.Println("Step action performed")

	case shell.PickupCommand:
		if err := s.ecs.Pickup(c.Floor, types.Direction(c.Direction)); err != nil {
			fmt.Println(err)
		}

	case shell.UpdateCommand:
		if err := s.ecs.Update(c.ID, c.Floor, c.Goal); err != nil {
			fmt.Println(err)
		}

	case shell.LogLevelCommand:
		logger.SetLevel(c.Level)

	case shell.QuitCommand:
		return true
	}
	return false
}

func printStatus(statuses []types.ElevatorStatus) {
	for _, st := range statuses {
		fmt.Printf("elevator %d: floor %d, goal %d\n", st.ID, st.CurrentFloor, st.GoalFloor)
	}
}
