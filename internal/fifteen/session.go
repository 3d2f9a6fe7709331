package fifteen

import (
	"maps"
	"math/rand/v2"
)

type Status int

const (
	Idle Status = iota
	Running
	Won
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Won:
		return "won"
	default:
		return "?"
	}
}

// State is one game session: the board, its dimension, the counters the
// host displays and the per-dimension best results for the lifetime of the
// process. Update never mutates a State it was given; accepted moves clone
// the board and best-score updates copy the map.
type State struct {
	Board   Board
	Dim     int
	Moves   int
	Elapsed int // whole seconds, advanced by EventTick
	Status  Status
	Best    map[int]int // dimension → lowest winning move count
}

func NewState(n int) State {
	return State{Dim: n, Best: map[int]int{}}
}

// BestFor returns the lowest winning move count recorded for dimension n.
func (s State) BestFor(n int) (int, bool) {
	best, ok := s.Best[n]
	return best, ok
}

// Event is a single input consumed by Update. Keyboard, pointer, timer and
// scripted sources all produce the same event stream.
type Event interface{ isEvent() }

type (
	// EventStart begins play, reusing an unsolved board if one is in
	// progress and generating a fresh one otherwise.
	EventStart struct{}
	// EventRestart abandons the current board and generates a fresh one.
	EventRestart struct{}
	// EventResize restarts at a new grid dimension.
	EventResize struct{ Dim int }
	// EventSelect slides the tile at Index into the blank.
	EventSelect struct{ Index int }
	// EventMove slides a tile in the pressed direction.
	EventMove struct{ Direction Direction }
	// EventTick advances the clock by one second while running.
	EventTick struct{}
)

func (EventStart) isEvent()   {}
func (EventRestart) isEvent() {}
func (EventResize) isEvent()  {}
func (EventSelect) isEvent()  {}
func (EventMove) isEvent()    {}
func (EventTick) isEvent()    {}

// Update applies one event to a session and returns the resulting session.
// Moves outside a running game and moves with invalid targets are silent
// no-ops; the only errors are generation failures (bad dimension or an
// exhausted shuffle cap), which leave the input state in effect.
func Update(s State, ev Event, r *rand.Rand) (State, error) {
	switch ev := ev.(type) {
	case EventStart:
		if s.Status == Running {
			return s, nil
		}
		if len(s.Board) == 0 || s.Board.IsSolved() {
			return s.newGame(s.Dim, r)
		}
		s.Status = Running
		return s, nil

	case EventRestart:
		return s.newGame(s.Dim, r)

	case EventResize:
		return s.newGame(ev.Dim, r)

	case EventSelect:
		if s.Status != Running {
			return s, nil
		}
		next, ok := ApplyMove(s.Board, s.Dim, ev.Index)
		return s.applied(next, ok), nil

	case EventMove:
		if s.Status != Running {
			return s, nil
		}
		next, ok := ApplyDirectionalMove(s.Board, s.Dim, ev.Direction)
		return s.applied(next, ok), nil

	case EventTick:
		if s.Status == Running {
			s.Elapsed++
		}
		return s, nil
	}
	return s, nil
}

func (s State) newGame(n int, r *rand.Rand) (State, error) {
	b, err := Generate(n, r)
	if err != nil {
		return s, err
	}
	s.Board = b
	s.Dim = n
	s.Moves = 0
	s.Elapsed = 0
	s.Status = Running
	Log.Debug("new game", "seed", b.Seed(n))
	return s, nil
}

func (s State) applied(next Board, ok bool) State {
	if !ok {
		return s
	}
	s.Board = next
	s.Moves++
	if next.IsSolved() {
		s.Status = Won
		s = s.recordBest()
		Log.Info("puzzle solved",
			"dim", s.Dim, "moves", s.Moves, "seconds", s.Elapsed)
	}
	return s
}

// recordBest keeps the strictly lowest winning move count per dimension.
func (s State) recordBest() State {
	if best, ok := s.Best[s.Dim]; ok && best <= s.Moves {
		return s
	}
	scores := make(map[int]int, len(s.Best)+1)
	maps.Copy(scores, s.Best)
	scores[s.Dim] = s.Moves
	s.Best = scores
	return s
}
