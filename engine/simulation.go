package engine

import (
	"io"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Snapshot is a read-only view of the simulation for rendering.
// Grid is immutable and may be held across ticks.
type Snapshot struct {
	Grid       *model.Grid
	Generation int
	Running    bool
	Speed      Speed
	Interval   time.Duration
}

// Simulation owns the live grid, the generation counter and the run state.
//
// All methods may be called from any goroutine; a single mutex serializes
// them with the scheduler's ticks so each tick observes one consistent grid.
type Simulation struct {
	mu         sync.Mutex
	dimension  int
	grid       *model.Grid
	generation int
	running    bool
	speed      Speed

	rng      *rand.Rand
	logger   *log.Logger
	observer func(Snapshot)
	after    func(time.Duration) <-chan time.Time
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source used for seeding.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithSpeed sets the initial speed. Invalid speeds are rejected by New.
func WithSpeed(speed Speed) Option {
	return func(s *Simulation) { s.speed = speed }
}

// WithLogger sets the lifecycle logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// WithObserver registers a callback invoked after every tick, outside the lock.
func WithObserver(fn func(Snapshot)) Option {
	return func(s *Simulation) { s.observer = fn }
}

// WithTimer replaces time.After for the scheduling loop.
func WithTimer(after func(time.Duration) <-chan time.Time) Option {
	return func(s *Simulation) { s.after = after }
}

// New creates a running simulation with a freshly seeded grid
func New(dimension int, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		dimension: dimension,
		running:   true,
		speed:     SpeedFast,
		logger:    log.New(io.Discard, "", 0),
		after:     time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.speed.Valid() {
		return nil, errors.Wrapf(ErrInvalidSpeed, "[New] speed: %d", s.speed)
	}
	if s.rng == nil {
		s.rng = model.NewRand(0)
	}

	grid, err := model.Seed(dimension, s.rng)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to seed grid")
	}
	s.grid = grid
	s.logger.Printf("initialized %dx%d grid with %d living cells", dimension, dimension, grid.CountLivingCells())
	return s, nil
}

// Snapshot returns the current state
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Simulation) snapshotLocked() Snapshot {
	return Snapshot{
		Grid:       s.grid,
		Generation: s.generation,
		Running:    s.running,
		Speed:      s.speed,
		Interval:   s.speed.Interval(),
	}
}

// ToggleExecution flips between running and paused
func (s *Simulation) ToggleExecution() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
	s.logger.Printf("running: %v", s.running)
}

// Pause stops generations from advancing; the timer keeps firing
func (s *Simulation) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Resume lets generations advance from the next tick
func (s *Simulation) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
}

// SetSpeed changes the tick interval, effective from the next scheduled tick
func (s *Simulation) SetSpeed(speed Speed) error {
	if !speed.Valid() {
		return errors.Wrapf(ErrInvalidSpeed, "[SetSpeed] speed: %d", speed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed = speed
	s.logger.Printf("speed set to %s (%v)", speed, speed.Interval())
	return nil
}

// ClearBoard kills every cell, stops execution and resets the generation count
func (s *Simulation) ClearBoard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := model.Clear(s.dimension)
	if err != nil {
		return errors.Wrap(err, "[ClearBoard]")
	}
	s.grid = grid
	s.generation = 0
	s.running = false
	s.logger.Printf("board cleared")
	return nil
}

// ToggleCell flips the cell at index without touching the generation count
func (s *Simulation) ToggleCell(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := s.grid.Toggle(index)
	if err != nil {
		return errors.Wrap(err, "[ToggleCell]")
	}
	s.grid = grid
	return nil
}

// Place brings the cells at indices to life without touching the generation count.
// Either every cell is placed or, on an invalid index, none are.
func (s *Simulation) Place(indices ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := s.grid.WithAlive(indices...)
	if err != nil {
		return errors.Wrap(err, "[Place]")
	}
	s.grid = grid
	return nil
}

// Restart reseeds the grid, resets the generation count and resumes execution
func (s *Simulation) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := model.Seed(s.dimension, s.rng)
	if err != nil {
		return errors.Wrap(err, "[Restart]")
	}
	s.grid = grid
	s.generation = 0
	s.running = true
	s.logger.Printf("restarted with %d living cells", grid.CountLivingCells())
	return nil
}

// Tick performs one timer firing: a generation step while running, nothing while paused
func (s *Simulation) Tick() {
	s.mu.Lock()
	if s.running {
		s.generation++
		s.grid = s.grid.Step()
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if s.observer != nil {
		s.observer(snap)
	}
}
