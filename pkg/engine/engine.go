// Package engine executes map/reduce computations inside a single process,
// fanning work out over a fixed pool of workers and exchanging intermediate
// pairs through in-memory partitions.
package engine

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mihir1708/mapreduce/pkg/core"
	"github.com/mihir1708/mapreduce/pkg/pool"
)

// Config describes one map/reduce computation.
type Config struct {
	// Inputs are the unit-of-work identifiers handed to Map, one map job
	// each. Typically file paths, but the engine never opens them itself.
	Inputs []string

	// Workers is the number of pool workers shared by both phases. Run
	// fails when it is not positive.
	Workers int

	// Partitions is the number of intermediate partitions and therefore
	// the number of reduce jobs. With zero partitions emitted pairs are
	// dropped and the reduce phase has nothing to do.
	Partitions int

	// Map and Reduce are the user callbacks. Both are required.
	Map    core.MapFunc
	Reduce core.ReduceFunc

	// Cost estimates how expensive mapping a unit will be. Map jobs run
	// cheapest first, so a good estimate lets small units overtake large
	// ones. When nil, FileSize is used.
	Cost func(unit string) int64

	// Logger receives run progress. When nil, logging is discarded.
	Logger *slog.Logger
}

func (c Config) validate() error {
	if c.Map == nil {
		return errors.New("map function is required")
	}
	if c.Reduce == nil {
		return errors.New("reduce function is required")
	}
	if c.Partitions < 0 {
		return fmt.Errorf("negative partition count %d", c.Partitions)
	}
	return nil
}

// Engine runs map/reduce computations described by a Config.
type Engine struct {
	config Config
	log    *slog.Logger
}

func NewEngine(config Config) *Engine {
	log := config.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{config: config, log: log}
}

// Run executes the computation: all inputs are mapped in parallel, Run
// waits until the map phase fully drains, then all partitions are reduced
// in parallel. It returns after the reduce phase drained and the pool shut
// down. Each call builds its own pool and intermediate state, so an Engine
// may run repeatedly, and concurrent Run calls do not disturb each other.
func (e *Engine) Run() error {
	if err := e.config.validate(); err != nil {
		return err
	}

	workers, err := pool.New(e.config.Workers)
	if err != nil {
		return fmt.Errorf("error creating worker pool: %w", err)
	}
	defer workers.Close()

	log := e.log.With("run_id", uuid.NewString())
	log.Info("run starting",
		"units", len(e.config.Inputs),
		"workers", e.config.Workers,
		"partitions", e.config.Partitions)

	st := newStore(e.config.Partitions)

	start := time.Now()
	if err := e.runMap(workers, st); err != nil {
		return err
	}
	log.Info("map phase complete", "duration", time.Since(start))

	start = time.Now()
	if err := e.runReduce(workers, st); err != nil {
		return err
	}
	log.Info("reduce phase complete", "duration", time.Since(start))

	return nil
}

type mapUnit struct {
	name string
	cost int64
}

// runMap submits one job per input unit, cheapest units first, and blocks
// until every mapper has finished.
func (e *Engine) runMap(workers *pool.Pool, st *store) error {
	units := make([]mapUnit, len(e.config.Inputs))
	for i, name := range e.config.Inputs {
		units[i] = mapUnit{name: name, cost: e.unitCost(name)}
	}
	slices.SortFunc(units, func(left, right mapUnit) int {
		return cmp.Compare(left.cost, right.cost)
	})

	for _, unit := range units {
		err := workers.Submit(func() { e.config.Map(unit.name, st) }, unit.cost)
		if err != nil {
			return fmt.Errorf("error submitting map job: %w", err)
		}
	}

	workers.Wait()
	return nil
}

// runReduce submits one job per partition, ordered by the volume of bytes
// the map phase filed into each, and blocks until all of them finished.
// The byte counters are stable here: mappers quiesced at the map barrier.
func (e *Engine) runReduce(workers *pool.Pool, st *store) error {
	type reduceUnit struct {
		partition int
		cost      int64
	}
	units := make([]reduceUnit, len(st.parts))
	for i, p := range st.parts {
		units[i] = reduceUnit{partition: i, cost: p.bytes}
	}
	slices.SortFunc(units, func(left, right reduceUnit) int {
		return cmp.Compare(left.cost, right.cost)
	})

	for _, unit := range units {
		err := workers.Submit(func() { st.reduce(unit.partition, e.config.Reduce) }, unit.cost)
		if err != nil {
			return fmt.Errorf("error submitting reduce job: %w", err)
		}
	}

	workers.Wait()
	return nil
}

func (e *Engine) unitCost(unit string) int64 {
	if e.config.Cost != nil {
		return e.config.Cost(unit)
	}
	return FileSize(unit)
}
