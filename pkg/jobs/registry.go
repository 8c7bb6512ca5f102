// Package jobs keeps the registry of named map/reduce jobs available to
// the runner. Job packages register themselves from init, so importing a
// job package is all it takes to make it runnable.
package jobs

import (
	"fmt"
	"slices"

	"github.com/mihir1708/mapreduce/pkg/core"
)

// Job is a named map/reduce computation. A Job is constructed fresh for
// every run, configured, validated and then handed to the engine.
type Job interface {
	Name() string
	Describe() string

	// Configure applies runner options, for example the output directory
	// or a search pattern. Validate reports whether the job is runnable
	// after configuration.
	Configure(options map[string]string) error
	Validate() error

	// Map and Reduce implement core.MapFunc and core.ReduceFunc.
	Map(unit string, em core.Emitter)
	Reduce(key string, partition int, values core.Fetcher)
}

// Factory builds a fresh, unconfigured Job.
type Factory func() Job

var registry = make(map[string]Factory)

func Register(name string, factory Factory) error {
	if _, exists := registry[name]; exists {
		return fmt.Errorf("job already registered: %s", name)
	}
	registry[name] = factory
	return nil
}

func Get(name string) (Job, error) {
	factory, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("job not found: %s", name)
	}
	return factory(), nil
}

func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
