package ecss

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system pass.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	NodesVisited   int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	nodesVisited   int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems as full visitation passes over the
// registry root, in registration order, and tracks per-system timings.
type Scheduler struct {
	registry *Registry
	commands *Commands
	systems  []System
	stats    []*systemStatsInternal
}

// NewScheduler creates a scheduler driving the given registry.
func NewScheduler(registry *Registry) *Scheduler {
	return &Scheduler{
		registry: registry,
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// Register adds a system to the scheduler's pass order.
func (s *Scheduler) Register(sys System) {
	s.systems = append(s.systems, sys)

	systemType := reflect.TypeOf(sys)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.stats = append(s.stats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Commands returns the frame command buffer. Mutations queued here are
// flushed after the frame's passes complete.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Once executes one frame: every registered system runs a pre-order
// visitation pass over the registry root, then the buffered commands are
// flushed. A registry without a root makes the passes no-ops.
func (s *Scheduler) Once() error {
	root := s.registry.Root()

	for i, sys := range s.systems {
		start := time.Now()
		visited := s.registry.TraverseVisit(sys, root)
		duration := time.Since(start)

		stats := s.stats[i]
		stats.executionCount++
		stats.nodesVisited += int64(visited)
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	return s.commands.Flush(s.registry)
}

// Run executes frames repeatedly at the given interval until the context
// is cancelled or a command flush fails.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Once(); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	var totalExecs int64
	for i, internal := range s.stats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			NodesVisited:   internal.nodesVisited,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
