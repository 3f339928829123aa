package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/universe/ecs"
)

var profileModes = map[string]func(*profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"block":     profile.BlockProfile,
	"mutex":     profile.MutexProfile,
	"trace":     profile.TraceProfile,
	"goroutine": profile.GoroutineProfile,
	"clock":     profile.ClockProfile,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	tick := flag.Duration("tick", 0, "Minimum time between updates. Zero runs updates back to back.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory (cpu, mem, block, mutex, trace, goroutine, clock).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *profileMode != "" {
		mode, ok := profileModes[*profileMode]
		if !ok {
			log.Fatalf("Unknown profile mode %q", *profileMode)
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	log.Println("Starting universe stress test...")

	u := ecs.NewUniverse(ecs.WithComponentRegistry(registry))
	if err := registerSystems(u); err != nil {
		log.Fatalf("Failed to register systems: %v", err)
	}

	log.Printf("Populating storage with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(u.Storage)
	}
	log.Println("Population complete.")

	report := &Report{
		Universe:       u.ID().String(),
		Duration:       *duration,
		Tick:           *tick,
		Entities:       *entityCount,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var ticks <-chan time.Time
	if *tick > 0 {
		ticker := time.NewTicker(*tick)
		defer ticker.Stop()
		ticks = ticker.C
	}

	startTime := time.Now()
	if err := u.Update(true); err != nil {
		log.Fatalf("Update failed: %v", err)
	}

Loop:
	for {
		if ticks != nil {
			select {
			case <-ctx.Done():
				break Loop
			case <-ticks:
			}
		} else {
			select {
			case <-ctx.Done():
				break Loop
			default:
			}
		}

		updateStart := time.Now()
		if err := u.Update(false); err != nil {
			log.Fatalf("Update failed: %v", err)
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Stats = u.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
