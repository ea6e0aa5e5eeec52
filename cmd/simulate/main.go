// Command simulate loads a scenario file, runs it to completion, and
// prints a summary of the resulting observables: flag-parsed scenario
// path, viper-backed configuration, a single blocking run, then a
// report.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	eightball "github.com/whatf0xx/eight-ball"
	"github.com/whatf0xx/eight-ball/observe"
)

const defaultScenario = "~~unset~~"

var (
	scenarioPath  string
	histogramPath string
	seed          int64
)

func init() {
	flag.StringVar(&scenarioPath, "scenario", defaultScenario, "scenario TOML file")
	flag.Int64Var(&seed, "seed", 1, "seed for non-tangential ring velocities")
}

func main() {
	flag.Parse()
	if scenarioPath == defaultScenario {
		log.Fatal("no scenario provided; pass -scenario path/to/scenario.toml")
	}

	scenario, err := eightball.LoadScenario(scenarioPath)
	if err != nil {
		log.Fatalf("could not load scenario: %s", err)
	}

	sim, err := scenario.Build(rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("could not build simulation: %s", err)
	}

	dataCh := make(chan eightball.DataEvent, 1000)
	pressure := observe.NewPressureWindow(1.0)
	hist := observe.NewHistogram(0, 10, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		prevT := 0.0
		for evt := range dataCh {
			pressure.Observe(evt)
			hist.Add(evt.Time - prevT)
			prevT = evt.Time
		}
	}()

	if err := sim.RunCollisionsWithData(scenario.Collisions, dataCh); err != nil {
		log.Fatalf("simulation failed: %s", err)
	}
	close(dataCh)
	<-done

	status := sim.Status()
	fmt.Printf("global time:      %g\n", status.GlobalTime)
	fmt.Printf("collisions:       %d (stale pops: %d, dropped records: %d)\n",
		status.AppliedCount, status.StalePopCount, status.DroppedRecords)
	fmt.Printf("container pressure (trailing %gs window): %g\n", 1.0, pressure.Pressure())

	counts, dividers := hist.Counts()
	fmt.Println("inter-collision time histogram:")
	for i, c := range counts {
		fmt.Fprintf(os.Stdout, "  [%6.3f, %6.3f): %g\n", dividers[i], dividers[i+1], c)
	}
}
