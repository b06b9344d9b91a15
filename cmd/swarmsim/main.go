package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"swarmsim/internal/config"
	"swarmsim/internal/sim"
	"swarmsim/internal/util"
)

func main() {
	var cfgDir, out, scenario string
	var seed int64
	var n int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&scenario, "scenario", "basic", "scenario id")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.Parse()

	sc, err := config.LoadScenario(cfgDir, scenario)
	if err != nil {
		panic(err)
	}

	if n <= 1 {
		rng := util.New(seed)
		env := &sim.Env{Rng: rng}
		world := sim.NewWorld(sc, rng)
		res := sim.RunSingle(env, world, sc.ID, seed, saveLog)
		if err := os.WriteFile(out, sim.MarshalPretty(res), 0644); err != nil {
			panic(err)
		}
		fmt.Printf("Single run finished. Arrivals=%d/%d, T=%.2fs -> %s\n", res.Arrivals, res.Agents, res.Duration, out)
		return
	}

	type stat struct {
		Arrivals int
		Agents   int
		Bounces  int
		SumT     float64
		SumPath  float64
		SumDev   float64
	}
	var st stat
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := 8
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				runSeed := seed + int64(workerID)*7919 + int64(i)
				rng := util.New(runSeed)
				env := &sim.Env{Rng: rng}
				world := sim.NewWorld(sc, rng)
				res := sim.RunSingle(env, world, sc.ID, runSeed, false)

				mu.Lock()
				st.Arrivals += res.Arrivals
				st.Agents += res.Agents
				st.Bounces += res.Bounces
				st.SumT += res.Duration
				st.SumPath += res.MeanPathLen
				st.SumDev += res.MeanLateralDev
				mu.Unlock()
			}
		}(w)
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	arrivalRate := 0.0
	if st.Agents > 0 {
		arrivalRate = float64(st.Arrivals) / float64(st.Agents)
	}
	summary := map[string]any{
		"runs":            n,
		"scenario":        sc.ID,
		"arrival_rate":    arrivalRate,
		"avg_duration":    st.SumT / float64(n),
		"avg_path_len":    st.SumPath / float64(n),
		"avg_lateral_dev": st.SumDev / float64(n),
		"total_bounces":   st.Bounces,
	}
	if err := os.WriteFile(out, sim.MarshalPretty(summary), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}
