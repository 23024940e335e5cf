package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sibexico/PageSim/sim"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		frames     = flag.Uint("frames", 0, "number of physical frames (required)")
		policy     = flag.String("policy", "", "eviction policy: opt|clock|nru|rand|lru (required)")
		refresh    = flag.Uint64("refresh", 0, "NRU refresh period in accesses (required for nru)")
		seed       = flag.Int64("seed", 0, "seed for the rand policy")
		mmapTrace  = flag.Bool("mmap", false, "load the trace via memory mapping")
		compare    = flag.Bool("compare", false, "run every policy over the trace and compare")
		verbose    = flag.Bool("v", false, "emit the per-access diagnostic stream")
	)
	flag.Parse()

	config := sim.LoadConfigFromEnv()
	if *configPath != "" {
		fileConfig, err := sim.LoadConfigFromFile(*configPath)
		if err != nil {
			fatal(err)
		}
		config = fileConfig
	}

	// Flags set on the command line win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			config.FrameCount = uint32(*frames)
		case "policy":
			config.Policy = *policy
		case "refresh":
			config.RefreshRate = *refresh
		case "seed":
			config.Seed = *seed
		case "mmap":
			config.MmapTrace = *mmapTrace
		case "v":
			config.Verbose = *verbose
			config.LogLevel = "debug"
		}
	})

	if flag.NArg() == 1 {
		config.TracePath = flag.Arg(0)
	}
	if config.TracePath == "" {
		fmt.Fprintln(os.Stderr, "usage: pagesim -frames N -policy opt|clock|nru|rand|lru [flags] tracefile")
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger := newLogger(config.LogLevel)

	if err := config.Validate(); err != nil {
		fatal(err)
	}

	var trace []sim.Operation
	var err error
	if config.MmapTrace {
		trace, err = sim.LoadTraceMmap(config.TracePath)
	} else {
		trace, err = sim.LoadTrace(config.TracePath)
	}
	if err != nil {
		fatal(err)
	}

	if *compare {
		runs, err := sim.RunAll(config, trace, logger)
		if err != nil {
			fatal(err)
		}
		for _, run := range runs {
			fmt.Printf("%-6s faults=%d write_backs=%d hit_rate=%.4f\n",
				run.Policy, run.Stats.Faults, run.Stats.WriteBacks, run.Stats.HitRate)
		}
		return
	}

	simulator, err := sim.NewSimulator(config, trace, logger)
	if err != nil {
		fatal(err)
	}
	simulator.Run()
	simulator.LogSummary()
	fmt.Print(simulator.Report())
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "pagesim: %v\n", err)
	os.Exit(1)
}
