package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"digitmatrix/config"
	"digitmatrix/host/sim"
	"digitmatrix/host/sim/window"
)

var (
	configPath = flag.String("config", "", "JSON config file (defaults match the firmware)")
	scale      = flag.Int("scale", 4, "Window scale factor")
	debug      = flag.Bool("debug", true, "Print diagnostic lines to stderr")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cfg, err = config.LoadConfig(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", *configPath, err)
			os.Exit(1)
		}
	}
	cfg.Debug = cfg.Debug && *debug

	start := time.Now()
	m, err := sim.New(cfg, func() time.Duration { return time.Since(start) }, func(s string) {
		fmt.Fprintln(os.Stderr, s)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	fmt.Println("A = increment, B = decrement, J = reset, Esc = quit")
	if err := window.Run(m, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if m.ResetRequested() {
		fmt.Println("Reset button pressed, exiting")
	}
}
