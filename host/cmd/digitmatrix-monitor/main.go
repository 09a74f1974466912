package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"digitmatrix/host/monitor"
	"digitmatrix/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	raw    = flag.Bool("raw", false, "Print lines as received instead of decoded")
	filter = flag.String("filter", "", "Only show one event kind (input, render, blink, reset, dropped)")
)

func main() {
	flag.Parse()

	show := func(monitor.Kind) bool { return true }
	if *filter != "" {
		k, err := monitor.ParseKind(*filter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		show = func(got monitor.Kind) bool { return got == k }
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mon := monitor.NewMonitor()
	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to board on %s...\n", *device)
	if err := mon.ConnectWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer mon.Close()
	fmt.Println("Connected. Press Ctrl-C to stop.")

	var stats monitor.Stats
	err := mon.Run(ctx, func(ev monitor.Event, err error) {
		if err != nil {
			stats.Malformed++
			fmt.Fprintf(os.Stderr, "warning: %v: %q\n", err, ev.Raw)
			return
		}
		stats.Add(ev)
		if !show(ev.Kind) {
			return
		}
		if *raw {
			fmt.Println(ev.Raw)
			return
		}
		printEvent(ev)
	})

	fmt.Println()
	stats.Write(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printEvent(ev monitor.Event) {
	switch ev.Kind {
	case monitor.KindInput:
		fmt.Printf("%10d ms  %-9s -> %d\n", ev.Clock, ev.Channel, ev.Value)
	case monitor.KindRender:
		fmt.Printf("%13s  matrix shows %d\n", "", ev.Value)
	case monitor.KindBlink:
		state := "off"
		if ev.Value == 1 {
			state = "on"
		}
		fmt.Printf("%13s  status LED %s\n", "", state)
	case monitor.KindReset:
		fmt.Printf("%10d ms  board rebooting into bootloader\n", ev.Clock)
	case monitor.KindDropped:
		fmt.Printf("%13s  %d input events lost\n", "", ev.Value)
	default:
		fmt.Println(ev.Raw)
	}
}
