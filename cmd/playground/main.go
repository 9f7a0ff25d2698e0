package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/aqilarik/delay/delay"
	"github.com/aqilarik/delay/internal/config"
	"github.com/aqilarik/delay/internal/log"
	"github.com/aqilarik/delay/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	path := flag.String("scenario", cfg.Scenario, "scenario YAML file")
	flag.Parse()

	log.Setup(cfg.LogLevel)
	logger := log.WithComponent("playground")

	f, err := scenario.LoadFile(*path)
	if err != nil {
		logger.Error("load scenario", "error", err)
		os.Exit(1)
	}

	res, err := scenario.Run(f,
		delay.WithImmediate(cfg.Immediate),
		delay.WithLogger(log.Get()),
	)
	if err != nil {
		logger.Error("run scenario", "error", err)
		os.Exit(1)
	}

	fmt.Println("IMMEDIATE:", cfg.Immediate)
	fmt.Println("\nDISPATCHED:")
	for i, t := range res.Log {
		fmt.Printf("%3d  %s\n", i+1, t)
	}

	fmt.Println("\nSTATE:")
	keys := make([]string, 0, len(res.State))
	for k := range res.State {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("- %s = %v\n", k, res.State[k])
	}

	fmt.Println("\nPENDING:", res.Pending)
}
