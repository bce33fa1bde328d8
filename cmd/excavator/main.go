// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/ezrec/excavator/repl"
)

func main() {
	var config string
	var load string
	var steps int
	var verbose bool

	flag.StringVar(&config, "c", "", ".toml configuration file to use")
	flag.StringVar(&load, "l", "", "Program expression to load at startup")
	flag.IntVar(&steps, "n", -1, "Step budget for .run (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := repl.DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = repl.LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}
	if steps >= 0 {
		cfg.MaxSteps = steps
	}
	if verbose {
		cfg.Verbose = true
	}

	shell := repl.NewRepl(cfg, os.Stdout)
	history := &repl.History{Limit: cfg.HistoryLimit}

	if len(load) != 0 {
		err := shell.Execute(".load "+load, history)
		if err != nil {
			log.Fatalf("-l: %v", err)
		}
	}

	err := shell.Run(os.Stdin, history)
	if errors.Is(err, repl.ErrQuit) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
}
