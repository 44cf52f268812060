// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/ezrec/duet/config"
	"github.com/ezrec/duet/cpu"
)

func main() {
	var configPath string
	var mode string
	var verbose bool
	var journal bool

	flag.StringVar(&configPath, "c", "", ".cue configuration file")
	flag.StringVar(&mode, "m", "", "Mode: recover, duet, or drain")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&journal, "journal", false, "Also log to the systemd journal")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	cfg := config.Default()
	if len(configPath) != 0 {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("%v: %v", configPath, err)
		}
	}

	// Flags given on the command line override the configuration.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "m":
			cfg.Mode = mode
		case "v":
			cfg.Verbose = verbose
		case "journal":
			cfg.Journal = journal
		}
	})
	if flag.NArg() == 1 {
		cfg.Program = flag.Arg(0)
	}

	if cfg.Verbose {
		level.Set(slog.LevelDebug)
	}
	slog.SetDefault(newLogger(os.Stderr, cfg.Journal))

	var input io.Reader
	if cfg.Program == "-" {
		input = os.Stdin
	} else {
		inf, err := os.Open(cfg.Program)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Program, err)
		}
		defer inf.Close()
		input = inf
	}

	asm := &cpu.Assembler{Verbose: cfg.Verbose}
	for equ, value := range cfg.Equates {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", cfg.Program, err)
	}
	slog.Debug("assembled", "program", cfg.Program, "instructions", prog.Len())

	err = run(os.Stdout, cfg, prog)
	if err != nil {
		log.Fatalf("%v: %v", cfg.Program, err)
	}
}
