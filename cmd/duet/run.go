package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ezrec/duet/config"
	"github.com/ezrec/duet/cpu"
	"github.com/ezrec/duet/duet"
	"github.com/ezrec/duet/emulator"
	"github.com/ezrec/duet/translate"
)

var f = translate.From

var (
	ErrModeInvalid = errors.New(f("mode invalid"))
	ErrIdsInvalid  = errors.New(f("two program ids required"))
)

// run executes a listing in the configured mode, and prints the result.
func run(out io.Writer, cfg config.Config, prog *cpu.Program) (err error) {
	switch cfg.Mode {
	case config.MODE_RECOVER:
		emu := emulator.NewEmulator(prog, 0)
		emu.Verbose = cfg.Verbose
		var sound int64
		sound, err = emu.FirstRecovered()
		if err != nil {
			return
		}
		slog.Debug("recovered", "ticks", emu.Ticks(), "line", emu.LineNo())
		_, err = fmt.Fprintf(out, "first sound recovered: %d\n", sound)
	case config.MODE_DUET:
		if len(cfg.Ids) != 2 {
			err = ErrIdsInvalid
			return
		}
		s := duet.NewScheduler(prog, [2]int64{cfg.Ids[0], cfg.Ids[1]})
		s.Verbose = cfg.Verbose
		var res duet.Result
		res, err = s.Run()
		if err != nil {
			return
		}
		slog.Debug("duet done",
			"ticks", res.Ticks,
			"sent_a", res.SentA,
			"sent_b", res.SentB,
			"state_a", res.StateA.String(),
			"state_b", res.StateB.String())
		_, err = fmt.Fprintf(out, "program %v sent %d values\n", s.B.Name, res.Sent())
	case config.MODE_DRAIN:
		if len(cfg.Ids) == 0 {
			err = ErrIdsInvalid
			return
		}
		p := duet.NewProgram("0", prog, cfg.Ids[0])
		p.Verbose = cfg.Verbose
		var values []int64
		values, err = p.Drain()
		if err != nil {
			return
		}
		slog.Debug("drained", "count", len(values), "state", p.State().String())
		for _, value := range values {
			_, err = fmt.Fprintf(out, "%d\n", value)
			if err != nil {
				return
			}
		}
	default:
		err = fmt.Errorf("%w: %v", ErrModeInvalid, cfg.Mode)
	}

	return
}
