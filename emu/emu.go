package emu

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"sixfive/emu/log"
	"sixfive/hw"
)

type Emulator struct {
	Machine *hw.Machine

	cfg   Config
	clock Clock
	image []byte
}

// status is a copy of the CPU state, sent by the emulation loop to the status
// reporter.
type status struct {
	regs  hw.Registers
	steps int64
}

// New creates an emulator with a powered-up machine. Call LoadImage or
// LoadBytes to load a program, then Run.
func New(cfg Config) *Emulator {
	m := hw.NewMachine()
	if cfg.TraceOut != nil {
		m.SetTraceOutput(cfg.TraceOut)
	}

	return &Emulator{
		Machine: m,
		cfg:     cfg,
		clock:   ClockFromHz(cfg.Clock.Hz),
	}
}

// LoadImage loads the raw memory image at path.
func (e *Emulator) LoadImage(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	if len(buf) == 0 {
		return fmt.Errorf("load image: %s is empty", path)
	}
	e.LoadBytes(buf)
	return nil
}

// LoadBytes copies buf into memory at the configured load address and points
// the program counter to the entry point.
func (e *Emulator) LoadBytes(buf []byte) {
	e.image = buf
	e.load()
}

func (e *Emulator) load() {
	addr := hw.Address(e.cfg.Machine.LoadAddress)
	e.Machine.Mem.Load(addr, e.image)
	e.Machine.Regs.PC = hw.Address(e.cfg.Machine.EntryPoint)

	log.ModEmu.InfoZ("Image loaded").
		Stringer("addr", addr).
		Int("size", len(e.image)).
		Stringer("entry", e.Machine.Regs.PC).
		End()
}

// Reset performs a power-on reset of the machine, and loads the last image
// again.
func (e *Emulator) Reset() {
	e.Machine.Reset()
	if e.image != nil {
		e.load()
	}
}

// Run runs the machine at the configured clock rate until ctx is cancelled,
// the maximum number of steps is reached or the CPU stops on an error, which
// is then returned.
func (e *Emulator) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	reports := make(chan status, 1)
	g.Go(func() error {
		defer close(reports)
		return e.clock.Run(ctx, func() error {
			return e.step(reports)
		})
	})
	g.Go(func() error {
		for s := range reports {
			log.ModEmu.InfoZ("CPU status").
				Hex16("PC", uint16(s.regs.PC)).
				Hex8("A", uint8(s.regs.A)).
				Hex8("X", s.regs.X).
				Hex8("Y", s.regs.Y).
				Hex8("SP", uint8(s.regs.SP)).
				Stringer("P", s.regs.P).
				Int64("steps", s.steps).
				End()
		}
		return nil
	})

	err := g.Wait()
	log.ModEmu.InfoZ("Emulation loop exited").
		Int64("steps", e.Machine.Steps).
		Error("err", err).
		End()
	return err
}

func (e *Emulator) step(reports chan<- status) error {
	if e.cfg.Clock.MaxSteps > 0 && e.Machine.Steps >= e.cfg.Clock.MaxSteps {
		return ErrStop
	}
	if err := e.Machine.Step(); err != nil {
		return err
	}

	if every := e.cfg.Clock.ReportEvery; every > 0 && e.Machine.Steps%every == 0 {
		// Reports are dropped while the reporter lags.
		select {
		case reports <- status{regs: e.Machine.Regs, steps: e.Machine.Steps}:
		default:
		}
	}
	return nil
}
