package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"sixfive/emu"
	"sixfive/hw"
)

// runMain runs the image and returns the process exit code.
func runMain(args Run, cfg emu.Config) int {
	if args.LoadAddr != nil {
		cfg.Machine.LoadAddress = uint16(*args.LoadAddr)
		if args.PC == nil {
			cfg.Machine.EntryPoint = uint16(*args.LoadAddr)
		}
	}
	if args.PC != nil {
		cfg.Machine.EntryPoint = uint16(*args.PC)
	}
	if args.Hz != nil {
		cfg.Clock.Hz = *args.Hz
	}
	if args.Steps != nil {
		cfg.Clock.MaxSteps = *args.Steps
	}

	if args.Trace != nil {
		cfg.TraceOut = args.Trace
		defer args.Trace.Close()
	}

	e := emu.New(cfg)
	checkf(e.LoadImage(args.ImagePath), "failed to load image")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := e.Run(ctx)
	printState(os.Stdout, e.Machine)

	if args.DumpState != nil {
		_, err := args.DumpState.Write(e.Machine.Snapshot().Marshal())
		if err == nil {
			err = args.DumpState.Close()
		}
		checkf(err, "failed to write machine state to %s", args.DumpState)
	}

	if runErr != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("CPU halted:"), runErr)
		if errors.Is(runErr, hw.ErrNotImplemented) || errors.Is(runErr, hw.ErrIllegalOpcode) {
			return 2
		}
		return 1
	}
	return 0
}

// printState writes the register file and the flags, set flags in green.
func printState(w io.Writer, m *hw.Machine) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s  %s %02X  %s %02X  %s %02X  %s %02X\n",
		bold("PC"), m.Regs.PC,
		bold("A"), uint8(m.Regs.A),
		bold("X"), m.Regs.X,
		bold("Y"), m.Regs.Y,
		bold("SP"), uint8(m.Regs.SP))

	const names = "NVUBDIZC"
	fmt.Fprintf(w, "%s ", bold("P"))
	for i := range 8 {
		flag := hw.P(1 << (7 - i))
		if m.Regs.P&flag != 0 {
			fmt.Fprint(w, green(string(names[i])))
		} else {
			fmt.Fprint(w, faint(string(names[i]-'A'+'a')))
		}
	}
	fmt.Fprintf(w, " ($%02X)  %s %d\n", uint8(m.Regs.P), bold("steps"), m.Steps)
}

// disasmMain disassembles the image given in args.
func disasmMain(args Disasm, w io.Writer) error {
	buf, err := os.ReadFile(args.ImagePath)
	if err != nil {
		return err
	}

	m := hw.NewMachine()
	addr := hw.Address(args.LoadAddr)
	m.Mem.Load(addr, buf)

	if args.Count > 0 {
		_, err = m.Disassemble(w, addr, args.Count)
		return err
	}

	// Disassemble until the end of the image.
	end := int(addr) + min(len(buf), 0x10000)
	for pc := int(addr); pc < end; {
		op := m.Disasm(hw.Address(pc))
		if _, err := fmt.Fprintln(w, op); err != nil {
			return err
		}
		pc += len(op.Buf)
	}
	return nil
}
