package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"sixfive/emu"
	"sixfive/emu/log"
	"sixfive/hw"
)

type mode byte

const (
	runMode     mode = iota // Run a memory image
	disasmMode              // Disassemble a memory image
	versionMode             // Show sixfive version
)

type (
	CLI struct {
		Run     Run     `cmd:"" help:"Run a memory image."`
		Disasm  Disasm  `cmd:"" help:"Disassemble a memory image."`
		Version Version `cmd:"" help:"Show sixfive version."`

		Log    logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		Config string     `help:"${config_help}" type:"existingfile" placeholder:"FILE"`

		mode mode
	}

	Run struct {
		ImagePath string `arg:"" name:"/path/to/image" help:"${image_help}" type:"existingfile"`

		LoadAddr  *hexAddr `name:"load-addr" help:"Address the image is loaded at." placeholder:"ADDR"`
		PC        *hexAddr `name:"pc" help:"Program counter at start." placeholder:"ADDR"`
		Hz        *int     `name:"hz" help:"Clock rate in instructions per second, 0 for unthrottled."`
		Steps     *int64   `name:"steps" help:"Stop after that many instructions, 0 for no limit."`
		Trace     *outfile `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		DumpState *outfile `name:"dump-state" help:"Write the final machine state as JSON." placeholder:"FILE|stdout|stderr"`
	}

	Disasm struct {
		ImagePath string `arg:"" name:"/path/to/image" help:"${image_help}" type:"existingfile"`

		LoadAddr hexAddr `name:"load-addr" help:"Address the image is loaded at." default:"0200" placeholder:"ADDR"`
		Count    int     `name:"count" help:"Number of instructions, 0 to disassemble the whole image." default:"0"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"image_help":  "Raw memory image, copied as is at the load address.",
	"config_help": "Config file to use instead of the default one.",
	"log_help":    "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("sixfive"),
		kong.Description("6502 CPU emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "disasm </path/to/image>":
		cfg.mode = disasmMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging but errors.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

// logModMask holds the modules given with --log. It is applied once the
// config file is loaded, replacing the log settings found there.
type logModMask struct {
	mask  log.ModuleMask
	nolog bool
	set   bool
}

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			lm.nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm.mask |= mod.Mask()
		}
	}

	if lm.nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm.mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
	}

	if allLogs {
		lm.mask = log.ModuleMaskAll
	}
	lm.set = true
	return nil
}

// applyLogging enables the log modules of the --log flag if it was given, or
// those of the config file otherwise.
func applyLogging(flag logModMask, lc emu.LogConfig) error {
	if !flag.set {
		return lc.Apply()
	}
	if flag.nolog {
		log.Disable()
		return nil
	}
	log.EnableDebugModules(flag.mask)
	return nil
}

// hexAddr is a 16-bit address written in hexadecimal, with an optional $ or
// 0x prefix.
type hexAddr hw.Address

// Decode implements kong.MapperValue interface.
func (a *hexAddr) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected an address, got %v", tok.Value)
	}

	addr, err := parseHexAddr(s)
	if err != nil {
		return err
	}
	*a = hexAddr(addr)
	return nil
}

func parseHexAddr(s string) (hw.Address, error) {
	digits := strings.TrimPrefix(s, "$")
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")

	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: must be a 16-bit hexadecimal value", s)
	}
	return hw.Address(v), nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
