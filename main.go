package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"sixfive/emu"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case versionMode:
		fmt.Println("sixfive", version())
	case disasmMode:
		checkf(disasmMain(cli.Disasm, os.Stdout), "disassembly failed")
	case runMode:
		cfg, err := loadConfig(cli.Config)
		checkf(err, "failed to load config %s", cli.Config)
		checkf(applyLogging(cli.Log, cfg.Log), "invalid log configuration")
		os.Exit(runMain(cli.Run, cfg))
	}
}

// loadConfig loads the config file at path, or the one in the user config
// directory if path is empty.
func loadConfig(path string) (emu.Config, error) {
	if path == "" {
		return emu.LoadConfigOrDefault(), nil
	}
	return emu.LoadConfig(path)
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
