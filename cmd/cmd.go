// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

// Package cmd carries the scaffolding shared by command line entry points:
// flag set construction, version reporting, and a replaceable exit hook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
)

// VERSION is set at build time via -ldflags.
var VERSION string = "unknown"

// Exit is replaceable so tests can intercept terminations.
var Exit = os.Exit

// Parse builds the program's flag set, lets fn register flags on it, and
// parses args. The returned flag set can be inspected with Visit to tell
// explicitly supplied flags from defaults.
func Parse(programName string, args []string, fn func(flags *flag.FlagSet)) *flag.FlagSet {

	flags := flag.NewFlagSet(programName, flag.ContinueOnError)
	flags.SetOutput(flag.CommandLine.Output())

	fn(flags)

	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			Exit(0)
		} else {
			Exit(1)
		}
	}

	return flags
}

// ShowVersion prints the program version and, when available, the VCS
// revision baked into the binary.
func ShowVersion(programName string) {
	fmt.Printf("%s version %s\n", programName, VERSION)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				fmt.Printf("  commit: %s\n", s.Value)
			}
			if s.Key == "vcs.time" {
				fmt.Printf("  built:  %s\n", s.Value)
			}
		}
	}
}
