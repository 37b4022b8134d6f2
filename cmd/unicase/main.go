/*
Copyright 2026 The Unicase Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command unicase exposes the case-conversion and regex
// canonicalization tables on the command line. Strings come from
// arguments, or from stdin when no argument is given.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/unicase/unicase"
)

var (
	logLevel  string
	logFormat string

	root = &cobra.Command{
		Use:           "unicase",
		Short:         "unicase converts text case and inspects regex case equivalence.",
		Version:       unicase.UnicodeVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}
)

func setupLogging() error {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", logLevel)
	}

	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	case "text":
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:   level,
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})
	default:
		return fmt.Errorf("invalid log-format %q: expected text or json", logFormat)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// eachInput invokes visit for every operand: the arguments when
// present, the lines of stdin otherwise.
func eachInput(args []string, visit func(s string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := visit(arg); err != nil {
				return err
			}
		}
		return nil
	}
	scan := bufio.NewScanner(os.Stdin)
	for scan.Scan() {
		if err := visit(scan.Text()); err != nil {
			return err
		}
	}
	return scan.Err()
}

// parseCodepoint accepts a literal character, a U+XXXX form, or a
// plain hex number.
func parseCodepoint(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(v), nil
}

func formatCodepoint(cp rune) string {
	if strconv.IsPrint(cp) {
		return fmt.Sprintf("U+%04X %c", cp, cp)
	}
	return fmt.Sprintf("U+%04X", cp)
}

var upperCmd = &cobra.Command{
	Use:   "upper [string...]",
	Short: "Convert strings to upper case.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachInput(args, func(s string) error {
			slog.Debug("converting", "len", len(s))
			fmt.Println(unicase.ToUpper(s))
			return nil
		})
	},
}

var lowerCmd = &cobra.Command{
	Use:   "lower [string...]",
	Short: "Convert strings to lower case.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachInput(args, func(s string) error {
			slog.Debug("converting", "len", len(s))
			fmt.Println(unicase.ToLower(s))
			return nil
		})
	},
}

var canonCmd = &cobra.Command{
	Use:   "canon [codepoint...]",
	Short: "Print the regex canonical form of code points.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachInput(args, func(s string) error {
			cp, err := parseCodepoint(s)
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", formatCodepoint(cp), formatCodepoint(unicase.Canonicalize(cp)))
			return nil
		})
	},
}

var classCmd = &cobra.Command{
	Use:   "class [codepoint...]",
	Short: "Print the regex case-equivalence class of code points.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachInput(args, func(s string) error {
			cp, err := parseCodepoint(s)
			if err != nil {
				return err
			}
			cls := unicase.EquivalenceClass(cp)
			if cls == nil {
				fmt.Printf("%s: singleton\n", formatCodepoint(cp))
				return nil
			}
			members := make([]string, 0, len(cls))
			for _, m := range cls {
				members = append(members, formatCodepoint(m))
			}
			fmt.Printf("%s: {%s}\n", formatCodepoint(cp), strings.Join(members, ", "))
			return nil
		})
	},
}

func init() {
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum level to log (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text, json)")
	root.AddCommand(upperCmd, lowerCmd, canonCmd, classCmd)
}

func main() {
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
