// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"keypad.dev/calc/config"
	"keypad.dev/calc/demo"
	"keypad.dev/calc/mobile"
)

var (
	prompt    string
	precision int
	debug     []string
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calc",
		Short:         "Keypad calculator",
		Long:          mobile.Help(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := mobile.NewDisplay(mobile.New(&conf))
			return session(d, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&prompt, "prompt", "", "command prompt")
	root.PersistentFlags().IntVar(&precision, "precision", config.DefaultPrecision, "decimal places in results")
	root.PersistentFlags().StringSliceVar(&debug, "debug", nil,
		"debugging traces to enable: "+strings.Join(config.DebugFlags, ", "))

	root.AddCommand(evalCmd(), demoCmd())
	return root
}

// setup loads the configuration from the flags.
func setup(cmd *cobra.Command) error {
	conf = config.Config{}
	conf.SetPrompt(prompt)
	conf.SetPrecision(precision)
	conf.SetOutput(cmd.OutOrStdout())
	conf.SetErrOutput(cmd.ErrOrStderr())
	for _, name := range debug {
		if !slices.Contains(config.DebugFlags, name) {
			return fmt.Errorf("unknown debug flag %q", name)
		}
		conf.SetDebug(name, true)
	}
	return nil
}

func evalCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "eval expression...",
		Short: "Evaluate expressions as if they were keyed in and followed by =",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := mobile.New(&conf)
			failed := 0
			for _, arg := range args {
				if !strict {
					fmt.Fprintln(conf.Output(), c.Operate(arg, "="))
					continue
				}
				result, err := c.Evaluate(mobile.Translate(arg))
				if err != nil {
					fmt.Fprintf(conf.ErrOutput(), "%s: %s\n", arg, err)
					failed++
					continue
				}
				fmt.Fprintln(conf.Output(), result)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "report expressions that cannot be evaluated")
	return cmd
}

func demoCmd() *cobra.Command {
	var script bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration; press return to advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader
			if !script {
				in = cmd.InOrStdin()
			}
			return demo.Run(in, mobile.NewDisplay(mobile.New(&conf)), conf.Output())
		},
	}
	cmd.Flags().BoolVar(&script, "script", false, "run the whole script without waiting for input")
	return cmd
}

// keyAliases maps keys that are easy to type to the keypad's labels.
var keyAliases = map[string]string{
	"*":     "×",
	"/":     "÷",
	"-":     "−",
	"C":     "AC",
	"c":     "AC",
	"clear": "AC",
	"del":   "←",
}

// session reads lines of keys from r, presses them on the display, and
// prints the display after each line. Blank lines are ignored.
func session(d *mobile.Display, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, conf.Prompt())
		if !scanner.Scan() {
			break
		}
		keys := strings.Fields(scanner.Text())
		if len(keys) == 0 {
			continue
		}
		for _, key := range keys {
			if alias, ok := keyAliases[key]; ok {
				key = alias
			}
			d.Key(key)
		}
		fmt.Fprintln(w, d.Text())
	}
	return scanner.Err()
}
