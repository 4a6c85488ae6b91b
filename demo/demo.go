// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the demo command.
// The script for the demo is in demo.keys in this directory.
// Its content is embedded in this source file.
package demo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	_ "embed"

	"keypad.dev/calc/mobile"
)

//go:embed demo.keys
var demoText []byte

// Text returns the key script for the standard demo.
func Text() string {
	return string(demoText)
}

// Run runs the demo. The arguments are the user's input, the display the
// keys are pressed on, and a Writer for the output. Lines of keys are read
// from a file (maintained in demo.keys but embedded in the package). When
// the user hits a blank line, the next line from the file is shown and its
// keys are pressed. If the user's input line has text, those keys are
// pressed instead and the file does not advance. After each line of keys
// the display is printed, indented by a tab.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, display *mobile.Display, output io.Writer) error {
	text := demoText // Don't overwrite the global!
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	nextLine := func() (line []byte) {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 { // EOF or incomplete line.
			return nil
		}
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	press := func(line []byte) error {
		keys := bytes.TrimSpace(line)
		if len(keys) == 0 || keys[0] == '#' {
			return nil
		}
		_, err := fmt.Fprintf(output, "\t%s\n", display.Keys(string(keys)))
		return err
	}
	// Show first line, with instructions, before accepting user input.
	output.Write(nextLine())
	for userInput == nil || scan.Scan() {
		if userInput != nil && len(bytes.TrimSpace(scan.Bytes())) > 0 {
			// User typed a non-empty line of keys; press those.
			line := scan.Bytes()
			// "quit" terminates.
			if string(bytes.TrimSpace(line)) == "quit" {
				break
			}
			if err := press(line); err != nil {
				return err
			}
		} else {
			// User typed newline; press the next line of the file's keys.
			line := nextLine()
			if line == nil {
				break
			}
			output.Write(line)
			if err := press(line); err != nil {
				return err
			}
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}
