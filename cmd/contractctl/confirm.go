package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks a [y/N] question on out and reads the answer from c.in. Only
// y or yes proceeds; --yes skips the prompt.
func (c *cli) confirm(out io.Writer, question string) bool {
	if c.yes {
		return true
	}
	fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
