// Package console implements rtab's interactive helpers: R-style
// fixed-width column layout for string lists, and object content listing.
package console

import (
	"fmt"
	"io"
	"strings"
)

// PrettyConf configures Pretty
type PrettyConf struct {
	Width          int  // The width of the screen in characters. Defaults to 80.
	ShowUnderscore bool // If true, entries which begin or end with an underscore are included. They are hidden by default.
}

// Pretty writes a list of strings to w in fixed-width columns, fitting as
// many entries per line as the configured width allows.
func Pretty(w io.Writer, entries []string, conf *PrettyConf) error {
	if conf == nil {
		conf = &PrettyConf{}
	}
	width := conf.Width
	if width == 0 {
		width = 80
	}
	toPrint := entries
	if !conf.ShowUnderscore {
		toPrint = make([]string, 0, len(entries))
		for _, entry := range entries {
			if strings.HasPrefix(entry, "_") || strings.HasSuffix(entry, "_") {
				continue
			}
			toPrint = append(toPrint, entry)
		}
	}
	if len(toPrint) == 0 {
		return nil
	}

	maxLen := 0
	for _, entry := range toPrint {
		if len(entry) > maxLen {
			maxLen = len(entry)
		}
	}
	entryWidth := maxLen + 2

	line := ""
	for _, entry := range toPrint {
		padded := entry + strings.Repeat(" ", entryWidth-len(entry))
		if len(line)+entryWidth <= width {
			line += padded
			continue
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
		line = padded
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(line, " "))
	return err
}
