// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package colors

import (
	"fmt"
	"regexp"
)

var Red = "\033[31;1m"
var Yellow = "\033[33;1m"
var Mint = "\033[38;5;48;1m"
var Grey = "\033[90m"

var Clear = "\033[0;0m"

// Wrap surrounds text with the given color code and a reset.
func Wrap(color string, args ...interface{}) string {
	return color + fmt.Sprint(args...) + Clear
}

var uncolor = regexp.MustCompile("\x1b\\[([0-9]+;)*[0-9]+m")
var unwhite = regexp.MustCompile(`\s+`)

func Uncolor(text string) string {
	text = uncolor.ReplaceAllString(text, "")
	return unwhite.ReplaceAllString(text, " ")
}
