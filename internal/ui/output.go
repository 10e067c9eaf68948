// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	BoxWidth = 46
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Status output destination
	Out io.Writer = os.Stderr

	// Parse results destination
	Result io.Writer = os.Stdout
)

// DisableColor turns off all styling, regardless of terminal detection.
func DisableColor() {
	color.NoColor = true
}

// Header prints the top border with "argdump" branding.
func Header() {
	border := strings.Repeat("─", BoxWidth-10)
	fmt.Fprintf(Out, "  ┌ %s %s\n", Bold("argdump"), Dim(border))
}

// Footer prints the bottom border.
func Footer() {
	border := strings.Repeat("─", BoxWidth-1)
	fmt.Fprintf(Out, "  └%s\n", Dim(border))
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s\n", Dim(msg))
}

// BlankLine prints a blank line.
func BlankLine() {
	fmt.Fprintln(Out, "")
}

// FlagRow prints one parsed flag. Flags without a value show a dimmed
// "(no value)" instead of a quoted string.
func FlagRow(index int, flag, value string, hasValue bool) {
	shown := Dim("(no value)")
	if hasValue {
		shown = Green(strconv.Quote(value))
	}
	fmt.Fprintf(Result, "%3d  %s  %s\n", index, Bold(strconv.Quote(flag)), shown)
}

// Value prints a single lookup result on its own line.
func Value(value string) {
	fmt.Fprintln(Result, value)
}
