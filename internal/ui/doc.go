// Package ui provides terminal output formatting for argdump.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - One row per parsed flag, with missing values dimmed
//
// All output goes to ui.Out (defaults to os.Stderr) so tests can capture
// it. Flag rows and lookup results go to ui.Result (defaults to os.Stdout)
// so argdump output can be piped.
//
// Example usage:
//
//	ui.Header()
//	ui.FlagRow(1, "-threads", "8", true)
//	ui.FlagRow(2, "-verbose", "", false)
//	ui.Success("%d flags", 2)
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
