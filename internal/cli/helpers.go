package cli

import (
	"fmt"
	"os"
)

var (
	quiet   bool
	noColor bool
)

// SetQuiet enables quiet mode (suppresses success/info output)
func SetQuiet(q bool) {
	quiet = q
}

// SetNoColor disables colored symbol prefixes
func SetNoColor(nc bool) {
	noColor = nc
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Printf("✓ %s\n", msg)
		} else {
			fmt.Printf("OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Printf("ℹ %s\n", msg)
		} else {
			fmt.Printf("INFO: %s\n", msg)
		}
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(os.Stderr, "× %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	}
}
