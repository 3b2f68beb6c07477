// Package cli defines the relmeta command line: one positional version
// argument, output format selection, and logging/color flags.
package cli
