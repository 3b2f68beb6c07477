// Package printer styles diagnostic messages written to the terminal.
package printer
