// Package display renders clickprint results for the terminal.
//
// Feature vectors, comparisons and classifier verdicts are printed as aligned
// tables. Colour comes from fatih/color and follows a fixed scheme:
//   - Green for close matches and human verdicts
//   - Yellow for moderate deviation and warnings
//   - Red for significant deviation and automated verdicts
//   - Cyan for progress steps
//
// Callers disable colour globally with color.NoColor when stdout is not a
// terminal. Every function writes to an io.Writer.
package display
