// Package pipeline runs the rename pass over the target directory: list the
// entries once, decide per entry, and apply the renames in listing order.
package pipeline
