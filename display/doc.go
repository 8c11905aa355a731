// Package display provides text targets the stopwatch renders into.
//
// A Target is any surface with a writable text property. Board maps stable
// identifiers to mounted targets, and Bind resolves an identifier on every
// write so a target that is not mounted is skipped without error.
package display
