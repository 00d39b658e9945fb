// Package analytics derives the five reign statistics from a monarch sequence.
//
// queries.go holds the pure query functions. Each takes the record slice plus
// the year used to close ongoing reigns, and each tolerates an empty slice by
// returning a result with Available == false.
//
// engine.go provides Engine, which runs all five queries and assembles a
// Report. Engine.now is injectable so tests control "current year" without
// depending on the wall clock.
//
// Ties are always won by the first record or group encountered in input order.
// Groups are ordered by first occurrence and the best candidate is replaced
// only on strict improvement; nothing is sorted.
package analytics
