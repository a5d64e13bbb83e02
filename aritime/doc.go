// Package aritime implements the time-valued lexical productions used by
// the ARI text codec: decimal-fraction seconds, the ISO 8601 UTC timestamp
// form anchored to the DTN epoch, and the ISO 8601 duration form.
//
// A Timespec is the shared wire value: whole seconds plus a nanosecond
// remainder in [0, 1e9).
package aritime
