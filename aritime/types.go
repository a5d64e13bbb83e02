package aritime

// DTNEpochUnix is the POSIX time of the DTN epoch, 2000-01-01T00:00:00Z.
const DTNEpochUnix = 946684800

// Timespec is a seconds-and-nanoseconds time value. Seconds may be negative
// (time before the reference epoch); Nanos is always in [0, 1e9).
type Timespec struct {
	Seconds int64
	Nanos   uint32
}
