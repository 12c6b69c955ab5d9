package journal

import "errors"

// ErrEndOfScan is returned by DecodeTrailing when the trailer it read does
// not carry a recognized magic value. This is not a failure: it is how a
// backward scan discovers that it has reached the start of the entries (or
// the start of a foreign prefix) and should stop cleanly.
var ErrEndOfScan = errors.New("journal: end of scan")

// ErrCorrupt is returned by DecodeTrailing when a trailer's length fields
// are internally inconsistent (e.g. filelen shorter than the trailer itself
// or reaching past the start of the file, or namelen/datalen reaching past
// the end of the entry). Unlike
// ErrEndOfScan, this indicates the scan hit a location that looked like an
// entry boundary but whose bookkeeping makes no sense.
var ErrCorrupt = errors.New("journal: corrupt entry")
