package journey

import (
	"io"
	"os"

	"github.com/r-lyeh-archived/journey/journal"
)

// Archive owns a container path and the in-memory table of contents built by
// the most recent Load. It is not safe for concurrent use from multiple
// goroutines against the same *Archive value; the underlying container file
// itself tolerates single-writer append traffic interleaved with reads from
// other processes, per the format's append-is-atomic-per-write guarantee.
type Archive struct {
	path string
	toc  Toc
}

// Init resets the archive's table of contents and adopts path. It performs
// no filesystem access; an empty path is rejected and leaves the receiver
// untouched.
func (a *Archive) Init(path string) bool {
	if path == "" {
		return false
	}
	a.path = path
	a.toc = nil
	return true
}

// Load rebuilds the table of contents by scanning the container backward
// from its end, keeping only entries whose stamp falls within [beg, end]
// and resolving name collisions first-seen-wins (i.e. newest-wins, since the
// scan runs newest-first). If sink is non-nil, it receives one Visit call
// per entry encountered, including a short brief of its payload bytes.
//
// Load calls Init(a.path) internally, so a failed Load still leaves the
// archive pointed at path with an empty toc.
func (a *Archive) Load(beg, end uint64, sink DebugSink) bool {
	path := a.path
	a.Init(path)

	toc, ok, err := buildTOC(path, beg, end, sink)
	if err != nil || !ok {
		return false
	}
	a.toc = toc
	return true
}

// Append writes one entry to the end of the container at a.path, stamped
// with stamp. It does not update the in-memory table of contents: callers
// must Load again to observe the new entry, which is what makes Append safe
// to call between a Read and another Read without any locking.
func (a *Archive) Append(name string, payload []byte, stamp uint64) bool {
	if a.path == "" || name == "" {
		return false
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false
	}
	defer f.Close()

	start, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return false
	}

	_, err = journal.Encode(f, start, name, payload, stamp)
	return err == nil
}

// Read returns the bytes stored for name in the current table of contents.
// The returned buffer is a fresh copy; the container is opened, read, and
// closed within this call. If name isn't in the toc, or the container can't
// be read, Read returns ok == false and a nil buffer.
func (a *Archive) Read(name string) (data []byte, ok bool) {
	rec, found := a.toc[name]
	if !found {
		return nil, false
	}

	f, err := os.Open(a.path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	buf := make([]byte, rec.Size)
	if rec.Size > 0 {
		if _, err := f.ReadAt(buf, int64(rec.Offset)); err != nil {
			return nil, false
		}
	}
	return buf, true
}

// Compact requires a non-empty table of contents (call Load first). For
// every name currently in the toc, it reads the payload from this archive
// and appends it, with its recorded stamp, to a fresh archive at newPath.
// The resulting container holds exactly one entry per surviving name; the
// source container is left untouched. Compact returns false on the first
// read or append failure.
func (a *Archive) Compact(newPath string) bool {
	if len(a.toc) == 0 {
		return false
	}

	var dst Archive
	if !dst.Init(newPath) {
		return false
	}

	for name, rec := range a.toc {
		data, ok := a.Read(name)
		if !ok {
			return false
		}
		if !dst.Append(name, data, rec.Stamp) {
			return false
		}
	}
	return true
}
