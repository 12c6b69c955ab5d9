package journey

import (
	"io"
	"os"

	"github.com/luci/luci-go/common/errors"

	"github.com/r-lyeh-archived/journey/journal"
)

// Record is what the table of contents remembers about one surviving
// revision of a name: where its payload lives, how long it is, and the
// timestamp it was appended with.
type Record struct {
	Offset uint64
	Size   uint64
	Stamp  uint64
}

// Toc maps a name to the single surviving revision chosen for it by Load.
type Toc map[string]Record

// DebugSink receives one call per entry visited during a Load, in the order
// entries are encountered (newest first). brief holds up to 16 raw bytes of
// the entry's payload (a sink can render them with FormatBrief); it is only
// read when a non-nil DebugSink is supplied to Load, since reading it
// requires an extra seek+read that a plain Load never performs.
type DebugSink interface {
	Visit(name string, rec Record, inscribed bool, brief []byte)
}

const briefLen = 16

// buildTOC walks path backward from its end, inscribing entries whose stamp
// falls in [beg, end] and whose name hasn't already been seen (entries are
// visited newest-first, so the first sighting of a name is its newest
// revision). It stops cleanly at the first bad magic (journal.ErrEndOfScan)
// and reports true iff at least one entry was visited, whether or not it was
// inscribed. Any other error (I/O failure or journal.ErrCorrupt) ends the
// scan and is returned together with the toc built so far and that same
// visited-count flag.
func buildTOC(path string, beg, end uint64, sink DebugSink) (Toc, bool, error) {
	if beg > end {
		return nil, false, errors.Reason("load: window start %(beg)d after window end %(end)d").
			D("beg", beg).D("end", end).Err()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, false, err
	}

	toc := Toc{}
	count := 0
	cursor := fi.Size()

	for cursor >= journal.InfoLen {
		ent, newCursor, err := journal.DecodeTrailing(f, cursor)
		if err == journal.ErrEndOfScan {
			break
		}
		if err != nil {
			return toc, count > 0, err
		}

		rec := Record{Offset: ent.Offset, Size: ent.Size, Stamp: ent.Stamp}
		_, seen := toc[ent.Name]
		inscribe := ent.Stamp >= beg && ent.Stamp <= end && !seen
		if inscribe {
			toc[ent.Name] = rec
		}

		if sink != nil {
			brief, err := readBrief(f, ent.Offset, ent.Size)
			if err != nil {
				return toc, count > 0, err
			}
			sink.Visit(ent.Name, rec, inscribe, brief)
		}

		count++
		cursor = newCursor
	}

	return toc, count > 0, nil
}

// readBrief reads up to briefLen bytes of a payload for debug display. It is
// only ever called from the debug-sink path, which is otherwise excluded
// from Load's normal, payload-blind scan; the next loop iteration seeks
// DecodeTrailing to an absolute offset regardless, so this need not restore
// the cursor it leaves behind.
func readBrief(r io.ReadSeeker, offset, size uint64) ([]byte, error) {
	n := size
	if n > briefLen {
		n = briefLen
	}
	if n == 0 {
		return nil, nil
	}

	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
