package journal

import (
	"encoding/binary"
	"fmt"
	"io"
)

// InfoLen is the fixed size, in bytes, of the trailer appended to the end of
// every entry: five little-endian u64 fields (stamp, namelen, datalen,
// filelen, magic).
const InfoLen = 40

// Entry describes one record recovered from a backward scan: the name it was
// stored under, the absolute offset and length of its payload within the
// container, and the timestamp it was appended with.
type Entry struct {
	Name   string
	Offset uint64
	Size   uint64
	Stamp  uint64
}

// Encode writes one entry to w, which must be positioned at absolute offset
// start (end-of-file in the append use case). It returns the entry's
// filelen: the total number of bytes written, including every padding
// region, the NUL separator, and the trailer itself.
func Encode(w io.Writer, start int64, name string, payload []byte, stamp uint64) (filelen uint64, err error) {
	offset := start

	if offset, err = writePad(w, offset); err != nil {
		return 0, err
	}

	nameBytes := []byte(name)
	if _, err = w.Write(nameBytes); err != nil {
		return 0, err
	}
	offset += int64(len(nameBytes))

	if _, err = w.Write([]byte{0}); err != nil {
		return 0, err
	}
	offset++

	if offset, err = writePad(w, offset); err != nil {
		return 0, err
	}

	if _, err = w.Write(payload); err != nil {
		return 0, err
	}
	offset += int64(len(payload))

	if offset, err = writePad(w, offset); err != nil {
		return 0, err
	}

	filelen = uint64(offset-start) + InfoLen

	trailer := make([]byte, InfoLen)
	binary.LittleEndian.PutUint64(trailer[0:8], stamp)
	binary.LittleEndian.PutUint64(trailer[8:16], uint64(len(nameBytes)))
	binary.LittleEndian.PutUint64(trailer[16:24], uint64(len(payload)))
	binary.LittleEndian.PutUint64(trailer[24:32], filelen)
	binary.LittleEndian.PutUint64(trailer[32:40], Magic)
	if _, err = w.Write(trailer); err != nil {
		return 0, err
	}

	return filelen, nil
}

// DecodeTrailing reads the entry whose trailer ends at absolute offset end
// (end must be >= InfoLen). It returns the recovered Entry, the offset at
// which the *previous* entry's trailer would end (end - filelen), and an
// error.
//
// A bad magic value is reported as ErrEndOfScan, not a generic error: that
// is how the backward scan learns it has reached the start of the entries
// (or a foreign prefix) and should stop cleanly. Length fields that would
// require seeking past the start of the file are reported as ErrCorrupt.
func DecodeTrailing(r io.ReadSeeker, end int64) (Entry, int64, error) {
	if end < InfoLen {
		return Entry{}, 0, fmt.Errorf("%w: container shorter than trailer", ErrCorrupt)
	}

	if _, err := r.Seek(end-InfoLen, io.SeekStart); err != nil {
		return Entry{}, 0, err
	}
	trailer := make([]byte, InfoLen)
	if _, err := io.ReadFull(r, trailer); err != nil {
		return Entry{}, 0, err
	}

	stamp := binary.LittleEndian.Uint64(trailer[0:8])
	namelen := binary.LittleEndian.Uint64(trailer[8:16])
	datalen := binary.LittleEndian.Uint64(trailer[16:24])
	filelen := binary.LittleEndian.Uint64(trailer[24:32])
	magic := binary.LittleEndian.Uint64(trailer[32:40])

	if !validMagic(magic) {
		return Entry{}, 0, ErrEndOfScan
	}

	if filelen < InfoLen || filelen > uint64(end) {
		return Entry{}, 0, fmt.Errorf("%w: filelen %d out of range at end %d", ErrCorrupt, filelen, end)
	}

	start := end - int64(filelen)
	offset := start

	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return Entry{}, 0, err
	}
	var err error
	if offset, err = skipPad(r, offset); err != nil {
		return Entry{}, 0, err
	}

	if namelen > uint64(end-offset) {
		return Entry{}, 0, fmt.Errorf("%w: namelen %d reaches past entry", ErrCorrupt, namelen)
	}
	nameBuf := make([]byte, namelen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return Entry{}, 0, err
	}
	offset += int64(namelen)

	if _, err := r.Seek(1, io.SeekCurrent); err != nil {
		return Entry{}, 0, err
	}
	offset++

	if offset, err = skipPad(r, offset); err != nil {
		return Entry{}, 0, err
	}

	if datalen > uint64(end-offset) {
		return Entry{}, 0, fmt.Errorf("%w: datalen %d reaches past entry", ErrCorrupt, datalen)
	}
	payloadOffset := offset

	return Entry{
		Name:   string(nameBuf),
		Offset: uint64(payloadOffset),
		Size:   datalen,
		Stamp:  stamp,
	}, start, nil
}
