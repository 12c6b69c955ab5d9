package journal

import "io"

// padLen returns the number of zero bytes needed so that offset+padLen(offset)
// is a multiple of 8. It is zero when offset is already 8-aligned.
func padLen(offset int64) int64 {
	return ((offset+8)&^7 - offset) % 8
}

var zeroes [8]byte

// writePad writes padLen(offset) zero bytes to w and returns the new offset.
func writePad(w io.Writer, offset int64) (int64, error) {
	n := padLen(offset)
	if n == 0 {
		return offset, nil
	}
	if _, err := w.Write(zeroes[:n]); err != nil {
		return offset, err
	}
	return offset + n, nil
}

// skipPad advances a seeker past padLen(offset) bytes without inspecting
// them, and returns the new offset.
func skipPad(s io.Seeker, offset int64) (int64, error) {
	n := padLen(offset)
	if n == 0 {
		return offset, nil
	}
	if _, err := s.Seek(n, io.SeekCurrent); err != nil {
		return offset, err
	}
	return offset + n, nil
}
