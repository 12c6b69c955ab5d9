package journal

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/luci/luci-go/common/testing/assertions"
	. "github.com/smartystreets/goconvey/convey"
)

// seekBuf adapts a bytes.Buffer's backing slice into an io.ReadSeeker so
// Encode's output can be fed straight into DecodeTrailing.
type seekBuf struct {
	*bytes.Reader
}

func newSeekBuf(b []byte) *seekBuf {
	return &seekBuf{bytes.NewReader(b)}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	Convey("Encode/DecodeTrailing", t, func() {
		Convey("round-trips a single entry", func() {
			buf := &bytes.Buffer{}
			filelen, err := Encode(buf, 0, "hello.txt", []byte("previous"), 500)
			So(err, ShouldBeNil)
			So(filelen, ShouldEqual, uint64(buf.Len()))

			r := newSeekBuf(buf.Bytes())
			entry, start, err := DecodeTrailing(r, int64(buf.Len()))
			So(err, ShouldBeNil)
			So(start, ShouldEqual, 0)
			So(entry.Name, ShouldEqual, "hello.txt")
			So(entry.Size, ShouldEqual, 8)
			So(entry.Stamp, ShouldEqual, 500)

			payload := make([]byte, entry.Size)
			_, err = r.Seek(int64(entry.Offset), 0)
			So(err, ShouldBeNil)
			_, err = r.Read(payload)
			So(err, ShouldBeNil)
			So(string(payload), ShouldEqual, "previous")
		})

		Convey("round-trips an empty payload", func() {
			buf := &bytes.Buffer{}
			_, err := Encode(buf, 0, "empty", nil, 1)
			So(err, ShouldBeNil)

			r := newSeekBuf(buf.Bytes())
			entry, _, err := DecodeTrailing(r, int64(buf.Len()))
			So(err, ShouldBeNil)
			So(entry.Size, ShouldEqual, 0)
		})

		Convey("round-trips a name with an embedded NUL", func() {
			buf := &bytes.Buffer{}
			name := "a\x00b"
			_, err := Encode(buf, 0, name, []byte("x"), 1)
			So(err, ShouldBeNil)

			r := newSeekBuf(buf.Bytes())
			entry, _, err := DecodeTrailing(r, int64(buf.Len()))
			So(err, ShouldBeNil)
			So(entry.Name, ShouldEqual, name)
		})

		Convey("chains two entries and walks them backward", func() {
			buf := &bytes.Buffer{}
			firstLen, err := Encode(buf, 0, "hello.txt", []byte("previous"), 500)
			So(err, ShouldBeNil)
			_, err = Encode(buf, int64(firstLen), "hello.txt", []byte("latest"), 1000)
			So(err, ShouldBeNil)

			end := int64(buf.Len())
			r := newSeekBuf(buf.Bytes())

			entry, end, err := DecodeTrailing(r, end)
			So(err, ShouldBeNil)
			So(entry.Name, ShouldEqual, "hello.txt")
			So(entry.Stamp, ShouldEqual, 1000)
			So(end, ShouldEqual, int64(firstLen))

			entry, end, err = DecodeTrailing(r, end)
			So(err, ShouldBeNil)
			So(entry.Stamp, ShouldEqual, 500)
			So(end, ShouldEqual, 0)
		})

		Convey("every trailer lands on an 8-aligned payload offset", func() {
			buf := &bytes.Buffer{}
			names := []string{"a", "bb", "ccc", "dddd", "eeeee"}
			for i, n := range names {
				_, err := Encode(buf, int64(buf.Len()), n, []byte(n), uint64(i))
				So(err, ShouldBeNil)
			}

			end := int64(buf.Len())
			r := newSeekBuf(buf.Bytes())
			for end > 0 {
				entry, newEnd, err := DecodeTrailing(r, end)
				So(err, ShouldBeNil)
				So(entry.Offset%8, ShouldEqual, 0)
				end = newEnd
			}
		})

		Convey("stops cleanly at a bad magic", func() {
			r := newSeekBuf(bytes.Repeat([]byte{0}, InfoLen))
			_, _, err := DecodeTrailing(r, InfoLen)
			So(errors.Is(err, ErrEndOfScan), ShouldBeTrue)
		})

		Convey("reports corruption when filelen exceeds end", func() {
			buf := &bytes.Buffer{}
			_, err := Encode(buf, 0, "x", []byte("y"), 1)
			So(err, ShouldBeNil)
			raw := buf.Bytes()
			// filelen field is trailer[24:32]; inflate it past what's available.
			raw[len(raw)-InfoLen+24] = 0xff
			r := newSeekBuf(raw)
			_, _, err = DecodeTrailing(r, int64(len(raw)))
			So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
			So(err, ShouldErrLike, "out of range")
		})

		Convey("rejects a container shorter than one trailer", func() {
			r := newSeekBuf([]byte{1, 2, 3})
			_, _, err := DecodeTrailing(r, 3)
			So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
		})
	})
}
