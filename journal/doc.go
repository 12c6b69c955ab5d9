// Package journal implements the low-level, header-less entry format that
// backs a Journey archive: 8-byte alignment padding, the magic sentinel, and
// the self-delimited entry codec that lets a reader walk a container
// backwards from end-of-file without any global header.
//
// journal knows nothing about names colliding across entries, timestamp
// windows, or files on disk; that's the job of the journey package, which
// composes Encode/DecodeTrailing into the table-of-contents builder and the
// archive object.
package journal
