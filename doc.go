// Package journey implements a header-less backup archive format: a
// sequence of named, timestamped blobs stored in a single file such that
// new revisions are added purely by appending, and a container is parsed by
// reading its last 40-byte trailer and walking backwards entry-by-entry.
//
// There is no global header and no global footer. This makes the format:
//
//   - concat-friendly: two valid containers joined end-to-end remain valid,
//     with the second container's entries shadowing name collisions in the
//     first;
//   - foreign-prefix-safe: arbitrary unrecognized bytes before the first
//     entry are tolerated, since the scan only ever walks backward from
//     end-of-file and stops the moment a trailer's magic doesn't check out.
//
// Each entry is self-delimited: its trailer carries its own total length, so
// the scanner can jump directly to the start of the previous entry without
// any separate index. See package journal for the on-disk layout.
//
// A caller opens an Archive, Loads it (optionally restricted to a timestamp
// window), and then Reads or Appends names. Compact rewrites the entries
// currently in the table of contents into a fresh, pruned container — this
// is the mechanism by which a caller rolls a journal back to an earlier
// state, or drops superseded revisions.
package journey
