// Package p8estio saves and loads a connectivity.Connectivity as the
// little-endian binary blob spec.md §6 defines: a fixed magic/version
// header, the six topology counts, then the twelve payload arrays in a
// fixed order, each omitted when its governing count is zero.
//
// The format is a flat, self-describing struct layout rather than a
// general-purpose serialization (protobuf, msgpack, gob and similar):
// none of those appeared anywhere in the example pack, and the format
// this package reproduces is itself a raw binary layout, not a schema
// one of those libraries would model naturally. The closest structural
// precedent in the pack is an HDF5 B-tree node reader (signature bytes,
// fixed header, encoding/binary-driven field reads) — this package
// follows that shape: check the magic, decode the header with
// encoding/binary, then read each array in turn. See DESIGN.md.
package p8estio
