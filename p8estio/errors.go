package p8estio

import "errors"

// ErrBadMagic is returned when a stream doesn't start with the "p8est"
// signature.
var ErrBadMagic = errors.New("p8estio: bad magic")

// ErrUnsupportedVersion is returned when the format version doesn't
// match Version.
var ErrUnsupportedVersion = errors.New("p8estio: unsupported version")

// ErrCorruptFile wraps a short read or truncated payload (spec.md §7).
var ErrCorruptFile = errors.New("p8estio: corrupt file")

// ErrInvalidConnectivity is returned by Load, wrapping the specific
// connectivity.Diagnose sentinel, when the decoded payload fails
// validation (spec.md §6, §7).
var ErrInvalidConnectivity = errors.New("p8estio: decoded connectivity is invalid")
