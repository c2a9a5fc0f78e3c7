package p8est

import "fmt"

// ConnectType selects how far a neighbor search reaches across a macro-mesh:
// only through shared faces, through faces and edges, or through faces,
// edges, and corners. The numeric values are part of the on-disk/ABI
// contract (§6) and must never be renumbered.
type ConnectType int

// Connect-type values. FACE reaches only face-neighbors; EDGE additionally
// reaches edge-neighbors; CORNER (aliased FULL) reaches every neighbor
// class. DEFAULT is an alias for EDGE, matching the upstream convention
// that most consumers want face+edge reach without paying for corner
// bookkeeping.
const (
	ConnectFace   ConnectType = 31
	ConnectEdge   ConnectType = 32
	ConnectCorner ConnectType = 33

	ConnectDefault = ConnectEdge
	ConnectFull    = ConnectCorner
)

// Int returns the compact 1/2/3 ordinal for ct (1=FACE, 2=EDGE, 3=CORNER),
// distinct from the ABI value above; it is the form external consumers
// (e.g. a partitioning library) use to size per-type work arrays.
func (ct ConnectType) Int() int {
	switch ct {
	case ConnectFace:
		return 1
	case ConnectEdge:
		return 2
	case ConnectCorner:
		return 3
	default:
		return 0
	}
}

// String returns the canonical name of ct ("FACE", "EDGE", "CORNER"), or a
// diagnostic placeholder for an unrecognized value.
func (ct ConnectType) String() string {
	switch ct {
	case ConnectFace:
		return "FACE"
	case ConnectEdge:
		return "EDGE"
	case ConnectCorner:
		return "CORNER"
	default:
		return fmt.Sprintf("ConnectType(%d)", int(ct))
	}
}

// Valid reports whether ct is one of the three defined connect types.
func (ct ConnectType) Valid() bool {
	switch ct {
	case ConnectFace, ConnectEdge, ConnectCorner:
		return true
	default:
		return false
	}
}
