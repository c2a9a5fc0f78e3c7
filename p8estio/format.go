package p8estio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// Magic is the 5-byte signature every p8estio stream starts with.
const Magic = "p8est"

// Version is the only format version this package writes and accepts.
const Version uint32 = 0x03000008

// header mirrors the fixed on-disk preamble: magic, version, and the
// six topology counts (spec.md §6) in Allocate's own order.
type header struct {
	NumVertices int32
	NumTrees    int32
	NumEdges    int32
	NumEtt      int32
	NumCorners  int32
	NumCtt      int32
}

// Save writes c's on-disk representation to w (spec.md §6).
func Save(w io.Writer, c *connectivity.Connectivity) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("p8estio: write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, Version); err != nil {
		return fmt.Errorf("p8estio: write version: %w", err)
	}

	numEtt := len(c.EdgeToTree)
	numCtt := len(c.CornerToTree)
	h := header{
		NumVertices: int32(c.NumVertices),
		NumTrees:    int32(c.NumTrees),
		NumEdges:    int32(c.NumEdges),
		NumEtt:      int32(numEtt),
		NumCorners:  int32(c.NumCorners),
		NumCtt:      int32(numCtt),
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("p8estio: write header: %w", err)
	}

	writers := []func() error{
		func() error { return writeFloat64s(w, c.Vertices) },
		func() error { return writeInts32(w, c.TreeToVertex) },
		func() error { return writeInts32(w, c.TreeToTree) },
		func() error { return writeBytes(w, c.TreeToFace) },
		func() error { return writeInts32(w, c.TreeToEdge) },
		func() error { return writeInts32(w, c.EttOffset) },
		func() error { return writeInts32(w, c.EdgeToTree) },
		func() error { return writeBytes(w, c.EdgeToEdge) },
		func() error { return writeInts32(w, c.TreeToCorner) },
		func() error { return writeInts32(w, c.CttOffset) },
		func() error { return writeInts32(w, c.CornerToTree) },
		func() error { return writeBytes(w, c.CornerToCorner) },
	}
	for _, fn := range writers {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a connectivity.Connectivity back from r, rejecting a bad
// magic/version/truncated payload with ErrBadMagic/ErrUnsupportedVersion/
// ErrCorruptFile and an invalid decoded result with
// ErrInvalidConnectivity (spec.md §6, §7).
func Load(r io.Reader) (*connectivity.Connectivity, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	if string(magic) != Magic {
		return nil, ErrBadMagic
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	if version != Version {
		return nil, ErrUnsupportedVersion
	}

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	numVertices, numTrees := int(h.NumVertices), int(h.NumTrees)
	numEdges, numEtt := int(h.NumEdges), int(h.NumEtt)
	numCorners, numCtt := int(h.NumCorners), int(h.NumCtt)

	c := connectivity.Allocate(numVertices, numTrees, numEdges, numEtt, numCorners, numCtt)

	var err error
	if c.Vertices, err = readFloat64s(r, 3*numVertices); err != nil {
		return nil, err
	}
	if numVertices > 0 {
		if c.TreeToVertex, err = readInts32(r, ctables.Children*numTrees); err != nil {
			return nil, err
		}
	} else {
		c.TreeToVertex = nil
	}
	if c.TreeToTree, err = readInts32(r, ctables.Faces*numTrees); err != nil {
		return nil, err
	}
	if c.TreeToFace, err = readBytes(r, ctables.Faces*numTrees); err != nil {
		return nil, err
	}
	if c.TreeToEdge, err = readInts32(r, ctables.Edges*numTrees); err != nil {
		return nil, err
	}
	if c.EttOffset, err = readInts32(r, numEdges+1); err != nil {
		return nil, err
	}
	if c.EdgeToTree, err = readInts32(r, numEtt); err != nil {
		return nil, err
	}
	if c.EdgeToEdge, err = readBytes(r, numEtt); err != nil {
		return nil, err
	}
	if c.TreeToCorner, err = readInts32(r, ctables.Children*numTrees); err != nil {
		return nil, err
	}
	if c.CttOffset, err = readInts32(r, numCorners+1); err != nil {
		return nil, err
	}
	if c.CornerToTree, err = readInts32(r, numCtt); err != nil {
		return nil, err
	}
	if c.CornerToCorner, err = readBytes(r, numCtt); err != nil {
		return nil, err
	}

	if diag := connectivity.Diagnose(c); diag != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConnectivity, diag)
	}
	return c, nil
}

func writeFloat64s(w io.Writer, vals []float64) error {
	if len(vals) == 0 {
		return nil
	}
	return binary.Write(w, binary.LittleEndian, vals)
}

func writeBytes(w io.Writer, vals []uint8) error {
	if len(vals) == 0 {
		return nil
	}
	_, err := w.Write(vals)
	return err
}

func writeInts32(w io.Writer, vals []int) error {
	if len(vals) == 0 {
		return nil
	}
	buf := make([]int32, len(vals))
	for i, v := range vals {
		buf[i] = int32(v)
	}
	return binary.Write(w, binary.LittleEndian, buf)
}

func readFloat64s(r io.Reader, n int) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	vals := make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, vals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	return vals, nil
}

func readBytes(r io.Reader, n int) ([]uint8, error) {
	if n == 0 {
		return make([]uint8, 0), nil
	}
	buf := make([]uint8, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	return buf, nil
}

func readInts32(r io.Reader, n int) ([]int, error) {
	if n == 0 {
		return make([]int, 0), nil
	}
	buf := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	vals := make([]int, n)
	for i, v := range buf {
		vals[i] = int(v)
	}
	return vals, nil
}
