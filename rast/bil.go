package rast

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	multipath "github.com/StumWhere/Multipath-Flow-Accumulation"
	"github.com/maseology/mmio"
)

// ReadBIL imports a single-band little-endian float32 .bil raster as an
// elevation surface, checked against the given grid definition.
func ReadBIL(fp string, d *Definition) (*multipath.Surface, error) {
	fi, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("rast.ReadBIL file not found: %s", fp)
	}
	if fi.Size() != int64(4*d.Ncells()) {
		return nil, fmt.Errorf("rast.ReadBIL %s: %d bytes for a %dx%d grid", fp, fi.Size(), d.Nrow, d.Ncol)
	}

	f32 := make([]float32, d.Ncells())
	buf := mmio.OpenBinary(fp)
	if err := binary.Read(buf, binary.LittleEndian, f32); err != nil {
		return nil, fmt.Errorf("rast.ReadBIL %s: %v", fp, err)
	}

	z := make([]float64, len(f32))
	for i, v := range f32 {
		z[i] = float64(v)
	}
	return &multipath.Surface{Z: z, Nrow: d.Nrow, Ncol: d.Ncol}, nil
}

// WriteBIL exports a row-major array to a single-band little-endian float32
// .bil raster with its .hdr sidecar.
func WriteBIL(fp string, d *Definition, v []float64) error {
	if len(v) != d.Ncells() {
		return fmt.Errorf("rast.WriteBIL %s: %d values given for a %dx%d grid", fp, len(v), d.Nrow, d.Ncol)
	}
	f32 := make([]float32, len(v))
	for i, f := range v {
		f32[i] = float32(f)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("rast.WriteBIL %s: %v", fp, err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("rast.WriteBIL %s: %v", fp, err)
	}
	return d.ToHDR(mmio.RemoveExtension(fp) + ".hdr")
}
