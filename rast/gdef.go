// Package rast supplies the thin raster collaborators around the multipath
// core: grid definition (gdef) files for georeferencing and single-band
// 32-bit float .bil rasters for cell values.
package rast

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// Definition holds the georeferencing of a uniform raster grid: the easting
// and northing of the upper-left corner, rotation, row/column counts and the
// uniform cell size.
type Definition struct {
	Eorig, Norig, Rot, Cs float64
	Nrow, Ncol            int
}

// ReadGDEF imports a grid definition file. Only uniform grids are supported.
func ReadGDEF(fp string) (*Definition, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf("rast.ReadGDEF file not found: %s", fp)
	}
	a, _ := mmio.ReadTextLines(fp)
	if len(a) < 6 {
		return nil, fmt.Errorf("rast.ReadGDEF %s: incomplete definition, %d line(s) read", fp, len(a))
	}

	var d Definition
	var err error
	errf := func(v string, err error) error {
		return fmt.Errorf("rast.ReadGDEF failed to read '%s': %v", v, err)
	}
	if d.Eorig, err = strconv.ParseFloat(a[0], 64); err != nil {
		return nil, errf("OE", err)
	}
	if d.Norig, err = strconv.ParseFloat(a[1], 64); err != nil {
		return nil, errf("ON", err)
	}
	if d.Rot, err = strconv.ParseFloat(a[2], 64); err != nil {
		return nil, errf("ROT", err)
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		return nil, errf("NR", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		return nil, errf("NC", err)
	}
	d.Nrow, d.Ncol = int(nr), int(nc)
	if len(a[5]) == 0 || a[5][0] != 'U' {
		return nil, fmt.Errorf("rast.ReadGDEF %s: non-uniform grids currently not supported", fp)
	}
	if d.Cs, err = strconv.ParseFloat(a[5][1:], 64); err != nil {
		return nil, errf("CS", err)
	}
	return &d, nil
}

// Ncells number of cells in the grid
func (d *Definition) Ncells() int { return d.Nrow * d.Ncol }

// SaveAs writes the definition to a gdef grid definition file.
func (d *Definition) SaveAs(fp string) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("Definition.SaveAs: %v", err)
	}
	defer tw.Close()
	tw.WriteLine(strconv.FormatFloat(d.Eorig, 'f', -1, 64))
	tw.WriteLine(strconv.FormatFloat(d.Norig, 'f', -1, 64))
	tw.WriteLine(strconv.FormatFloat(d.Rot, 'f', -1, 64))
	tw.WriteLine(strconv.Itoa(d.Nrow))
	tw.WriteLine(strconv.Itoa(d.Ncol))
	tw.WriteLine("U" + strconv.FormatFloat(d.Cs, 'f', -1, 64))
	return nil
}

// ToHDR writes the ESRI-style .hdr sidecar describing a single-band 32-bit
// floating point .bil raster.
func (d *Definition) ToHDR(fp string) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("Definition.ToHDR: %v", err)
	}
	defer tw.Close()
	tw.WriteLine("BYTEORDER I")
	tw.WriteLine("LAYOUT BIL")
	tw.WriteLine(fmt.Sprintf("NROWS %d", d.Nrow))
	tw.WriteLine(fmt.Sprintf("NCOLS %d", d.Ncol))
	tw.WriteLine("NBANDS 1")
	tw.WriteLine("NBITS 32")
	tw.WriteLine(fmt.Sprintf("BANDROWBYTES %d", d.Ncol*4))
	tw.WriteLine(fmt.Sprintf("TOTALROWBYTES %d", d.Ncol*4))
	tw.WriteLine("PIXELTYPE FLOAT")
	tw.WriteLine(fmt.Sprintf("ULXMAP %f", d.Eorig+d.Cs/2.))
	tw.WriteLine(fmt.Sprintf("ULYMAP %f", d.Norig-d.Cs/2.))
	tw.WriteLine(fmt.Sprintf("XDIM %f", d.Cs))
	tw.WriteLine(fmt.Sprintf("YDIM %f", d.Cs))
	return nil
}

// Shift returns the definition of the grid's interior: origin moved one cell
// in, dimensions reduced by the outer ring. Accumulation incident to the
// outside rows and columns is never distributed, so the recommended product
// is the interior cropped against this definition.
func (d *Definition) Shift() *Definition {
	return &Definition{
		Eorig: d.Eorig + d.Cs,
		Norig: d.Norig - d.Cs,
		Rot:   d.Rot,
		Cs:    d.Cs,
		Nrow:  d.Nrow - 2,
		Ncol:  d.Ncol - 2,
	}
}

// Interior crops the outer ring from a full-grid row-major array; pairs with
// the definition returned by Shift.
func (d *Definition) Interior(v []float64) ([]float64, error) {
	if len(v) != d.Ncells() {
		return nil, fmt.Errorf("Definition.Interior: %d values given for a %dx%d grid", len(v), d.Nrow, d.Ncol)
	}
	o := make([]float64, 0, (d.Nrow-2)*(d.Ncol-2))
	for r := 1; r < d.Nrow-1; r++ {
		o = append(o, v[r*d.Ncol+1:(r+1)*d.Ncol-1]...)
	}
	return o, nil
}
