package gravflow

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

// WriteBils prints the influence field and flow map as float32 rasters in
// the shape of gd, with ESRI .hdr sidecars
func (r *Result) WriteBils(gd *grid.Definition, prfx string) error {
	if err := writeFloats32(gd, prfx+"influence.bil", r.Influence); err != nil {
		return err
	}
	fm := make([]float64, len(r.FlowMap))
	for i, v := range r.FlowMap {
		fm[i] = float64(v)
	}
	return writeFloats32(gd, prfx+"flowmap.bil", fm)
}

func writeFloats32(gd *grid.Definition, fp string, f []float64) error {
	f32 := make([]float32, len(f))
	for i, v := range f {
		f32[i] = float32(v)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf(" writeFloats32 failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf(" writeFloats32 failed: %v", err)
	}
	gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
	return nil
}
