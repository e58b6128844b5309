package render

import (
	"image/color"
	"iter"
)

// fillBinaryRGBA converts a row view of binary cells into RGBA pixels in buf.
// Cells beyond len(buf)/4 are ignored.
func fillBinaryRGBA(buf []byte, rows iter.Seq[iter.Seq[uint8]], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	base := 0
	for row := range rows {
		for c := range row {
			if base+4 > len(buf) {
				return
			}
			if c != 0 {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			base += 4
		}
	}
}

// blockRGBA converts a flat block of cells into opaque white/black pixels, the
// encoding the GPU stepper keeps its state in.
func blockRGBA(values []uint8) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		var c byte
		if v != 0 {
			c = 0xff
		}
		buf[i*4+0] = c
		buf[i*4+1] = c
		buf[i*4+2] = c
		buf[i*4+3] = 0xff
	}
	return buf
}
