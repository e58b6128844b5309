package render

import (
	"bufio"
	"io"
	"iter"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// WriteText renders one line per row, two columns per cell.
func WriteText(w io.Writer, rows iter.Seq[iter.Seq[uint8]]) error {
	bw := bufio.NewWriter(w)
	for row := range rows {
		for c := range row {
			if c != 0 {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
