package palette

import (
	"bufio"
	"io"
	"strings"
)

const chartColumns = 16

// WriteChart writes the color of every byte value to w as #RRGGBB, sixteen
// to a line.
func WriteChart(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, c := range Table() {
		if _, err := bw.WriteString(c.String()); err != nil {
			return err
		}
		sep := byte(' ')
		if i%chartColumns == chartColumns-1 {
			sep = '\n'
		}
		if err := bw.WriteByte(sep); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Chart returns the output of WriteChart as a string.
func Chart() string {
	var sb strings.Builder
	_ = WriteChart(&sb)
	return sb.String()
}
