package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// maxLineLen is the column threshold for wrapping PPM body lines: a
// value token that would bring the line to this length or beyond starts
// a new line instead.
const maxLineLen = 70

// PPM encodes the canvas as a plain-text P3 bitmap.
//
// The header is "P3", the width and height, and the maximum channel
// value 255, each on its own line. The body emits every pixel's three
// 8-bit channel values as space-separated decimal integers, row by row,
// top to bottom. Line wrapping is row-scoped: each row starts a fresh
// line, and a row's leftover partial line is flushed at row end even
// when short. The output ends with a newline.
func (c *Canvas) PPM() string {
	var out strings.Builder
	fmt.Fprintf(&out, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			r, g, b := c.pixels[y*c.width+x].Bytes()
			for _, v := range [3]uint8{r, g, b} {
				tok := strconv.Itoa(int(v))
				if line.Len() > 0 && line.Len()+1+len(tok) >= maxLineLen {
					out.WriteString(line.String())
					out.WriteByte('\n')
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(tok)
			}
		}
		if line.Len() > 0 {
			out.WriteString(line.String())
			out.WriteByte('\n')
		}
	}
	return out.String()
}
