package field

import (
	"fmt"
	"io"
	"strconv"
)

// #region text-sink
// TextSink renders the scan as the flat textual stream consumed by external
// visualization tools: a header line with the region bounds, a step line,
// then one line per lattice row of space-separated integer codes.
type TextSink struct {
	w     io.Writer
	inRow bool
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (t *TextSink) Header(r Region, stepRe, stepIm float64) {
	fmt.Fprintf(t.w, "field [%s, %s][%s, %s]\n",
		ftoa(r.MinRe), ftoa(r.MaxRe), ftoa(r.MinIm), ftoa(r.MaxIm))
	fmt.Fprintf(t.w, "d(Re)=%s d(Im)=%s\n", ftoa(stepRe), ftoa(stepIm))
}

func (t *TextSink) Cell(re, im float64, code int) {
	if t.inRow {
		fmt.Fprint(t.w, " ")
	}
	fmt.Fprint(t.w, code)
	t.inRow = true
}

func (t *TextSink) EndRow() {
	fmt.Fprintln(t.w)
	t.inRow = false
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
// #endregion text-sink
