package document

// Wrap relocates the overflow of row into a new line inserted at row+1.
//
// It only acts when row has room below it and its length has reached
// MaxLineLen. The break point is the rightmost space before MaxLineLen; with
// no space the line is hard-broken at MaxLineLen. Rows after row are shifted
// down one slot and the content of the last row is lost. The breaking space
// itself is dropped.
//
// Returns the break index and true when a wrap happened.
func (d *Document) Wrap(row int) (int, bool) {
	if row >= MaxLines-1 {
		return 0, false
	}

	cur := d.lines[row]
	if cur.Len() < MaxLineLen {
		return 0, false
	}

	breakIdx := cur.LastSpace(MaxLineLen)
	if breakIdx < 0 {
		breakIdx = MaxLineLen
	}

	d.ShiftDown(row + 1)

	var overflow string
	if breakIdx+1 < cur.Len() {
		overflow = cur.String()[breakIdx+1:]
	}
	d.lines[row+1].SetString(overflow)
	d.lines[row].Truncate(breakIdx)

	return breakIdx, true
}
