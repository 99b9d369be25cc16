package components

const (
	cellPadding      = 2  // one space either side of the cell text
	indicatorSpace   = 2  // " ▲" after a sorted header label
	maxNaturalWidth  = 32 // content wider than this is truncated unless Width is set
	emptyTableNotice = "No registrations yet. Run `regatta register` or `regatta seed`."
)
