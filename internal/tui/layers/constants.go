package layers

const (
	HelpWidthDivisor = 2
	HelpMinWidth     = 40
	HelpMaxWidth     = 80

	HelpMaxHeightNumerator = 4 // 4/5 of the screen height
	HelpMaxHeightDivisor   = 5

	HelpBorderPaddingWidth = 6 // border + padding, left and right
)
