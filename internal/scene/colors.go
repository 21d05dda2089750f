package scene

import "image/color"

var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Blue   = color.RGBA{0, 100, 255, 255}
	Gray   = color.RGBA{100, 100, 100, 255}
	Yellow = color.RGBA{255, 220, 0, 255}
	Orange = color.RGBA{255, 140, 0, 255}

	// translucent fills
	DiscFill  = color.RGBA{0, 100, 255, 60}
	SweepFill = color.RGBA{255, 140, 0, 110}
)
