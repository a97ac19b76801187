package title

import "image/color"

var colorBG = color.RGBA{10, 10, 30, 255}
