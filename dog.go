package figures

const (
	dogColor     = "#D2691E"
	dogDarkColor = "#8B4513"
	snoutColor   = "#F5DEB3"
)

// Dog draws a round-headed dog standing to the right of its head, which
// is centered on (x, y). The mode is accepted and ignored.
func Dog(c Container, x, y float64, mode Mode, showOrigin bool) Container {
	// legs, body covers their tops
	ellipse(c, x+40, y+150, 15, 30, dogDarkColor)
	ellipse(c, x+80, y+150, 15, 30, dogDarkColor)
	ellipse(c, x+150, y+150, 15, 30, dogDarkColor)
	ellipse(c, x+190, y+150, 15, 30, dogDarkColor)

	ellipse(c, x+110, y+90, 110, 55, dogColor)
	line(c, x+215, y+70, x+260, y+20, dogDarkColor, 8)

	// ears hang behind the head
	ellipse(c, x-45, y-10, 20, 45, dogDarkColor)
	ellipse(c, x+45, y-10, 20, 45, dogDarkColor)

	circle(c, x, y, 50, dogColor)

	circle(c, x-18, y-12, 6, "black")
	circle(c, x+18, y-12, 6, "black")

	ellipse(c, x, y+22, 22, 16, snoutColor)
	polygon(c, "black", Tuple{x - 8, y + 12}, Tuple{x + 8, y + 12}, Tuple{x, y + 22})
	line(c, x, y+22, x, y+34, "black", 2)

	markOrigin(c, x, y, showOrigin)
	return c
}
