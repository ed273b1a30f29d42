package figures

const (
	skinColor   = "#FFE0BD"
	cheekColor  = "#FF9999"
	coatColor   = "#4169E1"
	hatColor    = "#B22222"
	brassColor  = "#DAA520"
	strokeColor = "black"
)

// Trumpeter draws a musician playing to the right, head centered on
// (x, y). The mode is accepted and ignored.
func Trumpeter(c Container, x, y float64, mode Mode, showOrigin bool) Container {
	line(c, x-20, y+160, x-30, y+250, strokeColor, 8)
	line(c, x+20, y+160, x+30, y+250, strokeColor, 8)

	polygon(c, coatColor, Tuple{x - 35, y + 40}, Tuple{x + 35, y + 40}, Tuple{x + 45, y + 160}, Tuple{x - 45, y + 160})

	circle(c, x, y, 30, skinColor)
	polygon(c, hatColor, Tuple{x - 30, y - 20}, Tuple{x + 30, y - 20}, Tuple{x + 20, y - 50}, Tuple{x - 20, y - 50})
	circle(c, x-10, y-8, 3, strokeColor)
	circle(c, x+10, y-8, 3, strokeColor)
	// puffed cheek
	circle(c, x+14, y+10, 8, cheekColor)

	// trumpet: tube, valves, bell
	line(c, x+20, y+10, x+100, y+10, brassColor, 6)
	line(c, x+50, y+10, x+50, y, brassColor, 3)
	line(c, x+60, y+10, x+60, y, brassColor, 3)
	line(c, x+70, y+10, x+70, y, brassColor, 3)
	polygon(c, brassColor, Tuple{x + 100, y + 10}, Tuple{x + 130, y - 10}, Tuple{x + 130, y + 30})

	// arms reach up to the trumpet
	line(c, x-35, y+55, x+50, y+15, skinColor, 6)
	line(c, x+35, y+55, x+70, y+15, skinColor, 6)

	markOrigin(c, x, y, showOrigin)
	return c
}
