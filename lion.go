package figures

const (
	maneColor   = "#A0522D"
	lionColor   = "#CD853F"
	muzzleColor = "#F4A460"
)

// Lion draws a lion face centered on (x, y). In ModeWinking the right eye
// is a closed lid instead of an ellipse.
func Lion(c Container, x, y float64, mode Mode, showOrigin bool) Container {
	// mane first, the head covers most of it
	ellipse(c, x, y+25, 175, 190, maneColor)

	ellipse(c, x-100, y-100, 50, 50, lionColor)
	ellipse(c, x+100, y-100, 50, 50, lionColor)

	ellipse(c, x, y, 150, 150, lionColor)

	ellipse(c, x-25, y+75, 45, 45, muzzleColor)
	ellipse(c, x+25, y+75, 45, 45, muzzleColor)

	ellipse(c, x-25, y+10, 15, 15, "black")
	if mode == ModeWinking {
		line(c, x+10, y+10, x+40, y+10, "black", 4)
	} else {
		ellipse(c, x+25, y+10, 15, 15, "black")
	}

	// nose
	polygon(c, "black", Tuple{x - 25, y + 50}, Tuple{x + 25, y + 50}, Tuple{x, y + 75})
	// mouth
	polygon(c, "black", Tuple{x - 20, y + 125}, Tuple{x + 20, y + 125}, Tuple{x + 10, y + 145}, Tuple{x - 10, y + 145})

	// whiskers
	line(c, x-100, y+65, x-40, y+60, "black", 2)
	line(c, x-100, y+85, x-40, y+80, "black", 2)
	line(c, x+100, y+65, x+40, y+60, "black", 2)
	line(c, x+100, y+85, x+40, y+80, "black", 2)

	markOrigin(c, x, y, showOrigin)
	return c
}
