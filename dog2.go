package figures

const (
	dog2Color    = "#C19A6B"
	dog2EarColor = "#6F4E37"
)

// Dog2 draws an angular dog built from polylines. (x, y) is the top left
// corner of the drawing; the head sits at the left, the body to its
// right. The mode is accepted and ignored.
func Dog2(c Container, x, y float64, mode Mode, showOrigin bool) Container {
	noseTip := Tuple{x + 102, y + 215}

	// tail and legs go under the body
	polygon(c, dog2Color, Tuple{x + 330, y + 210}, Tuple{x + 385, y + 150}, Tuple{x + 395, y + 160}, Tuple{x + 340, y + 230})
	for _, legX := range []float64{130, 170, 270, 305} {
		polygon(c, dog2Color,
			Tuple{x + legX, y + 280}, Tuple{x + legX + 25, y + 280},
			Tuple{x + legX + 25, y + 340}, Tuple{x + legX, y + 340})
	}
	polygon(c, dog2Color, Tuple{x + 120, y + 200}, Tuple{x + 330, y + 200}, Tuple{x + 330, y + 280}, Tuple{x + 120, y + 280})

	polygon(c, dog2EarColor, Tuple{x + 50, y + 100}, Tuple{x + 25, y + 170}, Tuple{x + 65, y + 110})
	polygon(c, dog2EarColor, Tuple{x + 155, y + 100}, Tuple{x + 180, y + 170}, Tuple{x + 140, y + 110})

	polygon(c, dog2Color,
		Tuple{x + 50, y + 100}, Tuple{x + 155, y + 100}, Tuple{x + 165, y + 190},
		Tuple{noseTip[0], noseTip[1] + 15}, Tuple{x + 40, y + 190})
	polygon(c, snoutColor, Tuple{x + 80, y + 185}, Tuple{x + 125, y + 185}, noseTip)
	circle(c, noseTip[0], noseTip[1]-5, 6, "black")

	circle(c, noseTip[0]+35, noseTip[1]-90, 5, "black")
	circle(c, noseTip[0]-35, noseTip[1]-90, 5, "black")

	markOrigin(c, x, y, showOrigin)
	return c
}
