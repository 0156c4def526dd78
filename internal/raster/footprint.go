package raster

type gridOffset struct {
	dx int
	dy int
}

// dotRadius matches the 2 px arcs used for every trace sample.
const dotRadius = 2

var dotFootprint = precomputeFootprint(dotRadius)

// precomputeFootprint lists the pixel offsets inside a filled disc.
func precomputeFootprint(radius int) []gridOffset {
	footprint := make([]gridOffset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				footprint = append(footprint, gridOffset{dx: x, dy: y})
			}
		}
	}
	return footprint
}
