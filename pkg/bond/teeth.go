package bond

import (
	"math"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// toothChain tracks one vertical alignment of brick ends across
// consecutive courses. Only the most recent end matters for extension
// checks; the length counts every aligned end in the chain.
type toothChain struct {
	endX   float64 // x of the most recent aligned brick end
	course int     // course holding that end
	length int     // number of aligned ends, >= 2
}

// teethWindow is how many recent courses the falling-teeth sweep scans.
const teethWindow = 5

// fallingTeethChains sweeps the most recent courses below the one being
// generated and chains together brick ends that align within a quarter
// brick across consecutive courses. The wild generator refuses to extend
// any chain that has already reached maxTeethChain.
//
// The sweep pairs each course with the one directly below it, bottom-up,
// so a chain grows by exactly one end per course and breaks as soon as a
// course has no aligned end.
func fallingTeethChains(course int, prior []wall.Course) []toothChain {
	if course <= 1 {
		return nil
	}
	start := max(0, course-teethWindow)

	ends := make(map[int][]float64, course-start)
	for c := start; c < course; c++ {
		ends[c] = interiorEnds(prior[c])
	}

	var chains []toothChain
	for c := start + 1; c < course; c++ {
		for _, end := range ends[c] {
			for _, prev := range ends[c-1] {
				if math.Abs(end-prev) >= quarterBrick {
					continue
				}
				extended := false
				for i := range chains {
					if chains[i].course == c-1 && math.Abs(chains[i].endX-prev) < 1 {
						chains[i].endX = end
						chains[i].course = c
						chains[i].length++
						extended = true
						break
					}
				}
				if !extended {
					chains = append(chains, toothChain{endX: end, course: c, length: 2})
				}
				break
			}
		}
	}
	return chains
}

// extendsLongChain reports whether a brick ending at endX in the given
// course would extend a chain that has already reached the limit. Only
// chains ending in the course directly below can be extended; older
// chains are already broken.
func extendsLongChain(chains []toothChain, course int, endX float64) bool {
	for _, ch := range chains {
		if ch.length >= maxTeethChain && ch.course == course-1 && math.Abs(endX-ch.endX) < quarterBrick {
			return true
		}
	}
	return false
}

// interiorEnds returns the x positions of interior brick ends (head
// joints) for a course layout. The final brick's end is the wall edge,
// not a joint, and is excluded.
func interiorEnds(row wall.Course) []float64 {
	if len(row) < 2 {
		return nil
	}
	ends := make([]float64, 0, len(row)-1)
	x := 0.0
	for _, b := range row[:len(row)-1] {
		x += b.Length
		ends = append(ends, x)
		x += wall.HeadJoint
	}
	return ends
}
