package mktemp

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Reseed after this many lost create races in a row. Two processes that
// happened to share a seed would otherwise keep replaying each other's
// candidate sequence.
const conflictReseed = 10

// generator produces the random portion of candidate names: nine decimal
// digits from a linear congruential generator seeded with wall clock and
// pid. The generator only has to make collisions rare; the create-exclusive
// loop is what makes them harmless.
type generator struct {
	mu        sync.Mutex
	state     uint32
	conflicts int
}

func reseed() uint32 {
	return uint32(time.Now().UnixNano() + int64(os.Getpid()))
}

func (g *generator) next() string {
	g.mu.Lock()
	r := g.state
	if r == 0 {
		r = reseed()
	}
	r = r*1664525 + 1013904223 // constants from Numerical Recipes
	g.state = r
	g.mu.Unlock()
	return strconv.Itoa(int(1e9 + r%1e9))[1:]
}

// noteConflict records a lost create race, reseeding after a streak of
// conflictReseed of them.
func (g *generator) noteConflict() {
	g.mu.Lock()
	g.conflicts++
	if g.conflicts > conflictReseed {
		g.state = reseed()
		g.conflicts = 0
	}
	g.mu.Unlock()
}
