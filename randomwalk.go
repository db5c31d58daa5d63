// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package romeguide

import (
	"log/slog"
	"math/rand/v2"
)

// RandomWalk visits places in random order.  The order is decided once, when
// the RandomWalk is created.
type RandomWalk struct {
	places []Place
	order  []int
	cur    cursor
}

var _ Guide = (*RandomWalk)(nil)

// NewRandomWalk creates a new RandomWalk over places.  If rng is nil, the
// global random source is used.  The places slice is not modified.
func NewRandomWalk(places []Place, rng *rand.Rand) (*RandomWalk, error) {
	if len(places) == 0 {
		return nil, &ConstructionError{Kind: KRandomWalk, Err: ErrNoPlaces}
	}
	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}
	rw := &RandomWalk{
		places: places,
		order:  shuffle(len(places), intn),
		cur:    cursor{n: len(places)},
	}
	slog.Debug("random walk created", "order", rw.order)
	return rw, nil
}

// shuffle returns a random permutation of [0, n) using the Fisher-Yates
// shuffle.  intn must return a uniform random number in [0, n).
func shuffle(n int, intn func(int) int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func (rw *RandomWalk) HasNext() bool {
	return rw.cur.hasNext()
}

func (rw *RandomWalk) Next() (Stop, bool) {
	i, ok := rw.cur.advance()
	if !ok {
		return Stop{}, false
	}
	p := rw.places[rw.order[i]]
	return Stop{
		Place: p,
		Kind:  KRandomWalk,
		Note:  "Randomly found: " + p.Name,
	}, true
}
