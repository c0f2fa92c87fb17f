package source

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/andareed/siftly-table/grid"
)

var (
	firstNames = []string{"Doug S", "Nancie", "Albert", "Elton", "Karin", "Kimberly", "James", "Sandra", "David", "Titus"}
	lastNames  = []string{"Lewis", "Bunting", "Christensen", "Puig", "Turner", "Thomas", "Johnson", "James", "Carter", "Carlisle"}

	generateFrom = time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// GeneratedKeys is the column order of generated users.
var GeneratedKeys = []string{"id", "dateCreated", "status", "username", "phoneNumber"}

type GenerateOptions struct {
	Count int
	Seed  uint64 // 0 picks a random seed
	Now   time.Time
}

// Generate builds Count dummy users: sequential ids, a creation date
// between 2012-01-01 and Now, a coin-flip status, a name glued together
// from two fixed lists and a nine digit phone number.
func Generate(opts GenerateOptions) grid.Dataset {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	span := now.Sub(generateFrom)
	if span <= 0 {
		span = 24 * time.Hour
	}

	rows := make([]grid.Row, 0, max(opts.Count, 0))
	for i := 0; i < opts.Count; i++ {
		status := "Inactive"
		if rng.Float64() < 0.5 {
			status = "Active"
		}
		created := generateFrom.Add(time.Duration(rng.Int64N(int64(span))))
		rows = append(rows, grid.Row{
			"id":          grid.Int(i + 1),
			"dateCreated": grid.Str(created.Format(grid.DateLayout)),
			"status":      grid.Str(status),
			"username":    grid.Str(firstNames[rng.IntN(len(firstNames))] + lastNames[rng.IntN(len(lastNames))]),
			"phoneNumber": grid.Str(fmt.Sprintf("%09d", rng.IntN(1_000_000_000))),
		})
	}
	return grid.NewDataset(GeneratedKeys, rows)
}
