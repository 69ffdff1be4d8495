package engine

import (
	"fmt"
	"math/rand"

	"github.com/alexanderramin/triagelab/internal/contentpack"
)

// GenerateQueue builds the ordered sequence of case identifiers for a
// session. Tutorial cases come first in their stored order; the remaining
// cases are grouped into scenario blocks, the block order is shuffled, and
// optionally the case order within every block is shuffled too. Every
// patient appears exactly once.
func GenerateQueue(patients []contentpack.Patient, rng *rand.Rand, shuffleWithinBlock bool) ([]string, error) {
	var tutorial []string
	blockOrder := make([]string, 0)
	blocks := make(map[string][]string)

	for _, p := range patients {
		if p.ID == "" {
			return nil, fmt.Errorf("patient record missing id")
		}
		if p.Scenario == "" {
			return nil, fmt.Errorf("patient %s: missing scenario", p.ID)
		}
		if p.IsTutorial {
			tutorial = append(tutorial, p.ID)
			continue
		}
		if _, ok := blocks[p.Scenario]; !ok {
			blockOrder = append(blockOrder, p.Scenario)
		}
		blocks[p.Scenario] = append(blocks[p.Scenario], p.ID)
	}

	rng.Shuffle(len(blockOrder), func(i, j int) {
		blockOrder[i], blockOrder[j] = blockOrder[j], blockOrder[i]
	})

	queue := append([]string{}, tutorial...)
	for _, scenario := range blockOrder {
		block := blocks[scenario]
		if shuffleWithinBlock {
			rng.Shuffle(len(block), func(i, j int) {
				block[i], block[j] = block[j], block[i]
			})
		}
		queue = append(queue, block...)
	}
	return queue, nil
}
