// Package minorembed_test holds runnable examples. Each is executable via
// "go test -run Example", showing both code and expected output.
package minorembed_test

import (
	"fmt"

	"github.com/katalvlaran/minorembed"
)

// ExampleFindEmbedding_triangle embeds a triangle source graph into a
// triangle target graph, the simplest case where S and T are isomorphic.
func ExampleFindEmbedding_triangle() {
	S := []minorembed.Edge{{A: "a", B: "b"}, {A: "b", B: "c"}, {A: "a", B: "c"}}
	T := []minorembed.Edge{{A: "0", B: "1"}, {A: "1", B: "2"}, {A: "0", B: "2"}}

	mapping, proper, err := minorembed.FindEmbedding(S, T, minorembed.WithRandomSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// An isomorphic target always admits a permutation embedding: each
	// source vertex maps to exactly one target node, three nodes total,
	// regardless of which permutation the search lands on.
	total := 0
	for _, chain := range mapping {
		total += len(chain)
	}
	fmt.Println("proper:", proper)
	fmt.Println("target nodes used:", total)
	// Output:
	// proper: true
	// target nodes used: 3
}
