// Package vowelgraph renders CMU Pronouncing Dictionary vowels as a
// hexagonal adjacency graph and answers shortest-path distance queries
// between any two bare vowels, memoized over all pairs at initialization.
//
// The adjacency itself is hand-authored and opinionated (see edges.json);
// it is not derived from any acoustic measurement, and is not meant to be.
package vowelgraph

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/scansion/meter/pkg/phoneme"
)

//go:embed edges.json
var edgesJSON []byte

type edgeSpec struct {
	Edges [][2]string `json:"edges"`
}

var (
	adjacency map[string][]string
	distances map[[2]string]int
)

func init() {
	var spec edgeSpec
	if err := json.Unmarshal(edgesJSON, &spec); err != nil {
		panic(fmt.Sprintf("vowelgraph: decode edge table: %s", err))
	}

	adjacency = make(map[string][]string, len(phoneme.Vowels))
	addEdge := func(a, b string) {
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
	}
	for _, e := range spec.Edges {
		addEdge(e[0], e[1])
	}

	distances = make(map[[2]string]int)
	for _, a := range phoneme.Vowels {
		for _, b := range phoneme.Vowels {
			key := pairKey(a, b)
			if _, done := distances[key]; done {
				continue
			}
			distances[key] = shortestPath(a, b)
		}
	}
}

// pairKey produces an order-independent key for the symmetric distance map.
func pairKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// shortestPath runs a breadth-first search over the hand-authored adjacency.
func shortestPath(start, goal string) int {
	if start == goal {
		return 0
	}
	visited := map[string]bool{start: true}
	queue := []string{start}
	dist := map[string]int{start: 0}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range adjacency[current] {
			if neighbor == goal {
				return dist[current] + 1
			}
			if !visited[neighbor] {
				visited[neighbor] = true
				dist[neighbor] = dist[current] + 1
				queue = append(queue, neighbor)
			}
		}
	}
	return -1
}

// Distance returns the memoized shortest-path distance between two bare
// (stress-stripped) vowel symbols: 0 if equal, at least 1 otherwise.
// Querying a non-vowel symbol is a programmer error.
func Distance(v1, v2 string) int {
	if !phoneme.IsKnownBareVowel(v1) || !phoneme.IsKnownBareVowel(v2) {
		panic(fmt.Sprintf("vowelgraph: unknown vowel pair (%q, %q)", v1, v2))
	}
	return distances[pairKey(v1, v2)]
}
