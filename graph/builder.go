package graph

import (
	"fmt"
	"strconv"
)

// Chain builds the directed path N0 → N1 → … → N(n-1).
// n < 1 yields an empty graph.
//
// Complexity: O(n).
func Chain(n int) Graph {
	g := make(Graph, max(n, 0))
	for i := 0; i < n; i++ {
		id := "N" + strconv.Itoa(i)
		if i+1 < n {
			g[id] = []string{"N" + strconv.Itoa(i+1)}
		} else {
			g[id] = []string{}
		}
	}

	return g
}

// BinaryTree builds a complete binary tree of the given depth with IDs
// "T-1" … "T-(2^depth-1)"; T-i has children T-2i and T-(2i+1), left first.
// depth < 1 yields an empty graph.
//
// Complexity: O(2^depth).
func BinaryTree(depth int) Graph {
	if depth < 1 {
		return Graph{}
	}
	n := (1 << depth) - 1
	g := make(Graph, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("T-%d", i)
		if 2*i+1 <= n {
			g[id] = []string{fmt.Sprintf("T-%d", 2*i), fmt.Sprintf("T-%d", 2*i+1)}
		} else {
			g[id] = []string{}
		}
	}

	return g
}

// Star builds a hub S0 with n leaves S1 … Sn, edges pointing outwards.
//
// Complexity: O(n).
func Star(n int) Graph {
	leaves := make([]string, 0, max(n, 0))
	g := make(Graph, max(n, 0)+1)
	for i := 1; i <= n; i++ {
		id := "S" + strconv.Itoa(i)
		leaves = append(leaves, id)
		g[id] = []string{}
	}
	g["S0"] = leaves

	return g
}
