package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/birips/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrGraphNil     : graph is nil.
//   - ErrRootNotFound : root is not a vertex of graph.
//   - ErrDisconnected : |V| == 0, or the tree cannot reach every vertex.
//
// Steps:
//  1. Validate graph and root; |V| == 1 is a trivial empty tree.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge; skip it if its far end is visited, otherwise
//     take it and push the far end's edges to unvisited vertices.
//  4. Fewer than |V|-1 edges ⇒ ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrGraphNil
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make(map[int]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total float64
	pq := &edgePQ{}

	// push queues every edge from v to a vertex outside the tree.
	push := func(v int) error {
		nbrs, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.Other(v)] {
				heap.Push(pq, candidate{edge: e, to: e.Other(v)})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		mst = append(mst, *c.edge)
		total += c.edge.Weight
		if err := push(c.to); err != nil {
			return nil, 0, err
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is a heap entry: an edge and the endpoint it would add.
type candidate struct {
	edge *core.Edge
	to   int
}

// edgePQ is a min-heap of candidates ordered by (Weight, edge ID).
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
