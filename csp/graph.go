package csp

import "fmt"

// ActiveVerticesConnected2D posts the predicate "every True cell of grid
// forms a single 4-connected component" (vacuously satisfied if no cell is
// True), checked at each complete assignment (spec section 6).
func ActiveVerticesConnected2D(s *Solver, grid BoolVarArray2D) {
	s.leafChecks = append(s.leafChecks, func(env Env) bool {
		return gridSingleComponent(grid, env)
	})
}

func gridSingleComponent(grid BoolVarArray2D, env Env) bool {
	h, w := grid.Height(), grid.Width()
	visited := make([][]bool, h)
	for y := range visited {
		visited[y] = make([]bool, w)
	}

	var start [2]int
	found := false
	total := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid.At(y, x).Eval(env) == True {
				total++
				if !found {
					start = [2]int{y, x}
					found = true
				}
			}
		}
	}
	if total == 0 {
		return true
	}

	queue := [][2]int{start}
	visited[start[0]][start[1]] = true
	reached := 0
	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		reached++
		for _, d := range offsets {
			ny, nx := cur[0]+d[0], cur[1]+d[1]
			if ny < 0 || ny >= h || nx < 0 || nx >= w || visited[ny][nx] {
				continue
			}
			if grid.At(ny, nx).Eval(env) != True {
				continue
			}
			visited[ny][nx] = true
			queue = append(queue, [2]int{ny, nx})
		}
	}
	return reached == total
}

// unionFind is a disjoint-set over integer node ids with path compression
// and union by rank, adapted from prim_kruskal.Kruskal's string-keyed DSU
// for add_graph_division's node-indexed components.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// AddGraphDivision posts the predicate partitioning nodes 0..numNodes-1 by
// the edges whose cutLiterals[i] is false (non-cut edges join the same
// region): at each complete assignment, every node's component size is
// passed through validate, which may apply a different rule per node (or
// none at all, returning true unconditionally) - this is how rules.Board
// composes region-area and area-number clues that may both, independently
// or not at all, constrain the region containing a given cell (spec section
// 4.3). len(edges) must equal len(cutLiterals). validate may be nil, in
// which case every partition is accepted.
func AddGraphDivision(s *Solver, numNodes int, edges [][2]int, cutLiterals []Expr, validate func(node, size int, env Env) bool) error {
	if len(edges) != len(cutLiterals) {
		return fmt.Errorf("%w: %d edges, %d cut literals", ErrGraphDivisionArity, len(edges), len(cutLiterals))
	}
	s.leafChecks = append(s.leafChecks, func(env Env) bool {
		uf := newUnionFind(numNodes)
		for i, e := range edges {
			if cutLiterals[i].Eval(env) != True {
				uf.union(e[0], e[1])
			}
		}
		size := make(map[int]int, numNodes)
		for i := 0; i < numNodes; i++ {
			size[uf.find(i)]++
		}
		if validate == nil {
			return true
		}
		for i := 0; i < numNodes; i++ {
			if !validate(i, size[uf.find(i)], env) {
				return false
			}
		}
		return true
	})
	return nil
}
