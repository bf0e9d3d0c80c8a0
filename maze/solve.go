package maze

// solveDirections is the canonical neighbor order for the solver: up,
// right, down, left. The carver guarantees a unique entry-to-exit
// path, so this order is currently unobservable, but it is pinned so
// that any future multi-path generation stays deterministic.
var solveDirections = [4]Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// solve runs a breadth-first search over the 4-connected open cells
// from the entry to the exit and returns the shortest path, entry
// first. A missing path means the carver's spanning-tree guarantee was
// broken and is reported as ErrNoSolution.
func (m *Maze) solve() ([]Position, error) {
	start, end := m.Entry(), m.Exit()

	visited := map[Position]bool{start: true}
	parent := make(map[Position]Position)
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return reconstructPath(parent, start, end), nil
		}

		for _, d := range solveDirections {
			next := Position{X: current.X + d.X, Y: current.Y + d.Y}
			if !m.inBounds(next.X, next.Y) || m.cells[next.Y][next.X] || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			queue = append(queue, next)
		}
	}

	return nil, ErrNoSolution
}

// reconstructPath walks the predecessor map back from end to start and
// reverses the result.
func reconstructPath(parent map[Position]Position, start, end Position) []Position {
	var path []Position
	for current := end; current != start; current = parent[current] {
		path = append(path, current)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
