package gridgraph

import (
	"fmt"
	"strings"
)

// Maze runes.
const (
	WallRune  = '#'
	OpenRune  = '.'
	StartRune = 'S'
	GoalRune  = 'G'
	PathRune  = '*'
)

// Maze is a parsed text maze: the grid plus its start and goal cells.
type Maze struct {
	*GridGraph
	Start Point
	Goal  Point
}

// ParseMaze reads lines of '#' (wall), '.' or ' ' (open), 'S' (start) and
// 'G' (goal). Short lines are padded with walls; trailing blank lines are
// ignored. Exactly one S and one G are required.
func ParseMaze(lines []string, conn Connectivity) (*Maze, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	opts := DefaultGridOptions()
	opts.Conn = conn
	openValue, wallValue := opts.LandThreshold, opts.LandThreshold-1

	m := &Maze{}
	starts, goals := 0, 0
	cells := make([][]int, len(lines))
	for y, l := range lines {
		row := make([]int, width)
		for x := range row {
			row[x] = wallValue
		}
		for x, r := range []rune(l) {
			switch r {
			case WallRune:
			case OpenRune, ' ':
				row[x] = openValue
			case StartRune:
				row[x] = openValue
				m.Start = Point{X: x, Y: y}
				starts++
			case GoalRune:
				row[x] = openValue
				m.Goal = Point{X: x, Y: y}
				goals++
			default:
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrBadMazeRune, r, y+1, x+1)
			}
		}
		cells[y] = row
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w (found %d S, %d G)", ErrMissingMarker, starts, goals)
	}

	gg, err := NewGridGraph(cells, opts)
	if err != nil {
		return nil, err
	}
	m.GridGraph = gg
	return m, nil
}

// Render draws the maze with path cells marked '*'. Start and goal keep
// their markers.
func (m *Maze) Render(path []Point) []string {
	canvas := make([][]rune, m.Height)
	for y := range canvas {
		canvas[y] = make([]rune, m.Width)
		for x := range canvas[y] {
			if m.Open(Point{X: x, Y: y}) {
				canvas[y][x] = OpenRune
			} else {
				canvas[y][x] = WallRune
			}
		}
	}
	for _, p := range path {
		if m.InBounds(p.X, p.Y) {
			canvas[p.Y][p.X] = PathRune
		}
	}
	canvas[m.Start.Y][m.Start.X] = StartRune
	canvas[m.Goal.Y][m.Goal.X] = GoalRune

	out := make([]string, m.Height)
	for y, row := range canvas {
		out[y] = string(row)
	}
	return out
}
