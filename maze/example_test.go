package maze_test

import (
	"fmt"

	"github.com/katalvlaran/trailmaze/maze"
)

// ExampleParse loads a small maze and inspects the cell below the entrance.
// The '<' slope can only be crossed moving left.
func ExampleParse() {
	g, err := maze.Parse("#.#####\n#.<...#\n#.###.#\n#.....#\n#.#####\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d entrance=%v exit=%v\n", g.Rows, g.Cols, g.Entrance, g.Exit)

	junction := maze.Point{Row: 1, Col: 1}
	fmt.Println("neighbors:", g.Neighbors(nil, junction, g.Entrance))
	slope := maze.Point{Row: 1, Col: 2}
	fmt.Println("right onto slope:", g.CanStep(junction, slope, maze.Directional))
	fmt.Println("left off slope:", g.CanStep(slope, junction, maze.Directional))

	// Output:
	// 5x7 entrance=0,1 exit=4,1
	// neighbors: [2,1 1,2]
	// right onto slope: false
	// left off slope: true
}

// ExampleParse_structuralError shows how malformed input is reported.
func ExampleParse_structuralError() {
	_, err := maze.Parse("#.#\n#.x\n#.#\n")
	fmt.Println(err)

	// Output:
	// maze: unrecognized terrain at 1,2: 'x'
}
