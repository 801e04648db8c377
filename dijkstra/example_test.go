package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// ExampleDijkstra computes the fastest route on a small triangle:
// A–B 30, B–C 10, A–C 70.
func ExampleDijkstra() {
	net, err := core.Build(
		[]core.StationRecord{{ID: "A", Name: "A"}, {ID: "B", Name: "B"}, {ID: "C", Name: "C"}},
		[]core.ConnectionRecord{
			{SourceID: "A", DestinationID: "B", Time: core.Minutes(30)},
			{SourceID: "B", DestinationID: "C", Time: core.Minutes(10)},
			{SourceID: "A", DestinationID: "C", Time: core.Minutes(70)},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Dijkstra(net, core.Station{ID: "A", Name: "A"}, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.PathTo(core.Station{ID: "C", Name: "C"})
	fmt.Println(p)
	// Output: A->B->C, 40
}
