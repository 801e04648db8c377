// Package builder assembles synthetic station networks for tests, examples and
// benchmarks of the route search.
//
// A Constructor adds stations and connections to a *core.Network using a
// resolved builderConfig. BuildNetwork creates the network and runs one or more
// constructors over it:
//
//	net, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 60)},
//		builder.Grid(4, 4),
//	)
//
// Topologies:
//
//   - Path(n):            0-1-...-(n-1)
//   - Cycle(n):           Path(n) closed back to station 0
//   - Star(n):            "Center" connected to n-1 leaves
//   - Complete(n):        every unordered pair connected once
//   - Grid(rows, cols):   4-neighbourhood grid with IDs "r,c"
//   - RandomSparse(n, p): each unordered pair connected with probability p
//
// Station IDs come from an IDFn (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
// SymbolNumberIDFn); names default to the ID. Travel times in minutes come
// from a WeightFn (ConstantWeightFn, UniformWeightFn).
//
// Guarantees:
//
//   - Deterministic station order, connection order and weights for a fixed seed.
//   - Stations already present in the network are reused, so constructors compose.
//   - Option constructors panic on meaningless inputs; Constructors return
//     sentinel errors wrapped with the method name and never panic.
package builder
