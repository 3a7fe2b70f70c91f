// Package hexgrid builds hexagonal meshes for numerical work.
//
// A Grid is constructed as a hexagonal lattice of rings around a central
// cell, a closed boundary curve is fitted onto it, cells outside the retained
// region are discarded and the survivors are flattened into dense arrays with
// explicit neighbor-index tables:
//
//	g, err := hexgrid.NewGrid(params)       // Built
//	err = g.SetBoundary(points)              // BoundaryFitted
//	err = g.Prune()                          // Pruned
//	mesh, err := g.Compact()                 // Compacted
//
// Stages run in this order and, apart from Compact, only once; calling a
// stage out of order returns ErrInvalidState and leaves the grid untouched.
// Compact may be repeated on a compacted grid and returns identical arrays.
// A Grid is not safe for concurrent use. The Mesh returned by Compact owns
// its arrays and does not refer back to the Grid.
package hexgrid
