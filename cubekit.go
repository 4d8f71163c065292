// Package cubekit models a 3x3x3 twisty puzzle as 26 rigid pieces on a
// discrete lattice.
//
// # Model
//
// Every piece carries a lattice position (components in {-1, 0, 1}) and a
// three-slot color record indexed by axis. A face is the nine pieces on the
// positive side of one of six axis vectors; a quarter turn multiplies each
// of those positions by a fixed 90-degree rotation matrix and swaps the two
// color slots perpendicular to the turn axis. Colors are only ever permuted
// between slots and positions, never created or destroyed.
//
// # Quick Start
//
//	cube := cubekit.New()
//
//	// Apply moves from notation
//	if err := cube.Sequence("R U Ri Ui"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or using move constants
//	cube.Apply(cubekit.MoveF, cubekit.MoveFi)
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// # Notation
//
// Moves use the twelve case-sensitive symbols L Li R Ri F Fi B Bi U Ui D Di,
// separated by whitespace; the i suffix is the counter-clockwise turn. A
// sequence is validated in full before any move is applied, so an invalid
// string never leaves the cube partially turned.
//
// # Queries
//
// FaceColors reads the nine facelets of one face for rendering, FindPiece
// locates a cubie by its color signature, and Pieces exposes all 26 pieces
// for read-only iteration. Solving algorithms are deliberately out of scope;
// the move and query surface above is the whole contract.
package cubekit
