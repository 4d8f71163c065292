package cubekit

// Predefined move sequences for convenience.
//
// Example:
//
//	cube.Apply(cubekit.SexyMove...)
var (
	// Sexy move: R U Ri Ui - one of the most common triggers
	SexyMove = []Move{MoveR, MoveU, MoveRi, MoveUi}

	// Inverse sexy move: U R Ui Ri
	InverseSexyMove = []Move{MoveU, MoveR, MoveUi, MoveRi}

	// Sledgehammer: Ri F R Fi
	Sledgehammer = []Move{MoveRi, MoveF, MoveR, MoveFi}
)
