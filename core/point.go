package core

// Point identifies a single grid cell by column (X) and row (Y)
type Point struct {
	X, Y int
}
