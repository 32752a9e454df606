package core

// lineClearPoints maps rows cleared by one lock to points awarded.
var lineClearPoints = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// Points returns the score for clearing the given number of rows at once.
// Counts outside 1..4 award nothing.
func Points(lines int) int {
	return lineClearPoints[lines]
}

// GarbageFor returns how many garbage rows a clear of the given size sends.
// Singles send nothing, a four-row clear sends four, anything else one
// less than it cleared.
func GarbageFor(lines int) int {
	switch {
	case lines < 2:
		return 0
	case lines == 4:
		return 4
	default:
		return lines - 1
	}
}

// ClearName returns the conventional name of a multi-row clear.
func ClearName(lines int) string {
	switch lines {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "TETRIS"
	default:
		return ""
	}
}
