package vec

import "math"

// Математические константы, используемые в геометрических расчётах.
const (
	// Sqrt2 — квадратный корень из 2.
	Sqrt2 = math.Sqrt2

	// Sqrt1_2 — квадратный корень из 1/2 (обратная величина Sqrt2).
	Sqrt1_2 = 1 / math.Sqrt2
)
