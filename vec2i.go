package vec

import "math"

// Vec2i представляет 2D вектор с целочисленными координатами.
// Используется для сеточных координат рядом с Vec2.
type Vec2i struct {
	X, Y int
}

// Add складывает два вектора.
func (v Vec2i) Add(o Vec2i) Vec2i {
	return Vec2i{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub вычитает вектор.
func (v Vec2i) Sub(o Vec2i) Vec2i {
	return Vec2i{X: v.X - o.X, Y: v.Y - o.Y}
}

// Equals проверяет равенство векторов.
func (v Vec2i) Equals(o Vec2i) bool {
	return v.X == o.X && v.Y == o.Y
}

// ToVec2 преобразует в вектор с плавающей точкой.
func (v Vec2i) ToVec2() Vec2 {
	return Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// Round округляет координаты до ближайших целых.
func (v Vec2) Round() Vec2i {
	return Vec2i{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Floor округляет координаты вниз.
func (v Vec2) Floor() Vec2i {
	return Vec2i{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Ceil округляет координаты вверх.
func (v Vec2) Ceil() Vec2i {
	return Vec2i{X: int(math.Ceil(v.X)), Y: int(math.Ceil(v.Y))}
}
