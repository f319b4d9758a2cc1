package vec

import "math"

// Чистые функции пакета: возвращают новое значение и не изменяют
// аргументы. Дополняют мутирующие методы Vec2 для кода,
// которому важна семантика значений.

// Det возвращает определитель пары векторов: a.X*b.Y - b.X*a.Y.
// Это знаковая площадь параллелограмма (2D векторное произведение);
// знак задаёт ориентацию пары.
func Det(a, b Vec2) float64 {
	return a.X*b.Y - b.X*a.Y
}

// Add возвращает сумму двух векторов.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub возвращает разность a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale возвращает вектор, умноженный на скаляр.
func Scale(v Vec2, f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Lerp возвращает линейную интерполяцию от a к b.
func Lerp(a, b Vec2, percent float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*percent,
		Y: a.Y + (b.Y-a.Y)*percent,
	}
}

// FromAngle возвращает единичный вектор с углом theta радиан.
func FromAngle(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: cos, Y: sin}
}
