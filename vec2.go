// Пакет vec предоставляет двумерную векторную математику:
// изменяемый вектор Vec2 с операциями на месте (с цепочкой вызовов),
// целочисленный компаньон Vec2i и набор чистых функций пакета.
package vec

import (
	"fmt"
	"math"
)

// Vec2 представляет изменяемый 2D вектор с плавающей точкой.
// Все мутирующие операции изменяют приёмник и возвращают его же,
// что позволяет строить цепочки вызовов без лишних аллокаций.
// Коду, которому нужна свежая копия, следует сначала вызвать Clone.
type Vec2 struct {
	X, Y float64
}

// New создаёт вектор с заданными координатами.
func New(x, y float64) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Set устанавливает обе координаты.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X = x
	v.Y = y
	return v
}

// SetVec копирует координаты другого вектора.
func (v *Vec2) SetVec(o Vec2) *Vec2 {
	v.X = o.X
	v.Y = o.Y
	return v
}

// Add прибавляет вектор покомпонентно.
func (v *Vec2) Add(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// AddXY прибавляет координаты покомпонентно.
func (v *Vec2) AddXY(x, y float64) *Vec2 {
	v.X += x
	v.Y += y
	return v
}

// Sub вычитает вектор покомпонентно.
func (v *Vec2) Sub(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// SubXY вычитает координаты покомпонентно.
func (v *Vec2) SubXY(x, y float64) *Vec2 {
	v.X -= x
	v.Y -= y
	return v
}

// Inv меняет знак обеих координат.
func (v *Vec2) Inv() *Vec2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Ort поворачивает вектор на 90°: (X, Y) становится (-Y, X).
func (v *Vec2) Ort() *Vec2 {
	// Старый X нужно прочитать до перезаписи.
	x := v.X
	v.X = -v.Y
	v.Y = x
	return v
}

// Scale умножает обе координаты на скаляр.
// Ноль, отрицательные значения, бесконечности и NaN проходят
// без проверок по семантике IEEE-754.
func (v *Vec2) Scale(f float64) *Vec2 {
	v.X *= f
	v.Y *= f
	return v
}

// Norm нормализует вектор до единичной длины.
// Нулевой вектор остаётся без изменений (деление на ноль не выполняется).
func (v *Vec2) Norm() *Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return v
	}
	v.X /= mag
	v.Y /= mag
	return v
}

// Rotate поворачивает вектор на theta радиан против часовой стрелки.
func (v *Vec2) Rotate(theta float64) *Vec2 {
	sin, cos := math.Sincos(theta)
	// Новый X вычисляется по координатам до поворота.
	x := v.X*cos - v.Y*sin
	v.Y = v.X*sin + v.Y*cos
	v.X = x
	return v
}

// Project заменяет вектор его ортогональной проекцией на o.
// Если o — нулевой вектор, происходит деление на ноль и координаты
// становятся NaN/Inf; в отличие от Norm, здесь защиты нет.
func (v *Vec2) Project(o Vec2) *Vec2 {
	f := v.Dot(o) / o.Dot(o)
	v.X = o.X * f
	v.Y = o.Y * f
	return v
}

// Reject заменяет вектор его составляющей, ортогональной o
// (дополнение проекции). Нулевой o не защищён, как и в Project.
func (v *Vec2) Reject(o Vec2) *Vec2 {
	f := v.Dot(o) / o.Dot(o)
	v.X -= o.X * f
	v.Y -= o.Y * f
	return v
}

// Reflect отражает вектор относительно направления o: 2*(v·n̂)*n̂ - v.
// Нулевой o из-за защиты в Norm даёт нулевую ось, и результат
// вырождается в простое отрицание.
func (v *Vec2) Reflect(o Vec2) *Vec2 {
	n := o
	n.Norm()
	d := v.Dot(n)
	v.X = 2*d*n.X - v.X
	v.Y = 2*d*n.Y - v.Y
	return v
}

// ReflectAndScale раскладывает вектор на составляющие вдоль o и
// поперёк o, масштабирует каждую своим коэффициентом и собирает обратно:
// n̂*(v·n̂)*projectFactor + ort(n̂)*(-(v·ort(n̂)))*rejectFactor.
// При projectFactor = rejectFactor = 1 совпадает с Reflect.
func (v *Vec2) ReflectAndScale(o Vec2, projectFactor, rejectFactor float64) *Vec2 {
	n := o
	n.Norm()
	t := n
	t.Ort()
	a := v.Dot(n) * projectFactor
	b := -v.Dot(t) * rejectFactor
	v.X = n.X*a + t.X*b
	v.Y = n.Y*a + t.Y*b
	return v
}

// Lerp выполняет линейную интерполяцию к o: v + (o - v)*percent.
// Значения percent вне [0,1] дают экстраполяцию.
func (v *Vec2) Lerp(o Vec2, percent float64) *Vec2 {
	v.X += (o.X - v.X) * percent
	v.Y += (o.Y - v.Y) * percent
	return v
}

// Dot возвращает скалярное произведение с o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// DistSq возвращает квадрат расстояния до o.
func (v Vec2) DistSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Dist возвращает евклидово расстояние до o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Dir возвращает угол вектора в радианах в диапазоне (-π, π].
func (v Vec2) Dir() float64 {
	return math.Atan2(v.Y, v.X)
}

// MagSq возвращает квадрат длины вектора.
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Mag возвращает длину вектора.
func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// InRect сообщает, лежит ли вектор внутри прямоугольника с углами
// p1 и p2 (включительно). Углы не обязаны быть отсортированы.
func (v Vec2) InRect(p1, p2 Vec2) bool {
	return between(v.X, p1.X, p2.X) && between(v.Y, p1.Y, p2.Y)
}

func between(val, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return val >= a && val <= b
}

// Clone возвращает независимую копию вектора.
func (v Vec2) Clone() *Vec2 {
	c := v
	return &c
}

// Equals проверяет структурное равенство координат.
// NaN не равен сам себе, поэтому вектор с NaN-координатой
// не равен никакому вектору, включая себя.
func (v Vec2) Equals(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// CompareTo упорядочивает векторы по длине: -1, 0 или 1.
// Векторы равной длины, но разного направления сравниваются как равные,
// хотя Equals для них возвращает false. Сравниваются квадраты длин —
// для неотрицательных значений порядок тот же, а sqrt не нужен.
// Если длина хотя бы одного вектора NaN, возвращается 0.
func (v Vec2) CompareTo(o Vec2) int {
	a, b := v.MagSq(), o.MagSq()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Hash возвращает хеш вектора: XOR хешей координат.
// Равные векторы всегда дают равный хеш.
func (v Vec2) Hash() uint64 {
	return scalarHash(v.X) ^ scalarHash(v.Y)
}

func scalarHash(f float64) uint64 {
	// -0 и +0 равны, поэтому обязаны давать одинаковый хеш.
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

// String возвращает строковое представление вида Vec2(<X>/<Y>).
func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%v/%v)", v.X, v.Y)
}
