// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClickPulse — масштаб элемента UI после клика: скачок на 30% и быстрое затухание
func ClickPulse(elapsed float64) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Approach двигает current к target не больше чем на step за вызов
func Approach(current, target, step float64) float64 {
	diff := target - current
	if math.Abs(diff) < step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}
