// Package bezier evaluates polynomial Bezier curves of any degree.
package bezier

import (
	"math"

	"honnef.co/go/curve"
)

// Steps is how many segments a curve is split into when sampled.
const Steps = 100

// Eval returns a point of the curve defined by points at t.
// Degree of the curve is len(points)-1.
// refer: https://en.wikipedia.org/wiki/B%C3%A9zier_curve#Explicit_definition
func Eval(t float64, points []curve.Point) curve.Point {
	var result curve.Vec2

	n := len(points) - 1
	for i, p := range points {
		d := Binomial(n, i) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		result = result.Add(curve.Vec2(p).Mul(d))
	}

	return curve.Point(result)
}

// Sample returns steps+1 points of the curve evenly spaced over [0, maxT].
func Sample(points []curve.Point, maxT float64, steps int) []curve.Point {
	if len(points) == 0 || steps < 1 {
		return nil
	}

	result := make([]curve.Point, 0, steps+1)
	result = append(result, Eval(0, points))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps) * maxT
		result = append(result, Eval(t, points))
	}

	return result
}
