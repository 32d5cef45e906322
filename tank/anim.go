// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tank

import "math"

// ActiveCamera returns the index of the camera that renders at the given
// time in seconds, cycling through n cameras at rate changes per second.
// The result is in [0, n) and periodic in time with period n / rate.
func ActiveCamera(time, rate float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Mod(math.Floor(time*rate), float64(n)))
	if i < 0 {
		i += n
	}
	return i
}

// Hue returns the hue in [0, 1) at the given time in seconds, cycling
// at rate cycles per second.
func Hue(time, rate float64) float32 {
	h := float32(frac(time * rate))
	if h >= 1 {
		return 0
	}
	return h
}

// WheelAngle returns the wheel rotation in [0, 2π) at the given time in
// seconds, turning at rate radians per second.
func WheelAngle(time, rate float64) float32 {
	return float32(2 * math.Pi * frac(time*rate/(2*math.Pi)))
}

// Bob returns the height offset of the target at the given time in
// seconds, for the given angular speed and height.
func Bob(time, speed, height float64) float32 {
	return float32(math.Sin(time*speed) * height)
}

// PathTime returns the position in [0, 1) along the path at the given
// time in seconds, covering speed of the path per second. The product is
// taken in float64 so long runs keep their precision.
func PathTime(time, speed float64) float32 {
	u := float32(frac(time * speed))
	if u >= 1 {
		return 0
	}
	return u
}

// scaled returns time times rate as a float32 angle, wrapped to one
// turn so that float32 keeps its precision on long runs.
func scaled(time float64, rate float32) float32 {
	return float32(math.Mod(time*float64(rate), 2*math.Pi))
}

// frac returns the fractional part of x in [0, 1), also for negative x.
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
