package records

import "time"

type Meters float64

type Vec3 struct {
	X, Y, Z float64
}

type Particle struct {
	Pos     Vec3
	Mass    float32
	Height  Meters
	Charge  [2]float64
	Hist    [3]Vec3
	Label   string
	Age     time.Duration
	Stamps  [2]time.Time
	private int16
	_       [4]byte
}

type Pair[A any] struct {
	First, Second A
}

type Celsius float32
