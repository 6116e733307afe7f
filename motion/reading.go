package motion

import "time"

// Vec3 is a three-axis measurement.
type Vec3 struct {
	X, Y, Z float64
}

// Attitude is the device orientation in radians.
type Attitude struct {
	Roll, Pitch, Yaw float64
}

// Reading is one processed device-motion sample.
type Reading struct {
	Attitude Attitude
	// RotationRate is in radians per second.
	RotationRate Vec3
	// Gravity and UserAcceleration are in units of g.
	Gravity          Vec3
	UserAcceleration Vec3
	Timestamp        time.Time
}
