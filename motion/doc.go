// Package motion delivers device-motion readings from a platform sensor.
//
// A Manager is created and owned by the caller; there is no shared
// instance. Updates flow only between an explicit Start and Stop:
//
//	m, err := motion.NewManager(sensor, motion.WithInterval(50*time.Millisecond))
//	if err != nil {
//	    return err
//	}
//	if err := m.Start(); err != nil {
//	    return err
//	}
//	defer m.Stop()
//
//	if r, ok := m.Latest(); ok {
//	    fmt.Println(r.Attitude.Pitch)
//	}
//
// Hosts that pause when backgrounded call Stop on pause and Start on
// resume. The platform sensor is reached only through the Sensor
// interface; Simulated is a ticker-driven implementation for demos and
// tests.
package motion
