package workerpool

// FlightKey exposes flightKey for testing.
var FlightKey = flightKey
