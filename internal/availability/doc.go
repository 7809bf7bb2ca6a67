// Package availability is the booking availability and conflict engine.
//
// Every function is pure over a snapshot of bookings for one venue-day: no
// I/O, no cached state. The same code gates submissions on the server and
// renders the occupancy grid, so both always agree.
//
// All intervals are half-open [start, end) in minutes since midnight. Buffer
// arithmetic is done on plain integers and is never wrapped, so a setup
// buffer reaching before 00:00 simply starts at a negative minute.
package availability
