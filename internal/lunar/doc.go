// Package lunar maps calendar instants to the Moon's phase using a mean
// synodic month measured from a fixed reference new moon.
//
// Every function in this package is pure: results depend only on the
// arguments, there is no package-level mutable state, and all functions are
// safe for concurrent use at any call rate.
package lunar
