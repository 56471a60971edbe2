// Package tui implements `lunaris watch`, a bubbletea view that animates the
// Moon's phase. Each tick advances an animation.Smoother, recomputes the phase
// at its visual instant and redraws the disk with the render package.
package tui
