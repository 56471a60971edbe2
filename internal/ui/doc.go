// Package ui holds the color themes shared by the CLI printers and the watch
// view, and honors NO_COLOR.
package ui
