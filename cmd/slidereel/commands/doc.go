// Package commands wires the slidereel CLI: play runs the slideshow TUI,
// list prints the resolved slide set and init writes a default config.
package commands
