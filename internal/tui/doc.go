// Package tui renders a slideshow render target in the terminal.
//
// Target implements reel.Target by forwarding every opacity and content
// change to a Bubble Tea program as a message. Model draws the current
// slide centred on screen, mapping opacity onto a grey ramp so fades are
// visible in a terminal.
//
// Slide content is shown as-is; markup is not interpreted.
//
// # Key Bindings
//
//   - q or Ctrl+C: Quit
package tui
