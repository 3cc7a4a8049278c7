// Package inview tracks whether an element is visible inside a scrolling viewport.
//
// Users import this single package for the complete public API: geometry
// types, the Tracker lifecycle, host collaborators (Element, Window) and
// clocks for debouncing.
//
// A Tracker reads the element box and viewport metrics, keeps one boolean
// "in viewport" state, and notifies subscribers only when that boolean flips.
// Scroll and resize signals are debounced so bursts collapse into a single
// evaluation using the metrics of the last signal.
package inview
