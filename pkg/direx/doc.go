// Package direx implements an embeddable file-explorer widget for tview
// applications. An Explorer owns the navigation state (current directory,
// listing, selection, scroll window), translates abstract commands into
// navigation, and renders itself through a tview primitive obtained from
// Explorer.Widget().
//
// Input events are backend specific and are translated into Commands by the
// adapters under pkg/inputs, so the navigation core never depends on any one
// terminal input library.
package direx
