// Package viz draws the editor in a terminal.
//
// [Renderer] turns an orchestrator frame into a screen: a header with the
// current mode and key hints, the cell canvas, the pattern panel with an
// overview map and population trend, and a status footer. The help overlay
// is drawn over the canvas.
//
// [Run] hosts the orchestrator in a Bubble Tea program. Keys and mouse
// presses become orchestrator events; the poll interval drives generations.
//
// # Themes
//
// Five built-in themes are available by name, see [ThemeNames].
package viz
