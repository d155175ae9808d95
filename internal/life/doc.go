// Package life provides the cellular automaton engine behind the editor.
//
// The package defines the value types shared by every other layer:
//
//   - [Health]: two-state value of a single cell
//   - [Size]: width and height of a grid or a viewport
//   - [Coordinates]: a cell position, view-space or grid-space by context
//   - [Grid]: fixed-size cell store with Conway's generation rule
//
// # Edges
//
// The grid has hard edges. Neighbours that would fall outside the grid count
// as dead; nothing wraps around.
//
// # Example
//
//	g := life.NewGrid(life.Size{Width: 5, Height: 5})
//	g.Shape(life.Coordinates{X: 1, Y: 2}, [][]life.Health{{life.Alive, life.Alive, life.Alive}})
//	g.Generate()
//
// # Thread Safety
//
// Grid is NOT thread-safe. The editor mutates it only from its event loop.
package life
