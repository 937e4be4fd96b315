// Package render draws terrain grids and planned routes as text.
//
// Map prints one line per grid row. Start, goal and no-fly cells keep their
// S, G and # markers, route cells become "*" and the rest show their entry
// cost. WithStyle colours the same layout with lipgloss: orange start, green
// goal, dark walls, blue route and a low-to-high ramp for costs. Styling
// never changes the visible characters, so stripped output equals the plain
// map.
//
// Summary formats an astar.Result as the CLI prints it.
package render
