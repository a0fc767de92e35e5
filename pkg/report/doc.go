// Package report renders ranked committer tables.
//
// A [Block] is one repository's ranked committers. A [Renderer] writes a
// block in one output format and [Printer] strings blocks together,
// skipping empty ones and separating the rest.
//
// # Formats
//
//   - text: the plain, column-aligned layout (default)
//   - table: the same rows drawn with lipgloss/table
//   - json: one JSON object per line
//
// Text output for a block looks like:
//
//	https://github.com/gruns/icecream
//	Ansgar Grunseid  grunseid@gmail.com  212 commits, latest on Jan 05, 2023
//	Someone Else     else@example.com      3 commits, latest on Mar 14, 2021
package report
