// Package rtab contains the core components of rtab, a library which brings
// R-style conveniences to Apache Arrow tabular data. This root package defines
// the Selector types used to describe dual-axis (row, column) selections, and
// is an excellent overview of rtab's key concepts.
package rtab
