// Package diag carries diagnostics between phases.
//
// The availability parser itself never reports here: it leaves missing and
// unexpected markers in the tree, and syntax.Report walks those markers into
// a Reporter after the parse. The lexer and the CLI report directly.
// BagReporter aggregates into a Bag for sorting and rendering.
package diag
