// Package parser implements the fault-tolerant recursive-descent parser for
// availability specifications.
//
// Two grammars share one argument vocabulary:
//
//	condition-style   iOS 9.0, macOS 10.12, *
//	attribute-style   iOS, introduced: 9.0, message: "use Y"
//
// Both entry points are total: they never fail, never loop forever, and
// preserve every consumed input byte in the produced tree. A required token
// that is absent becomes a Missing placeholder; input that fits no grammar
// position is captured verbatim into raw token-list arguments. Termination
// of every recovery loop is enforced by loopProgress, not by the shape of
// the input.
//
// The parser emits no diagnostics. The tree is the error medium; callers
// run syntax.Report over it afterwards.
package parser
