// Package syntax holds the lossless availability parse tree.
//
// Nodes live in append-only arenas owned by a Builder and are addressed by
// 1-based integer handles, never by pointers. A node is created exactly once
// during a parse and never mutated afterwards; edits elsewhere in the system
// are rebuilds, not in-place changes.
//
// Error reporting is data: a required token that was absent from the input
// is synthesized with Missing=true and zero-length text, and input tokens
// that fit no grammar position are captured verbatim in Unexpected nodes or
// raw token-list arguments. Concatenating the source text of every token
// reachable from a tree reproduces the consumed input byte for byte.
package syntax
