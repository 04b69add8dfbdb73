// Package puzzle defines the wire-level data model for LogicPad puzzles:
// the two-color Tile grid, the Rule family, Connections, and the decoded
// Solution grid. Types here carry no solving logic — they are the
// request/response contract described in spec section 6, decoded once at
// the edge of the module and then handed to rules.Compile.
//
// Rule is modeled as a Go interface rather than a tagged struct: each rule
// kind is its own concrete type (ConnectAllRule, MinesweeperRule, ...)
// implementing Rule, dispatched from the wire "type" field by decodeRule,
// called from Puzzle.UnmarshalJSON. This mirrors the original
// `#[serde(tag = "type")]` Rust enum without reaching for a
// reflection-heavy schema library — see DESIGN.md for why encoding/json
// plus a small discriminator switch was kept over a third-party schema
// validator.
package puzzle
