// Package funcdoc parses documentation blocks into [FunctionDoc] records.
//
// A block is the list of comment lines produced by package
// [go.jacobcolvin.com/doctools/slashdoc/docblock]. Its grammar is informal:
//
//	name: first description line
//	more description lines
//	@param <name> <type> [= <default>] [description]
//	@return <type> [description]
//
// A type is either a bare token (int) or a bracketed union ([int | array]).
// Defaults are captured verbatim and never interpreted.
//
// # Degenerate Input
//
// Parsing is permissive and total. A header without a colon yields an empty
// name and the whole line as description. A tag with missing parts yields
// empty fields. Only the first @return line is used; later ones are ignored.
// Lines that are not tags are ignored once the first tag has been seen.
package funcdoc
