// Package slashdoc generates API documentation from "///" comment blocks in
// the source files of function libraries.
//
// Library authors annotate each function with a block like:
//
//	/// _num_to_fr_units: Map a number into a tuple of 1fr units
//	/// primarily used to make optional column passing easier
//	/// @param num int number to map
//	/// @return array Array of num fr units
//	#let _num_to_fr_units(num) = range(num).map(_ => 1fr)
//
// and slashdoc renders it as Markdown:
//
//	## _num_to_fr_units
//	Map a number into a tuple of 1fr units
//	primarily used to make optional column passing easier
//	### Parameters:
//	num: `int`  number to map
//	### Returns:
//	`array` Array of num fr units
//
// The code following a block is never inspected; the name declared in the
// header is trusted.
//
// # Pipeline
//
// Three packages do the work, each usable on its own:
//
//  1. [go.jacobcolvin.com/doctools/slashdoc/docblock] finds blocks.
//  2. [go.jacobcolvin.com/doctools/slashdoc/funcdoc] parses a block into a
//     record.
//  3. [go.jacobcolvin.com/doctools/slashdoc/markdown] renders a record.
//
// None of them can fail. A malformed block yields a record with empty fields
// and never stops the rest of a file from being documented.
//
// [Generator] drives the pipeline over several inputs, optionally in
// parallel, and renders the result in one of the supported formats:
// [FormatMarkdown], [FormatHTML] (via goldmark), [FormatJSON], [FormatYAML],
// or [FormatSchema], a JSON Schema of each function's parameters.
//
// # Usage
//
//	gen := slashdoc.NewGenerator(
//	    slashdoc.WithFormat(slashdoc.FormatMarkdown),
//	    slashdoc.WithTitle("Utilities"),
//	)
//
//	out, err := gen.Generate(ctx, src1, src2)
//
// [Config] exposes the same options as CLI flags.
package slashdoc
