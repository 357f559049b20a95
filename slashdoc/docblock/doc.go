// Package docblock finds documentation comment blocks in source text.
//
// A documentation comment line starts with [Marker] ("///"), optionally
// indented, followed by a space or the end of the line:
//
//	/// greet: Say hello
//	/// @param name string = "world" who to greet
//	/// @return string the greeting
//
// A maximal run of such lines is a [Block]. [Extract] walks the lines of a
// file and yields each block lazily, with the marker and one following space
// stripped from every line. Any other line ends the current block and is
// otherwise ignored, so extraction never fails.
//
// Blocks are parsed into function records by package
// [go.jacobcolvin.com/doctools/slashdoc/funcdoc].
package docblock
