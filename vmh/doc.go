// Package vmh splits word-oriented .vmh memory-initialization files into one
// file per byte lane.
//
// # VMH File Format
//
// A .vmh file is the text format read by Verilog $readmemh. Each line is
// either an address marker or a list of words:
//
//	@0000
//	DEADBEEF 00C0FFEE
//	@0100
//	13000000
//
// Address markers start with '@' and are opaque. Lines starting with "//"
// are comments and are treated the same way. Every other line holds words
// separated by spaces; a word is BytesPerWord bytes written as two hex
// characters each, most significant byte first. A "//" after the words of a
// data line starts a trailing comment, which is dropped from the lanes.
//
// # Byte Lanes
//
// Byte-enabled block RAMs are usually built from one narrow RAM per byte of
// the memory word, and each RAM needs its own initialization file. Lane i
// receives byte i of every word, where lane 0 is the least significant byte:
//
//	DEADBEEF -> lane 3: DE, lane 2: AD, lane 1: BE, lane 0: EF
//
// Markers and comments are copied unchanged into every lane, so each lane
// file has exactly as many lines as the input.
//
// # Usage
//
// Split a file into the current directory:
//
//	paths, err := vmh.SplitFile("gcd.vmh", ".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// paths: 0gcd.vmh 1gcd.vmh 2gcd.vmh 3gcd.vmh
//
// Or run the steps separately:
//
//	f, err := vmh.ParseReader(strings.NewReader(content))
//	lanes, err := vmh.Split(f, vmh.WithBytesPerWord(2))
//	paths, err := lanes.Write(outDir, "gcd.vmh")
//
// # Error Handling
//
// By default every word must be exactly 2*BytesPerWord hex digits; anything
// else fails with *MalformedWordError naming the line and word, and no output
// file is written. WithLenient(true) instead emits whatever characters are
// present for each lane and logs a warning per malformed word.
package vmh
