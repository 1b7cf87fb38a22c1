// Package padder grows binary firmware images to a fixed size.
//
// # Overview
//
// The UART bootloader writes an uploaded program into local memory starting
// at a fixed load offset and expects to receive exactly as many bytes as fit
// between that offset and the end of memory. A freshly linked binary is
// usually shorter, so it has to be padded with trailing fill bytes first.
//
// For a 4096-byte memory with the bootloader loading at 0x300 (768), the
// payload must be padded to 3328 bytes:
//
//	size, _ := padder.FitSize(4096, 0x300) // 3328
//	res, err := padder.PadFile("gcd.bin", size)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("appended %d bytes, blake3 %s\n", res.Padded, res.Digest)
//
// # Guarantees
//
//   - The first len(original) bytes of the image are never modified.
//   - The file is read completely before anything is written, and the
//     padded image replaces it through a temp file and rename. A failed run
//     leaves the original untouched.
//   - Padding a file that already has the target size writes nothing, so
//     repeated runs are no-ops.
//   - A target smaller than the current file is rejected with
//     *TargetTooSmallError; images are never truncated.
//   - A symlinked image is padded through the link: the link stays in
//     place and its target is replaced. Permission, setuid, setgid and
//     sticky bits carry over to the new file.
//
// # Sizes
//
// ParseSize accepts the forms used on the command line: decimal ("3328"),
// prefixed integers ("0xD00", "0o6400", "0b110100000000") and human sizes
// ("3.25 KiB", "4KiB"). Targets above MaxSize (4 GiB) are rejected with
// *SizeError before the image is read.
package padder
