// Package elf32 decodes the file header and program header table of
// 32-bit little-endian ELF objects from an in-memory byte buffer.
//
// The decoder is strict: the identification region is verified before
// any multi-byte field is read, file type and program header type codes
// outside their known enumerations are rejected, and any read past the
// end of the buffer fails the whole parse. Section headers, symbol
// tables and relocations are out of scope.
//
//	raw, _ := os.ReadFile("a.out")
//	f, err := elf32.Parse(raw)
//	if err != nil { ... }
//	for _, ph := range f.Progs { ... }
package elf32

// File is the decoded header region of an ELF32 object: the file header
// and the program header table in file order.
type File struct {
	Header FileHeader
	Progs  []ProgramHeader
}

// Parse decodes buf. It performs no I/O and never mutates buf; each call
// is independent, so distinct buffers may be parsed concurrently. On any
// failure the error identifies the exact violated precondition and no
// partial result is returned.
func Parse(buf []byte) (*File, error) {
	c := newCursor(buf, 0)
	ident, err := c.bytes(IdentSize)
	if err != nil {
		return nil, err
	}
	osabi, abiVersion, err := verifyIdent(ident)
	if err != nil {
		return nil, err
	}

	hdr, err := parseFileHeader(c, osabi, abiVersion)
	if err != nil {
		return nil, err
	}

	progs, err := parseProgHeaders(buf, hdr)
	if err != nil {
		return nil, err
	}
	return &File{Header: hdr, Progs: progs}, nil
}
