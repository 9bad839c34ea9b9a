package elf32

// ProgType is the p_type code of a program header. Only the codes below
// are accepted; anything else aborts the table decode.
type ProgType uint32

const (
	PT_NULL      ProgType = 0
	PT_LOAD      ProgType = 1
	PT_DYNAMIC   ProgType = 2
	PT_INTERP    ProgType = 3
	PT_NOTE      ProgType = 4
	PT_PHDR      ProgType = 6
	PT_GNU_STACK ProgType = 0x6474e551
)

// ProgramHeader is one decoded entry of the program header table. Flags
// are kept as a raw bitfield; their interpretation is left to consumers.
type ProgramHeader struct {
	Type     ProgType
	Off      uint32
	Vaddr    uint32
	Paddr    uint32
	FileSize uint32
	MemSize  uint32
	Flags    uint32
	Align    uint32
}

// progHeaderSize is the fixed on-disk size of an ELF32 program header.
const progHeaderSize = 32

// parseProgHeaders decodes the program header table from the offset and
// count declared by the file header. The table need not be contiguous
// with the header, so a fresh cursor is positioned at the declared
// offset. Either the full table decodes or an error is returned; partial
// tables are never produced.
func parseProgHeaders(buf []byte, hdr FileHeader) ([]ProgramHeader, error) {
	if hdr.ProgHdrCount == 0 {
		return nil, nil
	}
	if hdr.ProgHdrEntSize != progHeaderSize {
		return nil, &BadEntSizeError{Found: hdr.ProgHdrEntSize, Expected: progHeaderSize}
	}

	c := newCursor(buf, int(hdr.ProgHdrOff))
	progs := make([]ProgramHeader, 0, hdr.ProgHdrCount)
	for i := 0; i < int(hdr.ProgHdrCount); i++ {
		ph, err := parseProgHeader(c)
		if err != nil {
			return nil, err
		}
		progs = append(progs, ph)
	}
	return progs, nil
}

func parseProgHeader(c *cursor) (ProgramHeader, error) {
	var ph ProgramHeader

	ptype, err := c.u32()
	if err != nil {
		return ph, err
	}
	switch ProgType(ptype) {
	case PT_NULL, PT_LOAD, PT_DYNAMIC, PT_INTERP, PT_NOTE, PT_PHDR, PT_GNU_STACK:
		ph.Type = ProgType(ptype)
	default:
		return ph, &UnsupportedProgTypeError{Type: ptype}
	}

	if ph.Off, err = c.u32(); err != nil {
		return ph, err
	}
	if ph.Vaddr, err = c.u32(); err != nil {
		return ph, err
	}
	if ph.Paddr, err = c.u32(); err != nil {
		return ph, err
	}
	if ph.FileSize, err = c.u32(); err != nil {
		return ph, err
	}
	if ph.MemSize, err = c.u32(); err != nil {
		return ph, err
	}
	if ph.Flags, err = c.u32(); err != nil {
		return ph, err
	}
	if ph.Align, err = c.u32(); err != nil {
		return ph, err
	}
	return ph, nil
}
