package elf32

// FileType is the e_type code of an object file. The enumeration is
// closed: codes outside it fail the decode.
type FileType uint16

const (
	ET_NONE FileType = 0 // no file type
	ET_REL  FileType = 1 // relocatable file
	ET_EXEC FileType = 2 // executable file
	ET_DYN  FileType = 3 // shared object file
	ET_CORE FileType = 4 // core file
)

// FileHeader is the decoded ELF32 file header. It is populated once per
// parse call and never mutated afterwards.
type FileHeader struct {
	OSABI      OSABI
	ABIVersion uint8

	Type    FileType
	Machine Machine
	Entry   uint32

	ProgHdrOff     uint32
	SecHdrOff      uint32
	HeaderSize     uint16
	ProgHdrEntSize uint16
	ProgHdrCount   uint16
	SecHdrEntSize  uint16
	SecHdrCount    uint16
	SecHdrStrIdx   uint16
}

// fileHeaderSize is the byte length of the post-identification header
// region consumed by parseFileHeader.
const fileHeaderSize = 36

// parseFileHeader decodes the 36 bytes immediately following the
// identification region. The OS/ABI and ABI version bytes were already
// extracted by verifyIdent and are projected into the result.
func parseFileHeader(c *cursor, osabi OSABI, abiVersion uint8) (FileHeader, error) {
	hdr := FileHeader{OSABI: osabi, ABIVersion: abiVersion}

	ftype, err := c.u16()
	if err != nil {
		return hdr, err
	}
	if ftype > uint16(ET_CORE) {
		return hdr, &UnsupportedFileTypeError{Type: ftype}
	}
	hdr.Type = FileType(ftype)

	machine, err := c.u16()
	if err != nil {
		return hdr, err
	}
	// Any machine code is accepted; name resolution is deferred to the
	// renderer, which may report it as unrecognized.
	hdr.Machine = Machine(machine)

	// e_version, validated as part of the identification region.
	if err := c.skip(4); err != nil {
		return hdr, err
	}

	if hdr.Entry, err = c.u32(); err != nil {
		return hdr, err
	}
	if hdr.ProgHdrOff, err = c.u32(); err != nil {
		return hdr, err
	}
	if hdr.SecHdrOff, err = c.u32(); err != nil {
		return hdr, err
	}

	// e_flags, always zero for this profile.
	if err := c.skip(4); err != nil {
		return hdr, err
	}

	if hdr.HeaderSize, err = c.u16(); err != nil {
		return hdr, err
	}
	if hdr.ProgHdrEntSize, err = c.u16(); err != nil {
		return hdr, err
	}
	if hdr.ProgHdrCount, err = c.u16(); err != nil {
		return hdr, err
	}
	if hdr.SecHdrEntSize, err = c.u16(); err != nil {
		return hdr, err
	}
	if hdr.SecHdrCount, err = c.u16(); err != nil {
		return hdr, err
	}
	if hdr.SecHdrStrIdx, err = c.u16(); err != nil {
		return hdr, err
	}
	return hdr, nil
}
