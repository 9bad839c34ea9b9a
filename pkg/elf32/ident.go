package elf32

// Identification region layout. The first IdentSize bytes of every ELF
// file identify the format, class and encoding before any multi-byte
// field may be interpreted.
const (
	IdentSize = 16

	idxClass      = 4
	idxData       = 5
	idxVersion    = 6
	idxOSABI      = 7
	idxABIVersion = 8
)

const (
	classELF32     = 1
	dataLittle     = 1
	versionCurrent = 1
)

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// verifyIdent validates the identification region, short-circuiting on
// the first violated precondition. The caller guarantees ident holds at
// least IdentSize bytes. On success it returns the OS/ABI and ABI
// version bytes verbatim; those are not validated here, name lookup is a
// display-time concern.
func verifyIdent(ident []byte) (OSABI, uint8, error) {
	if magic := ident[:4]; string(magic) != string(elfMagic[:]) {
		return 0, 0, &BadMagicError{Magic: [4]byte(magic)}
	}
	if ident[idxClass] != classELF32 {
		return 0, 0, &UnsupportedClassError{Class: ident[idxClass]}
	}
	if ident[idxData] != dataLittle {
		return 0, 0, &UnsupportedEndiannessError{Encoding: ident[idxData]}
	}
	if ident[idxVersion] != versionCurrent {
		return 0, 0, &UnsupportedVersionError{Found: ident[idxVersion], Expected: versionCurrent}
	}
	return OSABI(ident[idxOSABI]), ident[idxABIVersion], nil
}
