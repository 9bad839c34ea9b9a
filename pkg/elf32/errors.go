package elf32

import "fmt"

// BadMagicError reports a buffer whose first four bytes are not the ELF
// magic sequence.
type BadMagicError struct {
	Magic [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("invalid magic bytes: % X", e.Magic)
}

// UnsupportedClassError reports an EI_CLASS byte other than ELFCLASS32.
// 64-bit and unknown classes are both rejected.
type UnsupportedClassError struct {
	Class uint8
}

func (e *UnsupportedClassError) Error() string {
	return fmt.Sprintf("unsupported ELF class: %d", e.Class)
}

// UnsupportedEndiannessError reports an EI_DATA byte other than
// ELFDATA2LSB.
type UnsupportedEndiannessError struct {
	Encoding uint8
}

func (e *UnsupportedEndiannessError) Error() string {
	return fmt.Sprintf("unsupported ELF endianness: %d", e.Encoding)
}

// UnsupportedVersionError reports an EI_VERSION byte other than the
// single defined current version.
type UnsupportedVersionError struct {
	Found    uint8
	Expected uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported ELF version: found %d, expected %d", e.Found, e.Expected)
}

// UnsupportedFileTypeError reports an e_type code outside the closed
// None/Rel/Exec/Dyn/Core enumeration.
type UnsupportedFileTypeError struct {
	Type uint16
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported ELF file type: %d", e.Type)
}

// UnsupportedProgTypeError reports a program header p_type code outside
// the set this decoder understands.
type UnsupportedProgTypeError struct {
	Type uint32
}

func (e *UnsupportedProgTypeError) Error() string {
	return fmt.Sprintf("unsupported program header type: %#x", e.Type)
}

// BadEntSizeError reports a program header table whose declared entry
// size does not match the fixed ELF32 record size.
type BadEntSizeError struct {
	Found    uint16
	Expected uint16
}

func (e *BadEntSizeError) Error() string {
	return fmt.Sprintf("invalid program header entry size: expected %#x, found %#x", e.Expected, e.Found)
}

// SliceReadError reports a read that would have extended past the end of
// the input buffer. Start and End are the requested byte range.
type SliceReadError struct {
	Start int
	End   int
}

func (e *SliceReadError) Error() string {
	return fmt.Sprintf("could not read bytes in range [%#x, %#x)", e.Start, e.End)
}
