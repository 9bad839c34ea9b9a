package elf32

import "fmt"

// OSABI is the raw EI_OSABI byte. Any value survives the decode; the
// lookup methods report whether a name is known so the caller can decide
// how to present unrecognized codes.
type OSABI uint8

// Machine is the raw e_machine code. As with OSABI, recognition is a
// display-time concern and never fails the parse.
type Machine uint16

type osabiName struct {
	name  string
	human string
}

var osabiNames = map[OSABI]osabiName{
	0x00: {"SystemV", "UNIX - System V"},
	0x01: {"HPUX", "HP-UX"},
	0x02: {"NetBSD", "NetBSD"},
	0x03: {"Linux", "Linux"},
	0x04: {"GNUHurd", "GNU Hurd"},
	0x06: {"Solaris", "Solaris"},
	0x07: {"AIX", "AIX"},
	0x08: {"IRIX", "IRIX"},
	0x09: {"FreeBSD", "FreeBSD"},
	0x0A: {"Tru64", "Tru64 UNIX"},
	0x0B: {"NovellModesto", "Novell Modesto"},
	0x0C: {"OpenBSD", "OpenBSD"},
	0x0D: {"OpenVMS", "OpenVMS"},
	0x0E: {"NonStopKernel", "NonStop Kernel"},
	0x0F: {"AROS", "AROS"},
	0x10: {"FenixOS", "Fenix OS"},
	0x11: {"CloudABI", "Nuxi CloudABI"},
	0x12: {"OpenVOS", "Stratus OpenVOS"},
}

// Name returns the short identifier for the code, or false if the code
// is unrecognized.
func (a OSABI) Name() (string, bool) {
	n, ok := osabiNames[a]
	return n.name, ok
}

// HumanName returns the display name for the code, or false if the code
// is unrecognized.
func (a OSABI) HumanName() (string, bool) {
	n, ok := osabiNames[a]
	return n.human, ok
}

func (a OSABI) String() string {
	if n, ok := a.HumanName(); ok {
		return n
	}
	return fmt.Sprintf("unrecognized (0x%02x)", uint8(a))
}

type machineName struct {
	name  string
	human string
}

var machineNames = map[Machine]machineName{
	0x00: {"None", "No machine"},
	0x03: {"X86", "Intel 80386"},
	0x14: {"PowerPC", "PowerPC"},
	0x15: {"PowerPC64", "PowerPC 64-bit"},
	0x28: {"ARM", "ARM"},
	0x3E: {"AMD64", "Advanced Micro Devices X86-64"},
	0xB7: {"ARM64", "AArch64"},
	0xF3: {"RISCV", "RISC-V"},
}

// Name returns the short identifier for the code, or false if the code
// is unrecognized.
func (m Machine) Name() (string, bool) {
	n, ok := machineNames[m]
	return n.name, ok
}

// HumanName returns the display name for the code, or false if the code
// is unrecognized.
func (m Machine) HumanName() (string, bool) {
	n, ok := machineNames[m]
	return n.human, ok
}

func (m Machine) String() string {
	if n, ok := m.HumanName(); ok {
		return n
	}
	return fmt.Sprintf("unrecognized (0x%x)", uint16(m))
}

// Name returns the short identifier of the file type. FileType is a
// closed enumeration, so lookup cannot miss on a decoded value.
func (t FileType) Name() string {
	switch t {
	case ET_NONE:
		return "None"
	case ET_REL:
		return "Rel"
	case ET_EXEC:
		return "Exec"
	case ET_DYN:
		return "Dyn"
	case ET_CORE:
		return "Core"
	}
	return fmt.Sprintf("FileType(%d)", uint16(t))
}

// HumanName returns the display name of the file type.
func (t FileType) HumanName() string {
	switch t {
	case ET_NONE:
		return "No file type"
	case ET_REL:
		return "Relocatable file"
	case ET_EXEC:
		return "Executable file"
	case ET_DYN:
		return "Shared object file"
	case ET_CORE:
		return "Core file"
	}
	return fmt.Sprintf("FileType(%d)", uint16(t))
}

func (t FileType) String() string { return t.HumanName() }

// Name returns the identifier of the program header type. ProgType is a
// closed enumeration, so lookup cannot miss on a decoded value.
func (t ProgType) Name() string {
	switch t {
	case PT_NULL:
		return "Null"
	case PT_LOAD:
		return "Load"
	case PT_DYNAMIC:
		return "Dynamic"
	case PT_INTERP:
		return "Interpreter"
	case PT_NOTE:
		return "Note"
	case PT_PHDR:
		return "ProgramHeaderTable"
	case PT_GNU_STACK:
		return "GnuStack"
	}
	return fmt.Sprintf("ProgType(%#x)", uint32(t))
}

func (t ProgType) String() string { return t.Name() }
