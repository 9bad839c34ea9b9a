// Package render formats decoded ELF32 records the way conventional
// inspection tools print them. It is purely presentational: everything
// here operates on already-validated data and produces strings.
package render

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/vietanhduong/readelf32/pkg/elf32"
)

// Column widths follow GNU readelf: each hex value counts the "0x"
// prefix toward its width and is zero-padded, uppercase.
const progHeaderColumns = "Offset   VirtAddr   PhysAddr   FileSiz MemSiz  Flg Align"

// The type column is padded to the widest type name plus this margin,
// same as GNU readelf.
const typeColumnMargin = 6

type row struct {
	label string
	value string
}

// FileHeader renders h as a label/value table, label column padded to
// the longest known label.
func FileHeader(h elf32.FileHeader) string {
	rows := []row{
		{"Magic", identBytes(h)},
		{"Class", "ELF32"},
		{"Data", "2's complement, little endian"},
		{"Version", "1 (current)"},
		{"OS/ABI", h.OSABI.String()},
		{"ABI Version", fmt.Sprintf("%d", h.ABIVersion)},
		{"Type", h.Type.HumanName()},
		{"Machine", h.Machine.String()},
		{"Version", "0x1"},
		{"Entry point address", fmt.Sprintf("%d", h.Entry)},
		{"Start of program headers", fmt.Sprintf("%d", h.ProgHdrOff)},
		{"Start of section headers", fmt.Sprintf("%d", h.SecHdrOff)},
		{"Flags", "0x0"},
		{"Size of this header", fmt.Sprintf("%d (bytes)", h.HeaderSize)},
		{"Size of program headers", fmt.Sprintf("%d (bytes)", h.ProgHdrEntSize)},
		{"Number of program headers", fmt.Sprintf("%d", h.ProgHdrCount)},
		{"Size of section headers", fmt.Sprintf("%d (bytes)", h.SecHdrEntSize)},
		{"Number of section headers", fmt.Sprintf("%d", h.SecHdrCount)},
		{"Section header string table index", fmt.Sprintf("%d", h.SecHdrStrIdx)},
	}

	// Value column starts two characters past the longest label's colon.
	width := lo.Max(lo.Map(rows, func(r row, _ int) int { return len(r.label) })) + 2

	var b strings.Builder
	b.WriteString("ELF Header:\n")
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(r.label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(r.label)))
		b.WriteString(r.value)
		b.WriteString("\n")
	}
	return b.String()
}

// identBytes reconstructs the 16 identification bytes from the validated
// profile constants plus the two bytes the header retains. Only OS/ABI
// and ABI version vary between files this decoder accepts.
func identBytes(h elf32.FileHeader) string {
	ident := [elf32.IdentSize]byte{0x7f, 'E', 'L', 'F', 1, 1, 1, byte(h.OSABI), h.ABIVersion}
	parts := lo.Map(ident[:], func(b byte, _ int) string { return fmt.Sprintf("%02x", b) })
	return strings.Join(parts, " ")
}

// ProgramHeaders renders the program header table of f. With prelude set
// it is preceded by the file type, entry point and table location
// summary.
func ProgramHeaders(f *elf32.File, prelude bool) string {
	var b strings.Builder
	if prelude {
		fmt.Fprintf(&b, "Elf file type is %s, (%s)\n", f.Header.Type.Name(), f.Header.Type.HumanName())
		fmt.Fprintf(&b, "Entry point 0x%X\n", f.Header.Entry)
		fmt.Fprintf(&b, "There are %d program headers, starting at offset %d\n\n",
			f.Header.ProgHdrCount, f.Header.ProgHdrOff)
	}

	rows := []row{{"Type", progHeaderColumns}}
	for _, ph := range f.Progs {
		rows = append(rows, row{ph.Type.Name(), progHeaderRow(ph)})
	}
	width := lo.Max(lo.Map(rows, func(r row, _ int) int { return len(r.label) })) + typeColumnMargin

	b.WriteString("Program Headers:\n")
	for _, r := range rows {
		b.WriteString(r.label)
		b.WriteString(strings.Repeat(" ", width-len(r.label)))
		b.WriteString(r.value)
		b.WriteString("\n")
	}
	return b.String()
}

func progHeaderRow(ph elf32.ProgramHeader) string {
	return fmt.Sprintf("0x%06X 0x%08X 0x%08X 0x%05X 0x%05X 0x%X 0x%04X",
		ph.Off, ph.Vaddr, ph.Paddr, ph.FileSize, ph.MemSize, ph.Flags, ph.Align)
}
