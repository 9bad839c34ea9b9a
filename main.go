package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/vietanhduong/readelf32/pkg/elf32"
	"github.com/vietanhduong/readelf32/pkg/objfile"
	"github.com/vietanhduong/readelf32/pkg/render"
)

func main() {
	var path string
	var showHeader, showSegments bool
	flag.StringVar(&path, "file", "", "Path to an ELF32 object file")
	flag.BoolVar(&showHeader, "file-header", false, "Display the ELF file header")
	flag.BoolVar(&showSegments, "segments", false, "Display the program headers")
	flag.Parse()

	if path == "" {
		glog.Errorf("No input file is specified")
		os.Exit(1)
	}
	// With no selection flags, behave like readelf -h -l.
	if !showHeader && !showSegments {
		showHeader, showSegments = true, true
	}

	f, err := objfile.Open(path)
	if err != nil {
		glog.Errorf("Failed to open %s: %v", path, err)
		os.Exit(1)
	}
	defer f.Close()

	parsed, err := elf32.Parse(f.Bytes())
	if err != nil {
		glog.Errorf("Failed to parse %s: %v", path, err)
		os.Exit(1)
	}

	if showHeader {
		fmt.Print(render.FileHeader(parsed.Header))
	}
	if showSegments {
		if showHeader {
			fmt.Println()
		}
		fmt.Print(render.ProgramHeaders(parsed, !showHeader))
	}
}
