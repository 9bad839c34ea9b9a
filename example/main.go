// Library usage example: load an object file, parse its header region
// and print a loadable-segment summary plus the readelf-style table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/samber/lo"
	"github.com/vietanhduong/readelf32/pkg/elf32"
	"github.com/vietanhduong/readelf32/pkg/objfile"
	"github.com/vietanhduong/readelf32/pkg/render"
)

func main() {
	var path string
	flag.StringVar(&path, "file", "", "Path to an ELF32 object file")
	flag.Parse()

	if path == "" {
		glog.Errorf("No input file is specified")
		os.Exit(1)
	}

	obj, err := objfile.Open(path)
	if err != nil {
		glog.Errorf("Failed to open %s: %v", path, err)
		os.Exit(1)
	}
	defer obj.Close()

	f, err := elf32.Parse(obj.Bytes())
	if err != nil {
		glog.Errorf("Failed to parse %s: %v", path, err)
		os.Exit(1)
	}

	loadable := lo.CountBy(f.Progs, func(ph elf32.ProgramHeader) bool {
		return ph.Type == elf32.PT_LOAD
	})
	glog.Infof("%s: %s for %s, %d segments (%d loadable)",
		path, f.Header.Type.HumanName(), f.Header.Machine, len(f.Progs), loadable)

	fmt.Print(render.ProgramHeaders(f, true))
}
