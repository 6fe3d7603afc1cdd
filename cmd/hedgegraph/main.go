// Command hedgegraph builds a half-edge graph from a mesh file (or a named
// Platonic solid), checks its invariants and writes a cytoscape JSON export.
//
//	hedgegraph [flags] [mesh-file]
//
//	-config run.toml   TOML config; flags given on the command line win
//	-solid cube        build a Platonic solid instead of reading a mesh
//	-format elements   "dump" (default) or "elements"
//	-o out.json        output file (default stdout)
//	-compact           skip indentation
//	-check=false       skip the invariant pass
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	fset := flag.NewFlagSet("hedgegraph", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	var (
		configPath = fset.String("config", "", "TOML config file")
		solid      = fset.String("solid", "", "build a Platonic solid (tetrahedron, cube, octahedron, dodecahedron, icosahedron)")
		format     = fset.String("format", FormatDump, "output format: dump or elements")
		outPath    = fset.String("o", "", "output file (default stdout)")
		compact    = fset.Bool("compact", false, "compact JSON")
		check      = fset.Bool("check", true, "run the invariant checker")
	)
	if err := fset.Parse(args); err != nil {
		return 2
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			klog.Errorf("%v", err)
			return 2
		}
	}

	// explicitly set flags override the file
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "solid":
			cfg.Input.Solid = *solid
		case "format":
			cfg.Output.Format = *format
		case "o":
			cfg.Output.Path = *outPath
		case "compact":
			cfg.Output.Compact = *compact
		case "check":
			cfg.Check.Enabled = *check
		}
	})
	if fset.NArg() > 0 {
		cfg.Input.Path = fset.Arg(0)
	}

	if _, err := run(cfg, os.Stdout); err != nil {
		klog.Errorf("%v", err)
		return 1
	}

	return 0
}
