// Command arkc compiles ArkScript source into a bytecode artifact.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tliron/commonlog/simple"

	"github.com/Kannupriyasingh/Ark/compiler"
	"github.com/Kannupriyasingh/Ark/config"
)

const version = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: arkc [flags] <file.ark>\n\n")
	fmt.Fprintf(os.Stderr, "flags:\n")
	flag.PrintDefaults()
}

func main() {
	var (
		output      = flag.String("o", "", "output path (default: ark.toml's build.output, out.arkc if ark.toml omits it; <input>.arkc without ark.toml)")
		debug       = flag.Uint("debug", 0, "debug verbosity (0 = silent, >=1 logs artifact size and writes a .ark.meta report)")
		showVersion = flag.Bool("version", false, "print the compiler version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("arkc", version)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		usage()
		os.Exit(1)
	}
	input := args[0]

	debugLevel := *debug
	outPath := *output
	var pluginDirs []string
	var featureFlags compiler.FeatureFlags
	if m, err := config.Load(filepath.Dir(input)); err == nil {
		if outPath == "" && m.Build.Output != "" {
			outPath = m.Build.Output
		}
		if debugLevel == 0 {
			debugLevel = m.Build.Debug
		}
		pluginDirs = m.Build.PluginDirs
		featureFlags = compiler.FeatureFlags(m.Build.FeatureFlags)
	}
	if outPath == "" {
		outPath = swapExt(input, ".arkc")
	}

	source, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arkc: %v\n", err)
		os.Exit(1)
	}

	c := compiler.NewCompiler(debugLevel, pluginDirs, featureFlags)
	if err := c.Feed(string(source), input); err != nil {
		fmt.Fprintf(os.Stderr, "arkc: %v\n", err)
		os.Exit(1)
	}
	if err := c.Compile(); err != nil {
		fmt.Fprintf(os.Stderr, "arkc: %v\n", err)
		os.Exit(1)
	}
	if err := c.SaveTo(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "arkc: %v\n", err)
		os.Exit(1)
	}
}

func swapExt(path, ext string) string {
	base := filepath.Base(path)
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			base = base[:i]
			break
		}
	}
	return base + ext
}
