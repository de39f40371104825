package compiler

import (
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// canonicalCBOR encodes in CBOR's canonical (deterministic) mode, so
// two reports built from identical inputs serialize to identical
// bytes.
var canonicalCBOR cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	canonicalCBOR = mode
}

// compileReport is the additive debug sidecar written beside the
// artifact when debug verbosity is at least 1. It is never read back
// by the compiler and never participates in the artifact's integrity
// hash.
type compileReport struct {
	BuildID      string   `cbor:"build_id"`
	PageCount    int      `cbor:"page_count"`
	PageSizes    []int    `cbor:"page_sizes"`
	SymbolCount  int      `cbor:"symbol_count"`
	ValueCount   int      `cbor:"value_count"`
	Plugins      []string `cbor:"plugins"`
	ArtifactSize int      `cbor:"artifact_size"`
}

// writeReportSidecar writes `<path>.ark.meta` next to the artifact at
// path.
func (c *Compiler) writeReportSidecar(path string) error {
	report := compileReport{
		BuildID:      uuid.NewString(),
		PageCount:    c.pages.Len(),
		SymbolCount:  c.symbols.Len(),
		ValueCount:   c.values.Len(),
		Plugins:      append([]string(nil), c.plugins...),
		ArtifactSize: len(c.artifact),
	}
	for _, p := range c.pages.Pages() {
		report.PageSizes = append(report.PageSizes, len(p.Bytes))
	}

	data, err := canonicalCBOR.Marshal(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path+".ark.meta", data, 0o644)
}
