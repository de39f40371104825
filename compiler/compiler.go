// Package compiler lowers an already-parsed ArkScript AST into the
// page-based bytecode artifact a stack-based virtual machine executes.
// Everything upstream of the AST — lexing, parsing, macro expansion,
// optimization — is someone else's job; this package only reads the
// tree it is fed.
package compiler

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/bytecode"
	"github.com/Kannupriyasingh/Ark/lexer"
	"github.com/Kannupriyasingh/Ark/parser"
)

// FeatureFlags is an opaque bitmask held by the Compiler. This package
// does not interpret it, and the bundled parser takes no options, so it
// is not passed on to any collaborator.
type FeatureFlags uint16

// Compiler turns fed source into a single bytecode artifact. One
// instance processes one input through feed → compile → save; it
// holds no state useful across separate compilations.
type Compiler struct {
	symbols *bytecode.SymbolTable
	values  *bytecode.ValueTable
	pages   *bytecode.CodePageSet
	defined map[string]bool
	plugins []string

	debug   uint
	options FeatureFlags
	version [3]uint16

	forms    []ast.Node
	artifact []byte

	logger commonlog.Logger
}

// NewCompiler creates an empty Compiler. debug controls verbosity (0 =
// silent, >=1 enables the size-on-save log and the CBOR report
// sidecar); options is stored as given and is not read or forwarded
// anywhere in this module.
func NewCompiler(debug uint, plugins []string, options FeatureFlags) *Compiler {
	c := &Compiler{
		symbols: bytecode.NewSymbolTable(),
		values:  bytecode.NewValueTable(),
		pages:   bytecode.NewCodePageSet(),
		defined: make(map[string]bool),
		plugins: append([]string(nil), plugins...),
		debug:   debug,
		options: options,
		version: [3]uint16{3, 4, 0},
		logger:  commonlog.GetLogger("ark.compiler"),
	}
	return c
}

// Feed parses source text attributed to filename and appends the
// resulting top-level forms to the program this Compiler will compile.
// It may be called more than once to compile several source units into
// one artifact.
func (c *Compiler) Feed(source, filename string) error {
	p, err := parser.New(lexer.NewLexer(source, filename))
	if err != nil {
		return err
	}
	forms, err := p.ParseProgram()
	if err != nil {
		return err
	}
	c.forms = append(c.forms, forms...)
	return nil
}

// Compile lowers every fed form into bytecode, runs the undefined-
// symbol checker, and assembles the final artifact. Two Compilers fed
// the same program produce byte-identical output except for the
// embedded timestamp; the hash covers only the bytes after it. Compile
// is meant to run once per Compiler: a second call allocates a further
// top-level page and adds it to the artifact.
func (c *Compiler) Compile() error {
	c.logger.Info("lowering AST to bytecode")

	page0 := c.pages.Page(int(c.pages.NewPage()))
	for _, form := range c.forms {
		if err := c.compile(form, page0); err != nil {
			return err
		}
	}

	c.logger.Info("checking for undefined symbols")
	if err := c.checkUndefinedSymbols(); err != nil {
		return err
	}

	c.logger.Info("assembling artifact")
	artifact, err := c.buildArtifact()
	if err != nil {
		return err
	}
	c.artifact = artifact

	if c.debug >= 1 {
		c.logger.Info(fmt.Sprintf("artifact size: %d bytes", len(c.artifact)))
	}
	return nil
}

// Bytecode returns the produced artifact. It is a borrowed view: the
// caller must not retain it past the Compiler's lifetime if they
// intend to mutate it.
func (c *Compiler) Bytecode() []byte {
	return c.artifact
}

// SaveTo writes the artifact to path, and, when debug verbosity is at
// least 1, an additional `<path>.ark.meta` CBOR report beside it.
func (c *Compiler) SaveTo(path string) error {
	if c.artifact == nil {
		return newError(IO, ast.Position{}, "", "SaveTo called before a successful Compile")
	}
	f, err := os.Create(path)
	if err != nil {
		return newError(IO, ast.Position{}, "", "%v", err)
	}
	defer f.Close()
	if _, err := f.Write(c.artifact); err != nil {
		return newError(IO, ast.Position{}, "", "%v", err)
	}
	if c.debug >= 1 {
		if err := c.writeReportSidecar(path); err != nil {
			return newError(IO, ast.Position{}, "", "%v", err)
		}
	}
	return nil
}
