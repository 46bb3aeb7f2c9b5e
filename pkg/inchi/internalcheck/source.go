package internalcheck

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

const modulePattern = "github.com/chemkit/inchi-go/..."

// sourceFile is a parsed Go file of the module, cgo or not.
type sourceFile struct {
	pkg  string
	path string
	file *ast.File
}

// loadSources parses every Go file of the module, including files excluded
// by build constraints, so that cgo and stub variants are both checked.
func loadSources() (*token.FileSet, []sourceFile, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles, Tests: true}
	pkgs, err := packages.Load(cfg, modulePattern)
	if err != nil {
		return nil, nil, err
	}
	fset := token.NewFileSet()
	seen := make(map[string]bool)
	var files []sourceFile
	for _, pkg := range pkgs {
		for _, path := range append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...) {
			if filepath.Ext(path) != ".go" || seen[path] {
				continue
			}
			seen[path] = true
			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly|parser.ParseComments)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, sourceFile{pkg: pkg.PkgPath, path: path, file: f})
		}
	}
	return fset, files, nil
}

// parseFull re-parses path with function bodies.
func parseFull(fset *token.FileSet, path string) (*ast.File, error) {
	return parser.ParseFile(fset, path, nil, 0)
}
