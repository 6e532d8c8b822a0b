// Command check_boundaries enforces import layering for code under
// contexts/. Run it from the repository root:
//
//	go run scripts/check_boundaries.go
package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const moduleRoot = "arcade"

// guardedLayers maps a service layer directory to the import subtrees it may
// reach beyond the standard library. "%s" expands to the owning service's
// import prefix.
var guardedLayers = map[string][]string{
	"domain":      {"%s/domain"},
	"ports":       {"%s/domain", moduleRoot + "/contracts"},
	"application": {"%s/application", "%s/domain", "%s/ports", moduleRoot + "/contracts"},
	"transport":   {"%s/transport", "%s/domain"},
}

type finding struct {
	file     string
	line     int
	imported string
	rule     string
}

func main() {
	findings := scanTree("contexts")
	if len(findings) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.file != b.file {
			return a.file < b.file
		}
		if a.line != b.line {
			return a.line < b.line
		}
		return a.imported < b.imported
	})

	fmt.Println("boundary violations found:")
	for _, f := range findings {
		fmt.Printf("- %s:%d %s: %q\n", f.file, f.line, f.rule, f.imported)
	}
	os.Exit(1)
}

func scanTree(root string) []finding {
	var findings []finding

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		rel := filepath.ToSlash(path)
		segments := strings.Split(rel, "/")
		if len(segments) < 4 || segments[0] != "contexts" {
			return nil
		}

		service := fmt.Sprintf("%s/contexts/%s/%s", moduleRoot, segments[1], segments[2])
		findings = append(findings, checkFile(path, rel, segments[3], service)...)
		return nil
	})

	return findings
}

func checkFile(path, rel, layer, service string) []finding {
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return []finding{{file: rel, line: 1, rule: "file must parse"}}
	}

	policy, guarded := guardedLayers[layer]

	var findings []finding
	for _, imp := range parsed.Imports {
		imported := strings.Trim(imp.Path.Value, `"`)
		line := fset.Position(imp.Pos()).Line

		if strings.HasPrefix(imported, moduleRoot+"/contexts/") && !inSubtree(imported, service) {
			findings = append(findings, finding{
				file:     rel,
				line:     line,
				imported: imported,
				rule:     "cross-module imports are forbidden",
			})
		}

		if !guarded || stdlib(imported) {
			continue
		}

		switch {
		case strings.Contains(imported, "/adapters/"):
			findings = append(findings, finding{
				file:     rel,
				line:     line,
				imported: imported,
				rule:     layer + " must not import adapters",
			})
		case allowedBy(imported, policy, service):
		default:
			findings = append(findings, finding{
				file:     rel,
				line:     line,
				imported: imported,
				rule:     layer + " import is outside the layer allowlist",
			})
		}
	}

	return findings
}

func allowedBy(imported string, policy []string, service string) bool {
	for _, pattern := range policy {
		prefix := pattern
		if strings.Contains(pattern, "%s") {
			prefix = fmt.Sprintf(pattern, service)
		}
		if inSubtree(imported, prefix) {
			return true
		}
	}
	return false
}

func inSubtree(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func stdlib(importPath string) bool {
	head, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(head, ".") && !strings.HasPrefix(importPath, moduleRoot+"/")
}
