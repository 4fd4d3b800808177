package generator

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// DetectPackage returns the package name and the import path a file
// generated into dir has to use.
func DetectPackage(dir string) (pkgName string, pkgPath string, err error) {
	pkgName, err = detectPackageName(dir)
	if err != nil {
		return "", "", err
	}

	pkgPath, err = ImportPath(dir)
	if err != nil {
		return pkgName, "", err
	}

	return pkgName, pkgPath, nil
}

// detectPackageName reads the package clause of the first Go file in dir.
// Without Go files the name comes from the module path at a module root and
// from the directory name elsewhere.
func detectPackageName(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".go" || name == OutputFile {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil || f.Name == nil {
			continue
		}
		return f.Name.Name, nil
	}

	return packageNameFromDir(dir)
}

func packageNameFromDir(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	candidates := []string{filepath.Base(absDir)}
	if modulePath, err := readModulePath(absDir); err == nil {
		candidates = append([]string{path.Base(modulePath)}, candidates...)
	}

	for _, candidate := range candidates {
		if name := sanitizePackageName(candidate); name != "" {
			return name, nil
		}
	}

	return "", fmt.Errorf("cannot derive package name from directory %s", dir)
}

// sanitizePackageName lowercases raw and keeps only characters valid in a
// package name. Hyphens and dots become underscores, except at the start.
func sanitizePackageName(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case (r == '-' || r == '.') && b.Len() > 0:
			b.WriteByte('_')
		}
	}

	name := b.String()
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// ImportPath returns the import path of the package in dir: the path of the
// nearest enclosing module joined with dir relative to the module root.
func ImportPath(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	root, modulePath, err := findModule(absDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, absDir)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return modulePath, nil
	}
	return path.Join(modulePath, filepath.ToSlash(rel)), nil
}

// findModule walks up from absDir to the nearest go.mod.
func findModule(absDir string) (root string, modulePath string, err error) {
	current := absDir
	for {
		modulePath, err := readModulePath(current)
		if err == nil {
			return current, modulePath, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", "", err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", "", fmt.Errorf("go.mod not found in any parent of %s", absDir)
		}
		current = parent
	}
}

func readModulePath(dir string) (string, error) {
	goModPath := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return "", err
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("cannot parse %s: no module directive", goModPath)
	}
	return modulePath, nil
}
