package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirectoryNotFound is returned when the application directory to
// scan does not exist.
var ErrDirectoryNotFound = errors.New("directory not found")

// mandatoryFiles are the files a module must carry to count as complete.
var mandatoryFiles = []string{"model.go", "routes.go", "schemas.go"}

// reservedDirs never hold user modules.
var reservedDirs = map[string]bool{
	"core": true,
	"apis": true,
}

// Scan inventories the modules under dir, sorted by name. Directories
// starting with "_" or "." and the reserved infrastructure directories
// are ignored, as is any directory carrying none of the mandatory files.
func Scan(dir string) ([]ModuleDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var modules []ModuleDescriptor
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || reservedDirs[name] {
			continue
		}
		desc, ok, err := describe(filepath.Join(dir, name), name)
		if err != nil {
			return nil, err
		}
		if ok {
			modules = append(modules, desc)
		}
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	return modules, nil
}

func describe(path, name string) (ModuleDescriptor, bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return ModuleDescriptor{}, false, fmt.Errorf("read %s: %w", path, err)
	}

	present := map[string]bool{}
	files := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".go") {
			files++
		}
		present[e.Name()] = true
	}

	mandatory := 0
	for _, f := range mandatoryFiles {
		if present[f] {
			mandatory++
		}
	}
	if mandatory == 0 {
		return ModuleDescriptor{}, false, nil
	}
	return ModuleDescriptor{
		Name:     name,
		Path:     path,
		Files:    files,
		Complete: mandatory == len(mandatoryFiles),
	}, true, nil
}
