package cli

import (
	"fmt"
	"path/filepath"

	"github.com/toyz/routedoc/internal/utils"
)

// ModuleResolver turns package directories into import paths
type ModuleResolver struct {
	goMod *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver(reader *utils.FileReader) *ModuleResolver {
	return &ModuleResolver{
		goMod: utils.NewGoModParser(reader),
	}
}

// ResolvePackagePath returns the import path of packageDir from the nearest
// go.mod above it. Outside a module it returns an empty path.
func (r *ModuleResolver) ResolvePackagePath(packageDir string) (string, error) {
	absPackageDir, err := filepath.Abs(packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve package directory: %w", err)
	}

	goModPath, err := r.goMod.FindGoModFile(absPackageDir)
	if err != nil {
		return "", nil
	}

	moduleName, err := r.goMod.ParseModuleName(goModPath)
	if err != nil {
		return "", err
	}

	return r.BuildPackagePath(moduleName, filepath.Dir(goModPath), absPackageDir)
}

// BuildPackagePath builds the full import path for a package directory below moduleRoot
func (r *ModuleResolver) BuildPackagePath(moduleName, moduleRoot, packageDir string) (string, error) {
	relPath, err := filepath.Rel(moduleRoot, packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}

	// Convert file path separators to forward slashes for import paths
	importPath := filepath.ToSlash(relPath)

	if importPath == "." {
		return moduleName, nil
	}

	return fmt.Sprintf("%s/%s", moduleName, importPath), nil
}
