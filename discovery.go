// FILE: lixenwraith/input/discovery.go
package input

import (
	"os"
	"path/filepath"
)

// FileDiscoveryOptions configures automatic env file discovery
type FileDiscoveryOptions struct {
	// File names to try in each directory (in order)
	Names []string

	// Custom search paths (searched before the defaults)
	Paths []string

	// Environment variable to check for an explicit path
	EnvVar string

	// Whether to search in XDG config directories under AppName
	UseXDG bool
	// AppName is the XDG subdirectory
	AppName string

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Names:         []string{".env"},
		EnvVar:        "ENV_FILE",
		UseXDG:        appName != "",
		AppName:       appName,
		UseCurrentDir: true,
	}
}

// DiscoverEnvFile returns the first env file found, or "" if none exists.
func DiscoverEnvFile(opts FileDiscoveryOptions) string {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG && opts.AppName != "" {
		searchPaths = append(searchPaths, getXDGConfigPaths(opts.AppName)...)
	}

	for _, dir := range searchPaths {
		for _, name := range opts.Names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}

	return ""
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
