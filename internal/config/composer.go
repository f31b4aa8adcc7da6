package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type composerManifest struct {
	Autoload struct {
		PSR4 map[string]any `json:"psr-4"`
	} `json:"autoload"`
}

// DiscoverRootNamespace returns the PSR-4 namespace composer.json maps to
// appPath. It falls back to DefaultRootNamespace when composer.json is
// missing, unreadable, or has no matching entry.
func DiscoverRootNamespace(dir, appPath string) string {
	data, err := os.ReadFile(filepath.Join(dir, "composer.json"))
	if err != nil {
		return DefaultRootNamespace
	}

	var manifest composerManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return DefaultRootNamespace
	}

	// Sorted for a deterministic pick when several namespaces share a path.
	namespaces := make([]string, 0, len(manifest.Autoload.PSR4))
	for ns := range manifest.Autoload.PSR4 {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	want := cleanDir(appPath)
	for _, ns := range namespaces {
		for _, p := range psr4Paths(manifest.Autoload.PSR4[ns]) {
			if cleanDir(p) == want {
				return ns
			}
		}
	}
	return DefaultRootNamespace
}

// psr4Paths handles both the string and the list form of a PSR-4 entry.
func psr4Paths(v any) []string {
	switch typed := v.(type) {
	case string:
		return []string{typed}
	case []any:
		var out []string
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func cleanDir(p string) string {
	return strings.Trim(filepath.ToSlash(filepath.Clean(p)), "/")
}
