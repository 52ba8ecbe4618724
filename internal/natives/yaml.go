package natives

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gxlang/gxc/internal/diagnostic"
)

// yamlCatalog is the document shape accepted by LoadYAML:
//
//	natives:
//	  - name: UnitKill
//	    returns: void
//	    params: [unit]
type yamlCatalog struct {
	Natives []yamlNative `yaml:"natives"`
}

type yamlNative struct {
	Name    string   `yaml:"name"`
	Returns string   `yaml:"returns"`
	Params  []string `yaml:"params"`
}

// LoadYAML reads a YAML catalog file. Entries missing a name or return type
// produce NativeLoadError diagnostics; the rest of the document still loads.
func LoadYAML(path string, diags *diagnostic.Diagnostics) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading natives file: %w", err)
	}
	return ParseYAML(data, diags)
}

// ParseYAML parses a YAML catalog document. See LoadYAML.
func ParseYAML(data []byte, diags *diagnostic.Diagnostics) (*Catalog, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing natives yaml: %w", err)
	}

	entries := make(map[string]Signature, len(doc.Natives))
	for i, n := range doc.Natives {
		if n.Name == "" {
			diags.Errorf(diagnostic.NativeLoadError, 0, 0,
				"natives entry %d has no name", i)
			continue
		}
		if n.Returns == "" {
			diags.Errorf(diagnostic.NativeLoadError, 0, 0,
				"native '%s' has no return type", n.Name)
			continue
		}
		if _, exists := entries[n.Name]; exists {
			diags.Errorf(diagnostic.NativeLoadError, 0, 0,
				"native '%s' declared more than once", n.Name)
			continue
		}
		params := n.Params
		if params == nil {
			params = []string{}
		}
		entries[n.Name] = Signature{Return: n.Returns, Params: params}
	}

	return &Catalog{entries: entries}, nil
}
