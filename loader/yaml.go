package loader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/casref"
)

type yamlResource struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type"`
	Factory    string            `yaml:"factory"`
	Attributes map[string]string `yaml:"attributes"`
}

type yamlDocument struct {
	Resources []yamlResource `yaml:"resources"`
}

// LoadYAML parses a YAML resource declaration and returns one Reference
// per entry in the resources list.
//
// Parameters:
//   - r: Reader positioned at the YAML document
//
// Returns:
//   - []*casref.Reference: One reference per declared resource
//   - error: Parse error, or an error naming an unnamed resource
func LoadYAML(r io.Reader) ([]*casref.Reference, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: parse yaml: %w", err)
	}

	refs := make([]*casref.Reference, 0, len(doc.Resources))
	for i, res := range doc.Resources {
		if res.Name == "" {
			return nil, fmt.Errorf("loader: resource %d has no name", i)
		}

		ref := casref.NewReference(res.Name, res.Attributes)
		ref.SetResourceType(res.Type)
		ref.SetFactoryName(res.Factory)
		refs = append(refs, ref)
	}

	return refs, nil
}

// LoadYAMLFile reads and parses the YAML resource file at path.
func LoadYAMLFile(path string) ([]*casref.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadYAML(f)
}
