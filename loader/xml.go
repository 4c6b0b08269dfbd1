package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/casref"
)

// resourceElement captures a <Resource> element with free-form attributes.
//
// The element's attribute set is open-ended: name, type and factory are
// reserved metadata, everything else becomes a reference attribute. A
// custom unmarshaler is needed because encoding/xml cannot map unknown
// attributes onto struct fields.
type resourceElement struct {
	name    string
	resType string
	factory string
	attrs   map[string]string
}

func (r *resourceElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r.attrs = make(map[string]string, len(start.Attr))

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "name":
			r.name = attr.Value
		case "type":
			r.resType = attr.Value
		case "factory":
			r.factory = attr.Value
		default:
			r.attrs[attr.Name.Local] = attr.Value
		}
	}

	return d.Skip()
}

type contextDocument struct {
	XMLName   xml.Name          `xml:"Context"`
	Resources []resourceElement `xml:"Resource"`
}

// LoadXML parses a context-style XML document and returns one Reference
// per <Resource> element.
//
// Reserved attributes name, type and factory populate the reference
// metadata; all remaining attributes become name/value pairs on the
// reference. A <Resource> without a name attribute is an error.
//
// Parameters:
//   - r: Reader positioned at the XML document
//
// Returns:
//   - []*casref.Reference: One reference per declared resource
//   - error: Parse error, or an error naming an unnamed resource
func LoadXML(r io.Reader) ([]*casref.Reference, error) {
	var doc contextDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: parse xml: %w", err)
	}

	refs := make([]*casref.Reference, 0, len(doc.Resources))
	for i, res := range doc.Resources {
		if res.name == "" {
			return nil, fmt.Errorf("loader: resource %d has no name attribute", i)
		}

		ref := casref.NewReference(res.name, res.attrs)
		ref.SetResourceType(res.resType)
		ref.SetFactoryName(res.factory)
		refs = append(refs, ref)
	}

	return refs, nil
}

// LoadXMLFile reads and parses the XML context file at path.
func LoadXMLFile(path string) ([]*casref.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadXML(f)
}
