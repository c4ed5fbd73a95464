package semantic

import (
	"github.com/odvcencio/facet/pkg/encoding/toon"
	facetErrors "github.com/odvcencio/facet/pkg/errors"
)

// Export encodes a tree for agent consumption in the given format.
func Export(n Node, format toon.Format) ([]byte, error) {
	data, err := toon.ForFormat(format).Marshal(n)
	if err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeExportEncode, "encode semantic tree").
			WithContext("format", string(format))
	}
	return data, nil
}

// Import decodes a JSON-encoded tree.
func Import(data []byte) (Node, error) {
	var n Node
	if err := toon.New(false).Unmarshal(data, &n); err != nil {
		return Node{}, facetErrors.Wrap(err, facetErrors.ErrCodeInvalidInput, "decode semantic tree")
	}
	return n, nil
}
