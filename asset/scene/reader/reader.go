package reader

import (
	"errors"
	"fmt"

	"github.com/achilleasa/rtview/asset"
	"github.com/achilleasa/rtview/asset/scene"
)

var ErrUnsupportedFormat = errors.New("reader: unsupported file format")

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http/https URL. Scene descriptions (.json)
// are compiled on the fly; compiled scenes (.zip) are loaded as-is.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return ReadResource(res)
}

// Read scene from an open resource, selecting the reader by extension.
func ReadResource(res *asset.Resource) (*scene.Scene, error) {
	var reader Reader
	switch res.Ext() {
	case ".json":
		reader = newJSONSceneReader()
	case ".zip":
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, res.Path())
	}
	return reader.Read(res)
}
