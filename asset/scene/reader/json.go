package reader

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/achilleasa/rtview/asset"
	"github.com/achilleasa/rtview/asset/compiler"
	"github.com/achilleasa/rtview/asset/compiler/input"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/log"
)

type jsonSceneReader struct {
	logger log.Logger
}

func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json reader"),
	}
}

// Parse a scene description and compile it.
func (p *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing scene description from "%s"`, sceneRes.Path())
	start := time.Now()

	desc := input.NewScene()
	decoder := json.NewDecoder(sceneRes)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(desc); err != nil {
		return nil, fmt.Errorf("jsonSceneReader: failed to parse %s: %w", sceneRes.Path(), err)
	}

	p.logger.Infof("parsed %d objects in %d ms", len(desc.Objects), time.Since(start).Nanoseconds()/1e6)
	return compiler.Compile(desc)
}
