package writer

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/log"
)

func init() {
	log.Silence()
}

func TestWriteScene(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.zip")
	sc := &scene.Scene{
		Name:       "test",
		NodeData:   make([]float32, 12),
		VertexData: make([]float32, 33),
		NodeCount:  1,
	}

	if err := WriteScene(sc, file); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(file)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	if len(zr.File) != 1 || zr.File[0].Name != dataFile {
		names := make([]string, 0, len(zr.File))
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		t.Fatalf("expected zip to contain only %s; got %v", dataFile, names)
	}
}

func TestWriteSceneToMissingDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing", "out.zip")
	if err := WriteScene(&scene.Scene{}, file); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
