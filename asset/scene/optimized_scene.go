package scene

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/achilleasa/rtview/asset/texture"
	"github.com/achilleasa/rtview/types"
	"github.com/olekukonko/tablewriter"
)

// Camera placement carried along with the compiled scene.
type Camera struct {
	FOV      float32
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3
}

// A compiled scene ready to be uploaded as two RGB32F lookup textures.
//
// NodeData stores one record per linear BVH node:
//
//	[0-2]  bbox min
//	[3-5]  bbox max
//	[6]    right child index (interior) or primitive index (leaf)
//	[7]    primitive count; 0 for interior nodes
//	[8]    split axis
//	[9]    shape tag (leafs only)
//	[10]   material constant (leafs only)
//	[11]   material tag (leafs only)
//
// VertexData stores one fixed-size record per primitive in BVH leaf order.
type Scene struct {
	Name string

	NodeData   []float32
	VertexData []float32

	NodeCount      int32
	PrimitiveCount int32

	NodeTexture   texture.Layout
	VertexTexture texture.Layout

	Camera *Camera
}

// Build a tabular representation of scene statistics.
func (sc *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Table", "Records", "Texture", "Size"})
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d", sc.NodeCount), fmtLayout(sc.NodeTexture), fmtSize(sc.NodeData)})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", sc.PrimitiveCount), fmtLayout(sc.VertexTexture), fmtSize(sc.VertexData)})
	table.SetFooter([]string{"Total", " ", " ", strings.TrimLeft(fmtSize(sc.NodeData, sc.VertexData), " ")})

	table.Render()
	return buf.String()
}

func fmtLayout(l texture.Layout) string {
	return fmt.Sprintf("%dx%d %s", l.Side, l.Side, l.Format)
}

// Sum the total space used by a set of slices and return back a formatted
// value with the appropriate byte/kb/mb unit.
func fmtSize(items ...interface{}) string {
	var totalBytes float32 = 0.0
	for _, item := range items {
		t := reflect.TypeOf(item)
		v := reflect.ValueOf(item)
		if v.Len() == 0 {
			continue
		}

		totalBytes += float32(int(t.Elem().Size()) * v.Len())
	}

	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", int(totalBytes))
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", totalBytes/1e3)
	}
	return fmt.Sprintf("%5.1f mb", totalBytes/1e6)
}
