// Package export writes axis rotation traces as glTF so the stages can be
// inspected in any 3D viewer.
package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"axisviz/internal/axisrot"
	"axisviz/internal/geom"
)

// Document builds one node per stage. Each node has a mesh with two
// primitives: the axis as a line and the point as a single vertex.
func Document(tr *axisrot.Trace) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "axisviz"

	for _, s := range axisrot.Stages() {
		snap := tr.At(s)
		axis := modeler.WritePosition(doc, [][3]float32{f32(snap.P1), f32(snap.P2)})
		point := modeler.WritePosition(doc, [][3]float32{f32(snap.Point)})

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: s.String(),
			Primitives: []*gltf.Primitive{
				{Attributes: map[string]int{gltf.POSITION: axis}, Mode: gltf.PrimitiveLines},
				{Attributes: map[string]int{gltf.POSITION: point}, Mode: gltf.PrimitivePoints},
			},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:   s.String(),
			Mesh:   gltf.Index(len(doc.Meshes) - 1),
			Extras: extras(snap.Info),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

// WriteBinary encodes doc as a .glb stream.
func WriteBinary(w io.Writer, doc *gltf.Document) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return errors.Wrap(enc.Encode(doc), "encoding glb")
}

func extras(info axisrot.StageInfo) map[string]any {
	return map[string]any{
		"stage":       info.Reached.String(),
		"translation": info.Translation[:],
		"alpha":       info.Alpha,
		"beta":        info.Beta,
		"theta":       info.Theta,
	}
}

func f32(v geom.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
