package export

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"tabletop/internal/scene"
	"tabletop/internal/shapes"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrNothingDrawn = errors.New("export: no draws recorded")

type meshKey struct {
	kind     shapes.Kind
	parts    string
	uv       [2]float32
	material int
}

type builder struct {
	doc      *gltf.Document
	capture  *Capture
	outDir   string
	textures []scene.TextureEntry

	meshes    map[meshKey]int
	flat      map[[7]float32]int
	texturedM map[int32]int
	images    map[int32]int
}

// Document converts the recorded draws into a glTF document, one node per
// draw. Texture images are referenced by path relative to outDir.
func Document(c *Capture, textures []scene.TextureEntry, outDir string) (*gltf.Document, error) {
	draws := c.Draws()
	if len(draws) == 0 {
		return nil, ErrNothingDrawn
	}

	b := &builder{
		doc:       gltf.NewDocument(),
		capture:   c,
		outDir:    outDir,
		textures:  textures,
		meshes:    make(map[meshKey]int),
		flat:      make(map[[7]float32]int),
		texturedM: make(map[int32]int),
		images:    make(map[int32]int),
	}
	b.doc.Asset.Generator = "tabletop"

	for i, d := range draws {
		mesh, ok := c.Mesh(d.Kind)
		if !ok {
			return nil, fmt.Errorf("draw %d: %s was never loaded", i, d.Kind)
		}
		material := b.material(d)
		meshIdx := b.mesh(mesh, d, material)

		node := &gltf.Node{
			Name:   fmt.Sprintf("%02d %s", i, d.Kind),
			Mesh:   gltf.Index(meshIdx),
			Matrix: toFloat64(d.Model),
		}
		b.doc.Nodes = append(b.doc.Nodes, node)
		b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, len(b.doc.Nodes)-1)
	}
	return b.doc, nil
}

func (b *builder) mesh(m *shapes.Mesh, d Draw, material int) int {
	key := meshKey{kind: d.Kind, parts: fmt.Sprint(d.Parts), material: material}
	if d.Textured {
		key.uv = [2]float32{d.UVScale.X(), d.UVScale.Y()}
	}
	if idx, ok := b.meshes[key]; ok {
		return idx
	}

	n := m.VertexCount()
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	uvs := make([][2]float32, n)
	for i := 0; i < n; i++ {
		p, nm, uv := m.Position(i), m.Normal(i), m.UV(i)
		positions[i] = [3]float32{p.X(), p.Y(), p.Z()}
		normals[i] = [3]float32{nm.X(), nm.Y(), nm.Z()}
		if d.Textured {
			uvs[i] = [2]float32{uv.X() * d.UVScale.X(), uv.Y() * d.UVScale.Y()}
		} else {
			uvs[i] = [2]float32{uv.X(), uv.Y()}
		}
	}

	indices := m.Indices
	if len(d.Parts) > 0 {
		indices = nil
		for _, p := range d.Parts {
			r, ok := m.Part(p)
			if !ok {
				continue
			}
			indices = append(indices, m.Indices[r.Offset:r.Offset+r.Count]...)
		}
	}

	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(b.doc, indices)),
		Attributes: map[string]int{
			gltf.POSITION:   modeler.WritePosition(b.doc, positions),
			gltf.NORMAL:     modeler.WriteNormal(b.doc, normals),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(b.doc, uvs),
		},
		Material: gltf.Index(material),
	}
	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name:       d.Kind.String(),
		Primitives: []*gltf.Primitive{prim},
	})
	idx := len(b.doc.Meshes) - 1
	b.meshes[key] = idx
	return idx
}

func (b *builder) material(d Draw) int {
	if d.Textured {
		return b.texturedMaterial(d.Slot)
	}

	key := [7]float32{d.Color[0], d.Color[1], d.Color[2], d.Color[3]}
	if d.HasMaterial {
		key[4] = d.Shininess
		key[5] = d.Specular.Len()
		key[6] = 1
	}
	if idx, ok := b.flat[key]; ok {
		return idx
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{float64(d.Color[0]), float64(d.Color[1]), float64(d.Color[2]), float64(d.Color[3])},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	if d.HasMaterial {
		pbr.RoughnessFactor = gltf.Float(roughness(d.Shininess))
	}
	mat := &gltf.Material{
		Name:                 fmt.Sprintf("flat %d", len(b.flat)),
		PBRMetallicRoughness: pbr,
	}
	if d.Color[3] < 1 {
		mat.AlphaMode = gltf.AlphaBlend
	}
	b.doc.Materials = append(b.doc.Materials, mat)
	idx := len(b.doc.Materials) - 1
	b.flat[key] = idx
	return idx
}

func (b *builder) texturedMaterial(slot int32) int {
	if idx, ok := b.texturedM[slot]; ok {
		return idx
	}

	name := fmt.Sprintf("slot %d", slot)
	pbr := &gltf.PBRMetallicRoughness{
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	if slot >= 0 && int(slot) < len(b.textures) {
		entry := b.textures[slot]
		name = entry.Tag
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: b.texture(slot, entry)}
	} else {
		log.Printf("export: draw samples empty slot %d", slot)
	}

	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name:                 name,
		PBRMetallicRoughness: pbr,
	})
	idx := len(b.doc.Materials) - 1
	b.texturedM[slot] = idx
	return idx
}

func (b *builder) texture(slot int32, entry scene.TextureEntry) int {
	if idx, ok := b.images[slot]; ok {
		return idx
	}
	if len(b.doc.Samplers) == 0 {
		b.doc.Samplers = append(b.doc.Samplers, &gltf.Sampler{
			MagFilter: gltf.MagLinear,
			MinFilter: gltf.MinLinearMipMapLinear,
			WrapS:     gltf.WrapRepeat,
			WrapT:     gltf.WrapRepeat,
		})
	}

	b.doc.Images = append(b.doc.Images, &gltf.Image{
		Name: entry.Tag,
		URI:  imageURI(b.outDir, entry.Path),
	})
	b.doc.Textures = append(b.doc.Textures, &gltf.Texture{
		Sampler: gltf.Index(0),
		Source:  gltf.Index(len(b.doc.Images) - 1),
	})
	idx := len(b.doc.Textures) - 1
	b.images[slot] = idx
	return idx
}

func imageURI(outDir, path string) string {
	if rel, err := filepath.Rel(outDir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(path)
}

// roughness maps a Phong exponent onto a PBR roughness.
func roughness(shininess float32) float64 {
	if shininess < 0 {
		shininess = 0
	}
	return float64(math32.Sqrt(2 / (shininess + 2)))
}

func toFloat64(m [16]float32) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}
