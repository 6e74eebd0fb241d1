package scene

import "github.com/go-gl/mathgl/mgl32"

// Material holds Phong surface parameters.
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// MaterialRegistry is an ordered list of materials. Duplicate tags are kept;
// lookups return the first.
type MaterialRegistry struct {
	items []Material
}

func (r *MaterialRegistry) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) {
	r.items = append(r.items, Material{
		Tag:           tag,
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	})
}

func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.items {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int {
	return len(r.items)
}

func (r *MaterialRegistry) Tags() []string {
	tags := make([]string, len(r.items))
	for i, m := range r.items {
		tags[i] = m.Tag
	}
	return tags
}

// defineMaterials registers the surfaces used by the layout.
func defineMaterials(r *MaterialRegistry) {
	r.Define("plastic", mgl32.Vec3{0.80, 0.80, 0.80}, mgl32.Vec3{0.15, 0.15, 0.15}, 8)
	r.Define("tile", mgl32.Vec3{0.85, 0.85, 0.85}, mgl32.Vec3{0.75, 0.75, 0.75}, 32)
	r.Define("metal", mgl32.Vec3{0.55, 0.55, 0.55}, mgl32.Vec3{0.90, 0.90, 0.90}, 64)
	r.Define("wood", mgl32.Vec3{0.6, 0.5, 0.2}, mgl32.Vec3{0.1, 0.2, 0.2}, 1)
	r.Define("glass", mgl32.Vec3{0.3, 0.3, 0.2}, mgl32.Vec3{0.9, 0.9, 0.8}, 10)
}
