package export

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"tabletop/internal/scene"

	"github.com/qmuntal/gltf"
)

// WriteScene prepares the scene against a Capture, renders one frame and
// saves it to outPath. A .glb extension selects the binary container,
// anything else writes JSON with the geometry in sibling .bin files.
func WriteScene(texturesDir, outPath string) error {
	c := NewCapture()
	m := scene.NewManager(c, c, c, texturesDir)
	defer m.Dispose()

	if err := m.Prepare(); err != nil {
		return fmt.Errorf("prepare scene: %w", err)
	}
	m.RenderScene()

	doc, err := Document(c, m.Textures().Entries(), filepath.Dir(outPath))
	if err != nil {
		return err
	}

	if filepath.Ext(outPath) == ".glb" {
		err = gltf.SaveBinary(doc, outPath)
	} else {
		base := strings.TrimSuffix(filepath.Base(outPath), filepath.Ext(outPath))
		for i, buf := range doc.Buffers {
			buf.URI = fmt.Sprintf("%s%d.bin", base, i)
		}
		err = gltf.Save(doc, outPath)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	log.Printf("exported %d nodes, %d meshes to %s", len(doc.Nodes), len(doc.Meshes), outPath)
	return nil
}
