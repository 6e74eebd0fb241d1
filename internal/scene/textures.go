package scene

import (
	"errors"
	"fmt"
	"log"

	"tabletop/internal/graphics"
)

var (
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrDuplicateTag        = errors.New("duplicate texture tag")
	ErrRegistryFull        = errors.New("texture registry full")
)

// TextureBackend creates, binds and frees GPU textures.
type TextureBackend interface {
	Upload(img *graphics.ImageData) (uint32, error)
	Bind(unit int, handle uint32)
	Delete(handles []uint32)
}

// TextureEntry is one registered texture. Its index in the registry is its
// slot, which doubles as the texture unit after BindAll.
type TextureEntry struct {
	Tag      string
	Handle   uint32
	Path     string
	Width    int
	Height   int
	Channels int
}

// TextureRegistry maps tags to uploaded textures in registration order.
type TextureRegistry struct {
	backend TextureBackend
	entries []TextureEntry
	index   map[string]int
}

func NewTextureRegistry(backend TextureBackend) *TextureRegistry {
	return &TextureRegistry{
		backend: backend,
		index:   make(map[string]int),
	}
}

// Load decodes the image at path and registers it under tag. Nothing is
// registered on error.
func (r *TextureRegistry) Load(path, tag string) error {
	if _, ok := r.index[tag]; ok {
		return fmt.Errorf("%s: %w", tag, ErrDuplicateTag)
	}
	if len(r.entries) >= graphics.MaxTextureSlots {
		return fmt.Errorf("%s: %w", tag, ErrRegistryFull)
	}

	img, err := graphics.LoadImage(path)
	if err != nil {
		return err
	}
	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("%s has %d channels: %w", path, img.Channels, ErrUnsupportedChannels)
	}

	handle, err := r.backend.Upload(img)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}

	r.index[tag] = len(r.entries)
	r.entries = append(r.entries, TextureEntry{
		Tag:      tag,
		Handle:   handle,
		Path:     path,
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
	})
	log.Printf("loaded texture %s (%dx%d, %d channels) as %q", path, img.Width, img.Height, img.Channels, tag)
	return nil
}

// BindAll binds entry i to texture unit i and returns the number bound.
func (r *TextureRegistry) BindAll() int {
	for i, e := range r.entries {
		r.backend.Bind(i, e.Handle)
	}
	return len(r.entries)
}

// FindHandle returns the GPU handle for tag, or -1.
func (r *TextureRegistry) FindHandle(tag string) int64 {
	i, ok := r.index[tag]
	if !ok {
		return -1
	}
	return int64(r.entries[i].Handle)
}

// FindSlot returns the slot for tag, or -1.
func (r *TextureRegistry) FindSlot(tag string) int {
	i, ok := r.index[tag]
	if !ok {
		return -1
	}
	return i
}

func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the registered entries in slot order.
func (r *TextureRegistry) Entries() []TextureEntry {
	return append([]TextureEntry(nil), r.entries...)
}

// Destroy frees every texture and empties the registry.
func (r *TextureRegistry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.Handle
	}
	r.backend.Delete(handles)
	r.entries = nil
	clear(r.index)
}
