package gui

// Texture is a GPU texture with known pixel dimensions.
type Texture interface {
	TextureID() uint32
	Size() Vec2i
}

// AssetProvider resolves textures by name. A missing texture is reported
// with ok == false; the GUI then lays the element out with zero size and
// records a resource diagnostic.
type AssetProvider interface {
	Texture(name string) (tex Texture, ok bool)
}

// NinePatch describes the stretchable center of a texture as UV insets
// (0..1) from each edge. Corners keep their texel size; edges stretch along
// one axis; the center stretches along both.
type NinePatch struct {
	Left, Top, Right, Bottom float32
}

// TextureRef is a Texture value with an explicit id and size, for textures
// created outside an AssetProvider.
type TextureRef struct {
	ID     uint32
	Width  int
	Height int
}

func (t TextureRef) TextureID() uint32 { return t.ID }
func (t TextureRef) Size() Vec2i       { return Vec2i{X: t.Width, Y: t.Height} }
