package opengl

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-theft-auto/flatgui"
)

// Texture is a GL texture owned by the application.
type Texture struct {
	id   uint32
	size gui.Vec2i
}

func (t *Texture) TextureID() uint32   { return t.id }
func (t *Texture) Size() gui.Vec2i     { return t.size }
func (t *Texture) Delete()             { gl.DeleteTextures(1, &t.id) }
func (t *Texture) String() string      { return fmt.Sprintf("texture %d (%dx%d)", t.id, t.size.X, t.size.Y) }
func (t *Texture) Ref() gui.TextureRef { return gui.TextureRef{ID: t.id, Width: t.size.X, Height: t.size.Y} }

// UploadAlpha creates a single-channel texture from img. The GUI tints it
// with the vertex color. Font atlases use this.
func (r *Renderer) UploadAlpha(img *image.Alpha) (uint32, error) {
	if img.Rect.Empty() {
		return 0, fmt.Errorf("upload alpha texture: empty image")
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	pix := tightAlpha(img)
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, w, h, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("upload alpha texture: error 0x%04x", e)
	}
	return tex, nil
}

// UpdateAlpha replaces the contents of a texture created by UploadAlpha.
// The image must have the texture's original size.
func (r *Renderer) UpdateAlpha(tex uint32, img *image.Alpha) error {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	pix := tightAlpha(img)
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("update alpha texture %d: error 0x%04x", tex, e)
	}
	return nil
}

// LoadTexture uploads img as a full color texture.
func (r *Renderer) LoadTexture(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("load texture: empty image")
	}
	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return nil, fmt.Errorf("load texture: error 0x%04x", e)
	}

	r.rgbaTextures[tex] = true
	return &Texture{id: tex, size: gui.Vec2i{X: b.Dx(), Y: b.Dy()}}, nil
}

// DeleteTexture releases a texture created by LoadTexture.
func (r *Renderer) DeleteTexture(t *Texture) {
	delete(r.rgbaTextures, t.id)
	t.Delete()
}

// tightAlpha returns the pixels of img without row padding.
func tightAlpha(img *image.Alpha) []uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == w && len(img.Pix) == w*h {
		return img.Pix
	}
	pix := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		off := y * img.Stride
		pix = append(pix, img.Pix[off:off+w]...)
	}
	return pix
}

// Assets is a named texture set. It implements gui.AssetProvider.
type Assets struct {
	r        *Renderer
	textures map[string]*Texture
}

// NewAssets returns an empty asset set uploading through r.
func NewAssets(r *Renderer) *Assets {
	return &Assets{r: r, textures: make(map[string]*Texture)}
}

// Texture implements gui.AssetProvider.
func (a *Assets) Texture(name string) (gui.Texture, bool) {
	t, ok := a.textures[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// Add uploads img under name, replacing any texture with that name.
func (a *Assets) Add(name string, img image.Image) error {
	t, err := a.r.LoadTexture(img)
	if err != nil {
		return fmt.Errorf("asset %q: %w", name, err)
	}
	if old, ok := a.textures[name]; ok {
		a.r.DeleteTexture(old)
	}
	a.textures[name] = t
	return nil
}

// LoadFile decodes a PNG, JPEG, BMP or WebP file and adds it under its base
// name without extension.
func (a *Assets) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return a.Add(name, img)
}

// LoadDir loads every decodable image in dir. Files of other types are
// skipped.
func (a *Assets) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read asset dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
			if err := a.LoadFile(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete releases every texture in the set.
func (a *Assets) Delete() {
	for name, t := range a.textures {
		a.r.DeleteTexture(t)
		delete(a.textures, name)
	}
}
