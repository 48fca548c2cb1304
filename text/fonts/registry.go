package fonts

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// fontKey is a face at a point size.
type fontKey struct {
	face int
	size text.PointSize26Dot6
}

// bitmapKey identifies a rasterized glyph.
type bitmapKey struct {
	id    text.FontID
	glyph uint32
	synth Synthesis
}

// Registry is a Service over registered OpenType faces.
//
// Registry is safe for concurrent use.
type Registry struct {
	cfg registryConfig

	mu    sync.RWMutex
	faces []*face
	ids   map[fontKey]text.FontID
	keys  []fontKey // keys[id-1]

	shaperPool sync.Pool
	bitmaps    *lru[bitmapKey, *Bitmap]
}

var _ Service = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		cfg: cfg,
		ids: make(map[fontKey]text.FontID),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		bitmaps: newLRU[bitmapKey, *Bitmap](cfg.bitmapCacheSize),
	}
}

// Register parses OpenType data and adds the face, describing it from its
// own name and OS/2 tables.
func (r *Registry) Register(data []byte) error {
	return r.register(data, nil)
}

// RegisterAs adds a face under an explicit description.
func (r *Registry) RegisterAs(data []byte, desc text.FontDescription) error {
	return r.register(data, &desc)
}

func (r *Registry) register(data []byte, desc *text.FontDescription) error {
	f, err := parseFace(data, desc)
	if err != nil {
		textkit.Logger().Warn("fonts: register failed", "err", err)
		return err
	}

	r.mu.Lock()
	r.faces = append(r.faces, f)
	if r.cfg.defaultFamily == "" {
		r.cfg.defaultFamily = f.desc.Family
	}
	n := len(r.faces)
	r.mu.Unlock()

	textkit.Logger().Debug("fonts: registered face",
		"family", f.desc.Family, "weight", f.desc.Weight, "slant", f.desc.Slant,
		"color", f.color, "faces", n)
	return nil
}

// Families returns the registered family names in registration order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, f := range r.faces {
		key := strings.ToLower(f.desc.Family)
		if !seen[key] {
			seen[key] = true
			out = append(out, f.desc.Family)
		}
	}
	return out
}

// DefaultFamily returns the family used for descriptions without one.
func (r *Registry) DefaultFamily() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.defaultFamily
}

// idFor returns the id of face at size, allocating one on first use.
func (r *Registry) idFor(faceIdx int, size text.PointSize26Dot6) text.FontID {
	key := fontKey{face: faceIdx, size: size}

	r.mu.RLock()
	id, ok := r.ids[key]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[key]; ok {
		return id
	}
	r.keys = append(r.keys, key)
	id = text.FontID(len(r.keys))
	r.ids[key] = id
	return id
}

// lookup returns the face and size behind id.
func (r *Registry) lookup(id text.FontID) (*face, text.PointSize26Dot6, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id == 0 || int(id) > len(r.keys) {
		return nil, 0, false
	}
	key := r.keys[id-1]
	return r.faces[key.face], key.size, true
}

// ResolveFont implements Service.
func (r *Registry) ResolveFont(desc text.FontDescription, size text.PointSize26Dot6) text.FontID {
	idx := r.match(desc, func(*face) bool { return true })
	if idx < 0 {
		return 0
	}
	return r.idFor(idx, size)
}

// HasGlyph implements Service.
func (r *Registry) HasGlyph(id text.FontID, ch rune) bool {
	f, _, ok := r.lookup(id)
	if !ok {
		return false
	}
	return f.hasGlyph(ch)
}

// FindFallbackFont implements Service.
func (r *Registry) FindFallbackFont(preferred text.FontID, ch rune, size text.PointSize26Dot6, preferColor bool) text.FontID {
	desc := text.DefaultFontDescription()
	if f, _, ok := r.lookup(preferred); ok {
		desc = f.desc
		desc.Family = ""
	}
	if preferColor {
		if idx := r.match(desc, func(f *face) bool { return f.color && f.hasGlyph(ch) }); idx >= 0 {
			return r.idFor(idx, size)
		}
	}
	idx := r.match(desc, func(f *face) bool { return f.hasGlyph(ch) })
	if idx < 0 {
		textkit.Logger().Debug("fonts: no fallback font", "char", ch)
		return 0
	}
	return r.idFor(idx, size)
}

// FindDefaultFont implements Service.
func (r *Registry) FindDefaultFont(ch rune, size text.PointSize26Dot6) text.FontID {
	desc := text.DefaultFontDescription()
	desc.Family = r.DefaultFamily()
	if idx := r.match(desc, func(f *face) bool { return f.hasGlyph(ch) }); idx >= 0 {
		return r.idFor(idx, size)
	}
	return r.ResolveFont(desc, size)
}

// IsColorFont implements Service.
func (r *Registry) IsColorFont(id text.FontID) bool {
	f, _, ok := r.lookup(id)
	return ok && f.color
}

// Description implements Service.
func (r *Registry) Description(id text.FontID) text.FontDescription {
	f, _, ok := r.lookup(id)
	if !ok {
		return text.DefaultFontDescription()
	}
	return f.desc
}

// PointSize implements Service.
func (r *Registry) PointSize(id text.FontID) text.PointSize26Dot6 {
	_, size, _ := r.lookup(id)
	return size
}

// ClearBitmaps drops every cached glyph bitmap.
func (r *Registry) ClearBitmaps() {
	r.bitmaps.clear()
}

// pixelSize converts a 26.6 point size to pixels at the configured DPI.
func (r *Registry) pixelSize(size text.PointSize26Dot6) float32 {
	return float32(size) / 64 * r.cfg.dpi / 72
}
