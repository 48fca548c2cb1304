package multilang

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
)

type fontKey struct {
	desc   string
	size   text.PointSize26Dot6
	script text.Script
}

func (k fontKey) String() string {
	return k.desc + "|" + strconv.FormatUint(uint64(k.size), 10) + "|" + strconv.FormatUint(uint64(k.script), 10)
}

// FontCache maps (description, point size, script) to resolved font ids.
// It is safe for concurrent use; concurrent misses on one key resolve once.
type FontCache struct {
	mu      sync.RWMutex
	ids     map[fontKey]text.FontID
	scripts map[fontKey]text.FontID
	group   singleflight.Group
}

// NewFontCache creates an empty cache.
func NewFontCache() *FontCache {
	return &FontCache{
		ids:     make(map[fontKey]text.FontID),
		scripts: make(map[fontKey]text.FontID),
	}
}

// Resolve returns the font id of desc at size, asking service on a miss.
func (c *FontCache) Resolve(service fonts.Service, desc text.FontDescription, size text.PointSize26Dot6, script text.Script) text.FontID {
	key := fontKey{desc: desc.Key(), size: size, script: script}

	c.mu.RLock()
	id, ok := c.ids[key]
	c.mu.RUnlock()
	if ok {
		return id
	}

	v, _, _ := c.group.Do(key.String(), func() (any, error) {
		c.mu.RLock()
		id, ok := c.ids[key]
		c.mu.RUnlock()
		if ok {
			return id, nil
		}
		id = service.ResolveFont(desc, size)
		textkit.Logger().Debug("multilang: font cache miss", "family", desc.Family, "size", size, "script", script, "id", id)
		c.mu.Lock()
		c.ids[key] = id
		c.mu.Unlock()
		return id, nil
	})
	return v.(text.FontID)
}

// ScriptFont returns the font remembered as able to render script for desc
// at size.
func (c *FontCache) ScriptFont(desc text.FontDescription, size text.PointSize26Dot6, script text.Script) (text.FontID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.scripts[fontKey{desc: desc.Key(), size: size, script: script}]
	return id, ok
}

// SetScriptFont remembers id as able to render script. The first font
// stored for a key is kept.
func (c *FontCache) SetScriptFont(desc text.FontDescription, size text.PointSize26Dot6, script text.Script, id text.FontID) {
	if id == 0 {
		return
	}
	key := fontKey{desc: desc.Key(), size: size, script: script}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.scripts[key]; !ok {
		c.scripts[key] = id
	}
}

// Len returns the number of resolved descriptions.
func (c *FontCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// Clear empties the cache.
func (c *FontCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.ids)
	clear(c.scripts)
}
