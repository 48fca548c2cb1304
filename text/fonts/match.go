package fonts

import (
	"strings"

	"github.com/gogpu/textkit/text"
)

// match returns the index of the face best matching desc among faces
// accepted by filter, or -1.
//
// Faces of the requested family win over others; when desc has no family the
// default family is requested. Ties are broken by style distance and then by
// registration order.
func (r *Registry) match(desc text.FontDescription, filter func(*face) bool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	family := desc.Family
	if family == "" {
		family = r.cfg.defaultFamily
	}

	best, bestScore := -1, 0
	for i, f := range r.faces {
		if !filter(f) {
			continue
		}
		score := styleDistance(desc, f.desc)
		if !strings.EqualFold(f.desc.Family, family) {
			score += 1 << 20
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// styleDistance orders faces by slant, then weight, then width.
func styleDistance(want, have text.FontDescription) int {
	d := 0
	if want.Slant.IsSlanted() != have.Slant.IsSlanted() {
		d += 1 << 16
	} else if want.Slant != have.Slant {
		d += 1 << 8
	}
	d += absInt(int(want.Weight)-int(have.Weight)) * 16
	width := want.Width
	if width == 0 {
		width = text.FontWidthNormal
	}
	d += absInt(int(width) - int(have.Width))
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
