package fonts

import (
	"errors"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// RegisterGoFonts registers the Go font family and Go Mono.
// The regular face is registered first so "Go" becomes the default family
// unless the registry was created WithDefaultFamily.
func RegisterGoFonts(r *Registry) error {
	var errs []error
	for _, data := range [][]byte{
		goregular.TTF,
		gobold.TTF,
		goitalic.TTF,
		gobolditalic.TTF,
		gomono.TTF,
	} {
		if err := r.Register(data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
