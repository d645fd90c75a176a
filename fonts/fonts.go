package fonts

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Mono    FontName = "mono"
)

type faceKey struct {
	name FontName
	px   int
}

var (
	parsed = map[FontName]*truetype.Font{}
	faces  = map[faceKey]font.Face{}
)

// LoadDefaults registers the embedded Go fonts.
func LoadDefaults() error {
	if err := LoadFont(Regular, goregular.TTF); err != nil {
		return err
	}
	return LoadFont(Mono, gomono.TTF)
}

func LoadFont(name FontName, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	parsed[name] = f
	for k := range faces {
		if k.name == name {
			delete(faces, k)
		}
	}
	return nil
}

// Get returns the face at the default 10 pixel size.
func (f FontName) Get() font.Face {
	return f.Size(10)
}

// Size returns the face at px pixels, rounded to whole pixels and cached.
func (f FontName) Size(px float64) font.Face {
	key := faceKey{name: f, px: max(1, int(math.Round(px)))}
	if face, ok := faces[key]; ok {
		return face
	}
	ttf, ok := parsed[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: float64(key.px)})
	faces[key] = face
	return face
}
