package theme

import (
	"bytes"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	sansSource *text.GoTextFaceSource
	boldSource *text.GoTextFaceSource
	monoSource *text.GoTextFaceSource
)

func init() {
	sansSource = mustFaceSource(goregular.TTF)
	boldSource = mustFaceSource(gobold.TTF)
	monoSource = mustFaceSource(gomono.TTF)
}

func mustFaceSource(ttf []byte) *text.GoTextFaceSource {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return s
}

// FaceSans returns the regular UI face at the given size.
func FaceSans(size float64) text.Face {
	return &text.GoTextFace{Source: sansSource, Size: size}
}

// FaceBold returns the semibold headline face at the given size.
func FaceBold(size float64) text.Face {
	return &text.GoTextFace{Source: boldSource, Size: size}
}

// FaceMono returns the monospaced console face at the given size.
func FaceMono(size float64) text.Face {
	return &text.GoTextFace{Source: monoSource, Size: size}
}
