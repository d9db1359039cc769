package balloonpump

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// labelSource is parsed once and shared by every face size.
var labelSource *text.GoTextFaceSource

// newLabelFace returns the Go Regular face used for balloon letters and the
// pump button caption.
func newLabelFace(size float64) (*text.GoTextFace, error) {
	if labelSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("parse label font: %w", err)
		}
		labelSource = src
	}
	return &text.GoTextFace{Source: labelSource, Size: size}, nil
}
