package components

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
)

const (
	PreviewWidth  = 600
	PreviewHeight = 400
)

// ImageView shows the most recently rendered chart or word cloud,
// resized to the fixed preview area.
type ImageView struct {
	container *fyne.Container
	preview   *canvas.Image
}

func NewImageView() *ImageView {
	preview := canvas.NewImageFromImage(nil)
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(fyne.NewSize(PreviewWidth, PreviewHeight))

	main := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Preview**"),
		nil, nil, nil,
		preview,
	)

	return &ImageView{
		container: main,
		preview:   preview,
	}
}

func (iv *ImageView) GetContainer() *fyne.Container {
	return iv.container
}

// ShowFile decodes the image at path, fits it into the preview area
// with Lanczos resampling and refreshes the canvas.
func (iv *ImageView) ShowFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open preview image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode preview image: %w", err)
	}

	iv.Show(img)
	return nil
}

func (iv *ImageView) Show(img image.Image) {
	fitted := imaging.Fit(img, PreviewWidth, PreviewHeight, imaging.Lanczos)
	iv.preview.Image = fitted
	iv.preview.Refresh()
}
