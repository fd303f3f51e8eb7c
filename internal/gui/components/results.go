package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ResultsMinWidth  = 420
	ResultsMinHeight = 400
)

// ResultsPane is the scrollable text area that shows analysis output.
type ResultsPane struct {
	container *fyne.Container
	text      *widget.Label
	scroll    *container.Scroll
}

func NewResultsPane() *ResultsPane {
	text := widget.NewLabel("")
	text.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(text)
	scroll.SetMinSize(fyne.NewSize(ResultsMinWidth, ResultsMinHeight))

	main := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Results**"),
		nil, nil, nil,
		scroll,
	)

	return &ResultsPane{
		container: main,
		text:      text,
		scroll:    scroll,
	}
}

func (rp *ResultsPane) GetContainer() *fyne.Container {
	return rp.container
}

func (rp *ResultsPane) SetText(content string) {
	rp.text.SetText(content)
	rp.scroll.ScrollToTop()
}
