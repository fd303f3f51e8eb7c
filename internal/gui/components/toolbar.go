package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar groups the file, analysis, visualization and dictionary
// controls. Handlers are injected by the GUI manager after
// construction.
type Toolbar struct {
	container *fyne.Container

	OpenButton *widget.Button
	DictButton *widget.Button

	TokenizeButton  *widget.Button
	FrequencyButton *widget.Button
	PosButton       *widget.Button
	EntityButton    *widget.Button

	CloudButton *widget.Button
	BarButton   *widget.Button
	PieButton   *widget.Button

	WordEntry    *widget.Entry
	AddButton    *widget.Button
	RemoveButton *widget.Button

	statusLabel *widget.Label

	openHandler       func()
	loadDictHandler   func()
	tokenizeHandler   func()
	frequencyHandler  func()
	posHandler        func()
	entityHandler     func()
	cloudHandler      func()
	chartHandler      func(kind string)
	dictEditHandler   func(word, action string)
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.setupToolbar()
	return t
}

func (t *Toolbar) setupToolbar() {
	t.OpenButton = widget.NewButton("Open Text", t.onOpen)
	t.OpenButton.Importance = widget.HighImportance
	t.DictButton = widget.NewButton("Load Dictionary", t.onLoadDict)

	t.TokenizeButton = widget.NewButton("Tokenize", t.onTokenize)
	t.FrequencyButton = widget.NewButton("Word Frequency", t.onFrequency)
	t.PosButton = widget.NewButton("POS Tagging", t.onPos)
	t.EntityButton = widget.NewButton("Entities", t.onEntities)

	t.CloudButton = widget.NewButton("Word Cloud", t.onCloud)
	t.BarButton = widget.NewButton("Bar Chart", func() { t.onChart("bar") })
	t.PieButton = widget.NewButton("Pie Chart", func() { t.onChart("pie") })

	t.WordEntry = widget.NewEntry()
	t.WordEntry.SetPlaceHolder("custom word")
	t.AddButton = widget.NewButton("Add", func() { t.onDictEdit("add") })
	t.RemoveButton = widget.NewButton("Remove", func() { t.onDictEdit("remove") })

	t.statusLabel = widget.NewLabel("Ready")

	fileSection := container.NewHBox(t.OpenButton, t.DictButton)
	analysisSection := container.NewHBox(
		t.TokenizeButton, t.FrequencyButton, t.PosButton, t.EntityButton,
	)
	visualSection := container.NewHBox(t.CloudButton, t.BarButton, t.PieButton)
	dictSection := container.NewBorder(nil, nil, nil,
		container.NewHBox(t.AddButton, t.RemoveButton),
		t.WordEntry,
	)

	topRow := container.NewHBox(
		fileSection,
		widget.NewSeparator(),
		analysisSection,
		widget.NewSeparator(),
		visualSection,
		widget.NewSeparator(),
		t.statusLabel,
	)

	t.container = container.NewVBox(topRow, dictSection)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) Word() string {
	return t.WordEntry.Text
}

func (t *Toolbar) SetStatus(status string) {
	t.statusLabel.SetText(status)
}

func (t *Toolbar) SetOpenHandler(handler func())      { t.openHandler = handler }
func (t *Toolbar) SetLoadDictHandler(handler func())  { t.loadDictHandler = handler }
func (t *Toolbar) SetTokenizeHandler(handler func())  { t.tokenizeHandler = handler }
func (t *Toolbar) SetFrequencyHandler(handler func()) { t.frequencyHandler = handler }
func (t *Toolbar) SetPosHandler(handler func())       { t.posHandler = handler }
func (t *Toolbar) SetEntityHandler(handler func())    { t.entityHandler = handler }
func (t *Toolbar) SetCloudHandler(handler func())     { t.cloudHandler = handler }

func (t *Toolbar) SetChartHandler(handler func(kind string)) {
	t.chartHandler = handler
}

func (t *Toolbar) SetDictEditHandler(handler func(word, action string)) {
	t.dictEditHandler = handler
}

func (t *Toolbar) onOpen() {
	if t.openHandler != nil {
		t.openHandler()
	}
}

func (t *Toolbar) onLoadDict() {
	if t.loadDictHandler != nil {
		t.loadDictHandler()
	}
}

func (t *Toolbar) onTokenize() {
	if t.tokenizeHandler != nil {
		t.tokenizeHandler()
	}
}

func (t *Toolbar) onFrequency() {
	if t.frequencyHandler != nil {
		t.frequencyHandler()
	}
}

func (t *Toolbar) onPos() {
	if t.posHandler != nil {
		t.posHandler()
	}
}

func (t *Toolbar) onEntities() {
	if t.entityHandler != nil {
		t.entityHandler()
	}
}

func (t *Toolbar) onCloud() {
	if t.cloudHandler != nil {
		t.cloudHandler()
	}
}

func (t *Toolbar) onChart(kind string) {
	if t.chartHandler != nil {
		t.chartHandler(kind)
	}
}

func (t *Toolbar) onDictEdit(action string) {
	if t.dictEditHandler != nil {
		t.dictEditHandler(t.Word(), action)
	}
}
