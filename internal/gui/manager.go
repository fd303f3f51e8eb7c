package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"hanlex/internal/gui/components"
	"hanlex/internal/logger"
)

// Manager owns the widget tree and marshals every update through
// fyne.Do so handlers can run analysis off the UI thread.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	toolbar *components.Toolbar
	results *components.ResultsPane
	preview *components.ImageView
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	m := &Manager{
		window:  window,
		logger:  log,
		toolbar: components.NewToolbar(),
		results: components.NewResultsPane(),
		preview: components.NewImageView(),
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"preview_width":  components.PreviewWidth,
		"preview_height": components.PreviewHeight,
	})

	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	content := container.NewHSplit(
		m.results.GetContainer(),
		m.preview.GetContainer(),
	)
	content.SetOffset(0.45)

	return container.NewBorder(
		m.toolbar.GetContainer(),
		nil, nil, nil,
		content,
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) DictWord() string {
	return m.toolbar.Word()
}

func (m *Manager) SetOpenHandler(handler func())      { m.toolbar.SetOpenHandler(handler) }
func (m *Manager) SetLoadDictHandler(handler func())  { m.toolbar.SetLoadDictHandler(handler) }
func (m *Manager) SetTokenizeHandler(handler func())  { m.toolbar.SetTokenizeHandler(handler) }
func (m *Manager) SetFrequencyHandler(handler func()) { m.toolbar.SetFrequencyHandler(handler) }
func (m *Manager) SetPosHandler(handler func())       { m.toolbar.SetPosHandler(handler) }
func (m *Manager) SetEntityHandler(handler func())    { m.toolbar.SetEntityHandler(handler) }
func (m *Manager) SetCloudHandler(handler func())     { m.toolbar.SetCloudHandler(handler) }

func (m *Manager) SetChartHandler(handler func(kind string)) {
	m.toolbar.SetChartHandler(handler)
}

func (m *Manager) SetDictEditHandler(handler func(word, action string)) {
	m.toolbar.SetDictEditHandler(handler)
}

func (m *Manager) SetResultText(content string) {
	fyne.Do(func() {
		m.results.SetText(content)
	})
}

// ShowImageFile loads a rendered image file into the preview pane.
func (m *Manager) ShowImageFile(path string) {
	fyne.Do(func() {
		if err := m.preview.ShowFile(path); err != nil {
			m.logger.Error("GUIManager", err, map[string]interface{}{"path": path})
			dialog.ShowError(err, m.window)
			return
		}
		m.logger.Debug("GUIManager", "preview updated", map[string]interface{}{
			"path": path,
		})
	})
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.toolbar.SetStatus(status)
		m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
			"status": status,
		})
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, m.window)
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
