package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"hanlex/internal/analysis"
	"hanlex/internal/dict"
	"hanlex/internal/gui"
	"hanlex/internal/logger"
	"hanlex/internal/render"
)

const (
	AppName    = "Hanlex"
	AppID      = "com.textanalysis.hanlex"
	AppVersion = "1.0.0"

	WindowWidth  = 1100
	WindowHeight = 700
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  Config

	guiManager *gui.Manager
	session    *analysis.Session
	dictionary *dict.Manager
	wordCloud  *render.WordCloud
	freqChart  *render.FreqChart
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication(cfg Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"stopwords":  cfg.StopwordsPath,
		"user_dict":  cfg.UserDictPath,
		"pos_result": cfg.PosResultPath,
	})

	tokenizer, err := analysis.NewTokenizer(log)
	if err != nil {
		return nil, fmt.Errorf("initialize tokenizer: %w", err)
	}

	fontPath, err := render.ResolveFont(cfg.FontPath)
	if err != nil {
		// Charts still render with the default face; only the word
		// cloud is blocked, and it reports that when invoked.
		log.Warning("Application", "no CJK font resolved", map[string]interface{}{
			"configured": cfg.FontPath,
		})
		fontPath = cfg.FontPath
	}

	session := analysis.NewSession(tokenizer, log)
	dictionary := dict.NewManager(cfg.UserDictPath, log)
	wordCloud := render.NewWordCloud(fontPath, log)
	freqChart := render.NewFreqChart(fontPath, log)
	guiManager := gui.NewManager(window, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		guiManager: guiManager,
		session:    session,
		dictionary: dictionary,
		wordCloud:  wordCloud,
		freqChart:  freqChart,
		lifecycle:  NewLifecycle(guiManager, log),
	}

	application.setupHandlers()
	application.setupMenus()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.config, a.session, a.dictionary, a.wordCloud, a.freqChart, a.guiManager, a.logger)
	a.handlers = handlers

	a.guiManager.SetOpenHandler(handlers.HandleOpenDocument)
	a.guiManager.SetLoadDictHandler(handlers.HandleLoadDictionary)
	a.guiManager.SetTokenizeHandler(handlers.HandleTokenize)
	a.guiManager.SetFrequencyHandler(handlers.HandleFrequency)
	a.guiManager.SetPosHandler(handlers.HandlePosTagging)
	a.guiManager.SetEntityHandler(handlers.HandleEntities)
	a.guiManager.SetCloudHandler(handlers.HandleWordCloud)
	a.guiManager.SetChartHandler(handlers.HandleChart)
	a.guiManager.SetDictEditHandler(handlers.HandleDictEdit)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
