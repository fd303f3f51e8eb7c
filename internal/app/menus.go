package app

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Text...", func() {
			a.handlers.HandleOpenDocument()
		}),
		fyne.NewMenuItem("Load Dictionary...", func() {
			a.handlers.HandleLoadDictionary()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.fyneApp.Quit()
		}),
	)

	dictMenu := fyne.NewMenu("Dictionary",
		fyne.NewMenuItem("Show Entries", func() {
			words, err := a.dictionary.Words()
			if err != nil {
				a.guiManager.ShowError("Dictionary Error", err)
				return
			}
			body := "(empty)"
			if len(words) > 0 {
				body = strings.Join(words, "\n")
			}
			dialog.ShowInformation("User Dictionary", body, a.window)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About",
				fmt.Sprintf("%s %s\nChinese text exploration workbench", AppName, AppVersion),
				a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, dictMenu, helpMenu))
}
