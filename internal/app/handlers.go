package app

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"hanlex/internal/analysis"
	"hanlex/internal/dict"
	"hanlex/internal/gui"
	"hanlex/internal/logger"
	"hanlex/internal/render"
)

// Tokenize output is truncated for display; full sequences run to
// hundreds of thousands of tokens for book-length documents.
const displayTokenLimit = 200

type Handlers struct {
	config     Config
	session    *analysis.Session
	dictionary *dict.Manager
	wordCloud  *render.WordCloud
	freqChart  *render.FreqChart
	guiManager *gui.Manager
	logger     logger.Logger
	entityTags analysis.TagSet
}

func NewHandlers(cfg Config, session *analysis.Session, dictionary *dict.Manager,
	wordCloud *render.WordCloud, freqChart *render.FreqChart,
	gm *gui.Manager, log logger.Logger) *Handlers {

	return &Handlers{
		config:     cfg,
		session:    session,
		dictionary: dictionary,
		wordCloud:  wordCloud,
		freqChart:  freqChart,
		guiManager: gm,
		logger:     log,
		entityTags: analysis.NewTagSet(cfg.EntityTags...),
	}
}

func (h *Handlers) HandleOpenDocument() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		h.guiManager.UpdateStatus("Loading document...")

		go func() {
			text, loadErr := h.session.LoadDocument(path)
			if loadErr != nil {
				h.guiManager.ShowError("Document Load Error", loadErr)
				h.guiManager.UpdateStatus("Ready")
				return
			}

			h.guiManager.SetResultText(fmt.Sprintf("Document loaded: %s (%d bytes)", path, len(text)))
			h.guiManager.UpdateStatus("Document loaded")
		}()
	}, h.guiManager.GetWindow())
}

func (h *Handlers) HandleLoadDictionary() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("Dictionary Load Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		go func() {
			if loadErr := h.session.LoadUserDict(path); loadErr != nil {
				h.guiManager.ShowError("Dictionary Load Error", loadErr)
				return
			}

			h.guiManager.ShowInfo("Dictionary", "Custom dictionary merged into the session vocabulary.")
			h.guiManager.UpdateStatus("Dictionary loaded")
		}()
	}, h.guiManager.GetWindow())
}

func (h *Handlers) HandleTokenize() {
	h.guiManager.UpdateStatus("Tokenizing...")

	go func() {
		tokens, err := h.session.Tokenize()
		if err != nil {
			h.guiManager.ShowError("Tokenize Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		h.guiManager.SetResultText(formatTokens(tokens))
		h.guiManager.UpdateStatus(fmt.Sprintf("Tokenized: %d tokens", len(tokens)))
	}()
}

func (h *Handlers) HandleFrequency() {
	h.guiManager.UpdateStatus("Counting frequencies...")

	go func() {
		freq, err := h.session.CountFrequencies(h.config.StopwordsPath)
		if err != nil {
			h.guiManager.ShowError("Frequency Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		h.guiManager.SetResultText(formatFrequencies(freq, h.config.TopN))
		h.guiManager.UpdateStatus(fmt.Sprintf("Counted: %d distinct words", freq.Len()))
	}()
}

func (h *Handlers) HandlePosTagging() {
	h.guiManager.UpdateStatus("Tagging...")

	go func() {
		tagged, err := h.session.TagDocument()
		if err != nil {
			h.guiManager.ShowError("POS Tagging Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		lines, err := analysis.SaveTagged(tagged, h.config.PosResultPath)
		if err != nil {
			h.guiManager.ShowError("POS Tagging Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		h.guiManager.SetResultText(fmt.Sprintf(
			"POS tagging complete: %d tokens.\nResult saved to %s.",
			len(lines), h.config.PosResultPath,
		))
		h.guiManager.UpdateStatus("POS result saved")
	}()
}

func (h *Handlers) HandleEntities() {
	h.guiManager.UpdateStatus("Extracting entities...")

	go func() {
		tagged, err := h.session.TagDocument()
		if err != nil {
			h.guiManager.ShowError("Entity Extraction Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		lines := make([]string, len(tagged))
		for i, tt := range tagged {
			lines[i] = tt.String()
		}

		entities, malformed := analysis.FilterEntityLines(lines, h.entityTags)
		if len(malformed) > 0 {
			h.logger.Warning("Handlers", "malformed tagged lines skipped", map[string]interface{}{
				"count": len(malformed),
			})
		}

		h.guiManager.SetResultText(formatEntities(entities))
		h.guiManager.UpdateStatus(fmt.Sprintf("Entities: %d found", len(entities)))
	}()
}

func (h *Handlers) HandleWordCloud() {
	tokens := h.session.Tokens()
	if len(tokens) == 0 {
		h.guiManager.ShowError("Word Cloud Error", fmt.Errorf("no tokens: tokenize a document first"))
		return
	}

	h.guiManager.UpdateStatus("Rendering word cloud...")

	go func() {
		counts := make(map[string]int, len(tokens))
		for _, token := range tokens {
			if strings.TrimSpace(token) == "" {
				continue
			}
			counts[token]++
		}

		path, err := h.wordCloud.Render(counts, h.config.WordCloudPath)
		if err != nil {
			h.guiManager.ShowError("Word Cloud Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		h.guiManager.ShowImageFile(path)
		h.guiManager.UpdateStatus("Word cloud rendered")
	}()
}

func (h *Handlers) HandleChart(kind string) {
	freq := h.session.Frequencies()
	if freq == nil {
		h.guiManager.ShowError("Chart Error", fmt.Errorf("no frequencies: run word frequency first"))
		return
	}

	h.guiManager.UpdateStatus("Rendering chart...")

	go func() {
		path, err := h.freqChart.Render(freq.TopN(h.config.TopN), render.ChartKind(kind), h.config.ChartPath)
		if err != nil {
			h.guiManager.ShowError("Chart Error", err)
			h.guiManager.UpdateStatus("Ready")
			return
		}

		h.guiManager.ShowImageFile(path)
		h.guiManager.UpdateStatus(fmt.Sprintf("%s chart rendered", kind))
	}()
}

func (h *Handlers) HandleDictEdit(word, action string) {
	go func() {
		var err error
		switch action {
		case "add":
			err = h.dictionary.Add(word)
		case "remove":
			err = h.dictionary.Remove(word)
		default:
			err = fmt.Errorf("unknown dictionary action %q", action)
		}

		if err != nil {
			h.guiManager.ShowError("Dictionary Error", err)
			return
		}

		h.guiManager.UpdateStatus(fmt.Sprintf("Dictionary: %s %q", action, word))
	}()
}

func formatTokens(tokens []string) string {
	var b strings.Builder
	b.WriteString("Tokens:\n")

	shown := tokens
	truncated := false
	if len(shown) > displayTokenLimit {
		shown = shown[:displayTokenLimit]
		truncated = true
	}

	b.WriteString(strings.Join(shown, "/"))
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}

func formatFrequencies(freq *analysis.FreqTable, topN int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word frequency (top %d):\n", topN)

	for _, wc := range freq.TopN(topN) {
		fmt.Fprintf(&b, "%s: %d\n", wc.Word, wc.Count)
	}
	return b.String()
}

func formatEntities(entities []analysis.TaggedToken) string {
	if len(entities) == 0 {
		return "No entities found."
	}

	var b strings.Builder
	b.WriteString("Entities:\n")
	for _, e := range entities {
		fmt.Fprintf(&b, "%s (%s)\n", e.Token, e.Tag)
	}
	return b.String()
}
