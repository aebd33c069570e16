package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/tubesaver/tubesaver/internal/config"
	"github.com/tubesaver/tubesaver/internal/fetch"
	"github.com/tubesaver/tubesaver/internal/model"
	"github.com/tubesaver/tubesaver/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	fetcher      fetch.Fetcher
	notifier     *Notifier
	log          *zap.Logger

	urlLabel *widget.Label
	urlEntry *widget.Entry
	audioBtn *widget.Button
	videoBtn *widget.Button

	// Status panel under the URL row (hidden while idle)
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetcher fetch.Fetcher, log *zap.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if log == nil {
		log = zap.NewNop()
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		fetcher:      fetcher,
		log:          log,
	}
	ui.notifier = NewNotifier(window, localization)

	fetcher.SetStatusCallback(ui.onStatusChange)
	fetcher.SetCompletionCallback(ui.onFetchComplete)

	ui.setupUI()
	return ui
}

// setupUI creates the window content
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyURLLabel))

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))

	// Two fixed-purpose format buttons; the labels are format names and
	// never translated
	ui.audioBtn = widget.NewButton(LabelAudioButton, func() {
		ui.onDownloadClick(model.KindAudio)
	})
	ui.videoBtn = widget.NewButton(LabelVideoButton, func() {
		ui.onDownloadClick(model.KindVideo)
	})

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons := container.NewHBox(ui.audioBtn, ui.videoBtn, settingsBtn)
	topPanel := container.NewBorder(nil, nil, ui.urlLabel, buttons, ui.urlEntry)

	// Status panel under the URL row (hidden by default)
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Hide()
	ui.statusContainer = container.NewHBox(ui.statusSpinner, container.NewPadded(ui.statusLabel))
	ui.statusContainer.Hide()

	content := container.NewVBox(topPanel, ui.statusContainer)

	ui.window.SetContent(content)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlLabel.SetText(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
}

// onDownloadClick starts a download for the given media kind
func (ui *RootUI) onDownloadClick(kind model.MediaKind) {
	rawURL := strings.TrimSpace(ui.urlEntry.Text)
	req := model.NewDownloadRequest(rawURL, kind)

	ui.fetcher.SetDownloadDirectory(ui.settings.GetDownloadDirectory())

	if err := ui.fetcher.Submit(req); err != nil {
		ui.log.Warn("request rejected", zap.String("request_id", req.ID), zap.Error(err))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyAlreadyInProgress)), ui.window.Canvas())
		return
	}

	ui.log.Info("request submitted",
		zap.String("request_id", req.ID),
		zap.String("kind", string(kind)))

	ui.setBusy(true)
}

// onStatusChange reflects a pipeline step in the status panel.
// Called from the fetch goroutine.
func (ui *RootUI) onStatusChange(status model.RequestStatus) {
	key, ok := statusTextKey(status)
	if !ok {
		return
	}
	message := ui.localization.GetText(key)

	fyne.Do(func() {
		ui.statusLabel.SetText(message)
		ui.statusSpinner.Show()
		ui.statusContainer.Show()
		ui.statusContainer.Refresh()
	})
}

// onFetchComplete handles the terminal result of a request.
// Called from the fetch goroutine.
func (ui *RootUI) onFetchComplete(req model.DownloadRequest, result model.DownloadResult) {
	ui.log.Info("request finished",
		zap.String("request_id", req.ID),
		zap.Bool("success", result.Success),
		zap.String("file", result.FilePath))

	fyne.Do(func() {
		ui.statusSpinner.Hide()
		ui.statusContainer.Hide()
		ui.setBusy(false)

		ui.notifier.Notify(result)

		if result.Success && ui.settings.GetRevealOnComplete() {
			if err := platform.OpenFileInManager(result.FilePath); err != nil {
				ui.log.Warn("failed to reveal file", zap.Error(err))
			}
		}
	})
}

// setBusy toggles the action buttons while a request is in flight
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.audioBtn.Disable()
		ui.videoBtn.Disable()
		return
	}
	ui.audioBtn.Enable()
	ui.videoBtn.Enable()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
	sd.Show()
}

// statusTextKey maps an active pipeline status to its localization key.
// Terminal statuses have no panel text.
func statusTextKey(status model.RequestStatus) (string, bool) {
	switch status {
	case model.StatusResolving:
		return KeyStatusResolving, true
	case model.StatusSelecting:
		return KeyStatusSelecting, true
	case model.StatusDownloading:
		return KeyStatusDownloading, true
	case model.StatusRenaming:
		return KeyStatusRenaming, true
	default:
		return "", false
	}
}
