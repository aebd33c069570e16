package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tubesaver/tubesaver/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	cookiesEntry     *widget.Entry
	revealCheck      *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved is invoked after
// the settings have been persisted.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Cookies file for age-restricted content
	sd.cookiesEntry = widget.NewEntry()
	sd.cookiesEntry.SetPlaceHolder("cookies.txt")

	browseCookiesBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseCookies)
	cookiesRow := container.NewBorder(nil, nil, nil, browseCookiesBtn, sd.cookiesEntry)

	// Reveal completed file in the file manager
	sd.revealCheck = widget.NewCheck(sd.localization.GetText(KeyRevealOnComplete), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(sd.localization.GetText(KeyCookiesFile)),
		cookiesRow,

		widget.NewSeparator(),
		sd.revealCheck,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 340))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.cookiesEntry.SetText(sd.settings.GetCookiesFile())
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseCookies handles cookies file browsing
func (sd *SettingsDialog) onBrowseCookies() {
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		defer uri.Close()
		sd.cookiesEntry.SetText(uri.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	// Cookies file may legitimately be cleared
	sd.settings.SetCookiesFile(sd.cookiesEntry.Text)

	sd.settings.SetRevealOnComplete(sd.revealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
