package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/tubesaver/tubesaver/internal/model"
)

// Notifier maps download results onto fixed title/message pairs and shows
// them as modal dialogs. Pure presentation; no business logic.
type Notifier struct {
	window       fyne.Window
	localization *Localization
}

// NewNotifier creates a notifier bound to the main window
func NewNotifier(window fyne.Window, localization *Localization) *Notifier {
	return &Notifier{
		window:       window,
		localization: localization,
	}
}

// Notify shows the modal dialog for one result
func (n *Notifier) Notify(result model.DownloadResult) {
	title, message := n.dialogText(result)
	dialog.ShowInformation(title, message, n.window)
}

// dialogText returns the localized title and message for a result
func (n *Notifier) dialogText(result model.DownloadResult) (string, string) {
	if result.Success {
		return n.localization.GetText(KeySuccessTitle), n.localization.GetText(KeySuccessText)
	}

	switch result.Err {
	case model.ErrURLEmpty:
		return n.localization.GetText(KeyErrorURLTitle), n.localization.GetText(KeyErrorURLEmpty)
	case model.ErrAccessRestricted:
		return n.localization.GetText(KeyErrorAgeTitle), n.localization.GetText(KeyErrorAgeText)
	case model.ErrDownloadFailed:
		return n.localization.GetText(KeyErrorDownloadTitle), n.localization.GetText(KeyErrorDownloadText)
	default:
		return n.localization.GetText(KeyErrorURLTitle), n.localization.GetText(KeyErrorURLInvalid)
	}
}
