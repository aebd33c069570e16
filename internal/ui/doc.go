package ui

// Package ui builds the Fyne interface: a fixed-size window with a URL
// entry and two action buttons, a busy panel while a request runs, modal
// result dialogs, and the settings dialog.
