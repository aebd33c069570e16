package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Fallback Linux file managers when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// Characters stripped from provider titles before use as a file name
const unsafeFileNameChars = `/\:*?"<>|`

// MaxFileNameLength bounds sanitized file names (without extension)
const MaxFileNameLength = 180

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFileName turns a video title into a safe file name: path
// separators and shell-hostile characters are dropped, whitespace is
// collapsed, and the result is length-bounded.
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(unsafeFileNameChars, r) || r < 0x20 {
			continue
		}
		b.WriteRune(r)
	}

	clean := strings.Join(strings.Fields(b.String()), " ")
	if len(clean) > MaxFileNameLength {
		// Cut on a rune boundary so multi-byte titles stay valid UTF-8
		cut := MaxFileNameLength
		for cut > 0 && !utf8.RuneStart(clean[cut]) {
			cut--
		}
		clean = strings.TrimSpace(clean[:cut])
	}
	if clean == "" {
		clean = "download"
	}
	return clean
}

// ReplaceExtension renames path so its extension becomes newExt (with
// leading dot). A pre-existing file at the target path is deleted first;
// the returned flag reports whether that overwrite happened.
func ReplaceExtension(path, newExt string) (string, bool, error) {
	ext := filepath.Ext(path)
	newPath := strings.TrimSuffix(path, ext) + newExt
	if newPath == path {
		return path, false, nil
	}

	overwrote := false
	if _, err := os.Stat(newPath); err == nil {
		if err := os.Remove(newPath); err != nil {
			return "", false, fmt.Errorf("failed to remove existing file %s: %w", newPath, err)
		}
		overwrote = true
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", overwrote, fmt.Errorf("failed to rename %s: %w", path, err)
	}
	return newPath, overwrote, nil
}

// OpenFileInManager opens the file in the system file manager and
// highlights it where the platform supports selection
func OpenFileInManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens the directory containing the file.
// File selection is not standardized on Linux, so the parent is opened.
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
