package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyEnterURL          = "enter_url"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyCookiesFile       = "cookies_file"
	KeyRevealOnComplete  = "reveal_on_complete"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyAlreadyInProgress = "already_in_progress"

	KeyStatusResolving   = "status_resolving"
	KeyStatusSelecting   = "status_selecting"
	KeyStatusDownloading = "status_downloading"
	KeyStatusRenaming    = "status_renaming"

	KeyErrorURLTitle      = "error_url_title"
	KeyErrorURLEmpty      = "error_url_empty"
	KeyErrorURLInvalid    = "error_url_invalid"
	KeyErrorAgeTitle      = "error_age_title"
	KeyErrorAgeText       = "error_age_text"
	KeyErrorDownloadTitle = "error_download_title"
	KeyErrorDownloadText  = "error_download_text"
	KeySuccessTitle       = "success_title"
	KeySuccessText        = "success_text"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "TubeSaver",
		KeyURLLabel:          "YouTube URL:",
		KeyEnterURL:          "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyCookiesFile:       "Cookies File",
		KeyRevealOnComplete:  "Reveal finished downloads",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyAlreadyInProgress: "A download is already in progress",

		KeyStatusResolving:   "Resolving URL...",
		KeyStatusSelecting:   "Selecting stream...",
		KeyStatusDownloading: "Downloading...",
		KeyStatusRenaming:    "Saving file...",

		KeyErrorURLTitle:      "URL Error",
		KeyErrorURLEmpty:      "The URL is empty.",
		KeyErrorURLInvalid:    "The URL is invalid.",
		KeyErrorAgeTitle:      "Age Restriction Error",
		KeyErrorAgeText:       "The video is age restricted.",
		KeyErrorDownloadTitle: "Download Error",
		KeyErrorDownloadText:  "The download failed.",
		KeySuccessTitle:       "Download Successful",
		KeySuccessText:        "The content was successfully downloaded.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "TubeSaver",
		KeyURLLabel:          "URL YouTube:",
		KeyEnterURL:          "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyCookiesFile:       "Файл cookies",
		KeyRevealOnComplete:  "Показывать готовые загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyAlreadyInProgress: "Загрузка уже выполняется",

		KeyStatusResolving:   "Разрешение URL...",
		KeyStatusSelecting:   "Выбор потока...",
		KeyStatusDownloading: "Загрузка...",
		KeyStatusRenaming:    "Сохранение файла...",

		KeyErrorURLTitle:      "Ошибка URL",
		KeyErrorURLEmpty:      "URL пуст.",
		KeyErrorURLInvalid:    "Неверный URL.",
		KeyErrorAgeTitle:      "Возрастное ограничение",
		KeyErrorAgeText:       "Видео имеет возрастное ограничение.",
		KeyErrorDownloadTitle: "Ошибка загрузки",
		KeyErrorDownloadText:  "Загрузка не удалась.",
		KeySuccessTitle:       "Загрузка завершена",
		KeySuccessText:        "Контент успешно загружен.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "TubeSaver",
		KeyURLLabel:          "URL do YouTube:",
		KeyEnterURL:          "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyCookiesFile:       "Arquivo de Cookies",
		KeyRevealOnComplete:  "Revelar downloads concluídos",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyAlreadyInProgress: "Um download já está em andamento",

		KeyStatusResolving:   "Resolvendo URL...",
		KeyStatusSelecting:   "Selecionando stream...",
		KeyStatusDownloading: "Baixando...",
		KeyStatusRenaming:    "Salvando arquivo...",

		KeyErrorURLTitle:      "Erro de URL",
		KeyErrorURLEmpty:      "A URL está vazia.",
		KeyErrorURLInvalid:    "A URL é inválida.",
		KeyErrorAgeTitle:      "Erro de Restrição de Idade",
		KeyErrorAgeText:       "O vídeo tem restrição de idade.",
		KeyErrorDownloadTitle: "Erro de Download",
		KeyErrorDownloadText:  "O download falhou.",
		KeySuccessTitle:       "Download Concluído",
		KeySuccessText:        "O conteúdo foi baixado com sucesso.",
	}
}
