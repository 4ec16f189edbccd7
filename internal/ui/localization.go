package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAddItem         = "add_item"
	KeyEditItem        = "edit_item"
	KeyDeleteItem      = "delete_item"
	KeyDeleteConfirm   = "delete_confirm"
	KeyItemLabel       = "item_label"
	KeyItemImage       = "item_image"
	KeyAxisSettings    = "axis_settings"
	KeyAxisName        = "axis_name"
	KeyNegativeLabel   = "negative_label"
	KeyPositiveLabel   = "positive_label"
	KeyRangeMin        = "range_min"
	KeyRangeMax        = "range_max"
	KeyXAxis           = "x_axis"
	KeyYAxis           = "y_axis"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyDataDirectory   = "data_directory"
	KeyAutoSave        = "auto_save"
	KeySnapToGrid      = "snap_to_grid"
	KeyGridStep        = "grid_step"
	KeySave            = "save"
	KeySaveNow         = "save_now"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyRevealBoardFile = "reveal_board_file"
	KeySettingsSaved   = "settings_saved"
	KeyBoardSaved      = "board_saved"
	KeyBoardReloaded   = "board_reloaded"
	KeyLoadFailed      = "load_failed"
	KeySaveFailed      = "save_failed"
	KeyEmptyLabel      = "empty_label"
	KeyDegenerateRange = "degenerate_range"
	KeyInvalidNumber   = "invalid_number"
	KeySelectItemFirst = "select_item_first"
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
		KeyAppTitle:        "Quadrant Ranking",
		KeyAddItem:         "Add Item",
		KeyEditItem:        "Edit Item",
		KeyDeleteItem:      "Delete Item",
		KeyDeleteConfirm:   "Delete selected item?",
		KeyItemLabel:       "Label",
		KeyItemImage:       "Image",
		KeyAxisSettings:    "Axis Settings",
		KeyAxisName:        "Axis name",
		KeyNegativeLabel:   "Negative side label",
		KeyPositiveLabel:   "Positive side label",
		KeyRangeMin:        "Range min",
		KeyRangeMax:        "Range max",
		KeyXAxis:           "X Axis",
		KeyYAxis:           "Y Axis",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyDataDirectory:   "Data Directory",
		KeyAutoSave:        "Save automatically after every change",
		KeySnapToGrid:      "Snap items to grid",
		KeyGridStep:        "Grid step",
		KeySave:            "Save",
		KeySaveNow:         "Save Now",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyRevealBoardFile: "Reveal Board File",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyBoardSaved:      "Board saved",
		KeyBoardReloaded:   "Board reloaded from disk",
		KeyLoadFailed:      "Could not load board, starting empty",
		KeySaveFailed:      "Could not save board",
		KeyEmptyLabel:      "Label must not be empty",
		KeyDegenerateRange: "Range min must be less than max",
		KeyInvalidNumber:   "Not a valid number",
		KeySelectItemFirst: "Select an item first",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Квадрант Рейтинг",
		KeyAddItem:         "Добавить элемент",
		KeyEditItem:        "Изменить элемент",
		KeyDeleteItem:      "Удалить элемент",
		KeyDeleteConfirm:   "Удалить выбранный элемент?",
		KeyItemLabel:       "Название",
		KeyItemImage:       "Изображение",
		KeyAxisSettings:    "Настройки осей",
		KeyAxisName:        "Название оси",
		KeyNegativeLabel:   "Подпись отрицательной стороны",
		KeyPositiveLabel:   "Подпись положительной стороны",
		KeyRangeMin:        "Минимум диапазона",
		KeyRangeMax:        "Максимум диапазона",
		KeyXAxis:           "Ось X",
		KeyYAxis:           "Ось Y",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyDataDirectory:   "Папка данных",
		KeyAutoSave:        "Сохранять после каждого изменения",
		KeySnapToGrid:      "Привязка к сетке",
		KeyGridStep:        "Шаг сетки",
		KeySave:            "Сохранить",
		KeySaveNow:         "Сохранить сейчас",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyRevealBoardFile: "Показать файл доски",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyBoardSaved:      "Доска сохранена",
		KeyBoardReloaded:   "Доска перечитана с диска",
		KeyLoadFailed:      "Не удалось загрузить доску, запуск с пустой",
		KeySaveFailed:      "Не удалось сохранить доску",
		KeyEmptyLabel:      "Название не должно быть пустым",
		KeyDegenerateRange: "Минимум должен быть меньше максимума",
		KeyInvalidNumber:   "Недопустимое число",
		KeySelectItemFirst: "Сначала выберите элемент",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Quadrant Ranking",
		KeyAddItem:         "Adicionar item",
		KeyEditItem:        "Editar item",
		KeyDeleteItem:      "Excluir item",
		KeyDeleteConfirm:   "Excluir o item selecionado?",
		KeyItemLabel:       "Rótulo",
		KeyItemImage:       "Imagem",
		KeyAxisSettings:    "Configurações dos eixos",
		KeyAxisName:        "Nome do eixo",
		KeyNegativeLabel:   "Rótulo do lado negativo",
		KeyPositiveLabel:   "Rótulo do lado positivo",
		KeyRangeMin:        "Mínimo do intervalo",
		KeyRangeMax:        "Máximo do intervalo",
		KeyXAxis:           "Eixo X",
		KeyYAxis:           "Eixo Y",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyDataDirectory:   "Diretório de dados",
		KeyAutoSave:        "Salvar automaticamente após cada alteração",
		KeySnapToGrid:      "Ajustar itens à grade",
		KeyGridStep:        "Passo da grade",
		KeySave:            "Salvar",
		KeySaveNow:         "Salvar agora",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Navegar",
		KeyRevealBoardFile: "Mostrar arquivo da prancha",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyBoardSaved:      "Prancha salva",
		KeyBoardReloaded:   "Prancha recarregada do disco",
		KeyLoadFailed:      "Não foi possível carregar a prancha, iniciando vazia",
		KeySaveFailed:      "Não foi possível salvar a prancha",
		KeyEmptyLabel:      "O rótulo não pode ficar vazio",
		KeyDegenerateRange: "O mínimo deve ser menor que o máximo",
		KeyInvalidNumber:   "Número inválido",
		KeySelectItemFirst: "Selecione um item primeiro",
	}
}
