package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyContext          = "context"
	KeyCounterName      = "counter_name"
	KeyAddNew           = "add_new"
	KeyRename           = "rename"
	KeyDelete           = "delete"
	KeyReset            = "reset"
	KeyResetAll         = "reset_all"
	KeySaveNow          = "save_now"
	KeySnapshot         = "snapshot"
	KeyRevealDataFile   = "reveal_data_file"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyCreate           = "create"
	KeyNotePlaceholder  = "note_placeholder"
	KeyNewContextTitle  = "new_context_title"
	KeyNewContextLabel  = "new_context_label"
	KeyRenameTitle      = "rename_title"
	KeyRenameLabel      = "rename_label"
	KeyDeleteTitle      = "delete_title"
	KeyDeleteConfirm    = "delete_confirm"
	KeyWarningTitle     = "warning_title"
	KeyNameExists       = "name_exists"
	KeyNameEmpty        = "name_empty"
	KeyCannotRename     = "cannot_rename_default"
	KeyCannotDelete     = "cannot_delete_default"
	KeyContextsSaved    = "contexts_saved"
	KeySaveFailed       = "save_failed"
	KeySnapshotCreated  = "snapshot_created"
	KeySnapshotFailed   = "snapshot_failed"
	KeyErrorOpeningFile = "error_opening_file"
	KeyDataFilePath     = "data_file_path"
	KeySnapshotDir      = "snapshot_dir"
	KeyConfirmDelete    = "confirm_delete_setting"
	KeySaveOnSwitch     = "save_on_switch_setting"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
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
		KeyAppTitle:         "Multi Counter",
		KeyContext:          "Context:",
		KeyCounterName:      "Counter %d",
		KeyAddNew:           "Add New",
		KeyRename:           "Rename",
		KeyDelete:           "Delete",
		KeyReset:            "Reset",
		KeyResetAll:         "Reset All",
		KeySaveNow:          "Save Now",
		KeySnapshot:         "Snapshot",
		KeyRevealDataFile:   "Reveal Data File",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyCreate:           "Create",
		KeyNotePlaceholder:  "Notes for this context...",
		KeyNewContextTitle:  "New Context",
		KeyNewContextLabel:  "Enter new context name:",
		KeyRenameTitle:      "Rename Context",
		KeyRenameLabel:      "Enter new name:",
		KeyDeleteTitle:      "Delete Context",
		KeyDeleteConfirm:    "Are you sure you want to delete '%s'? This cannot be undone.",
		KeyWarningTitle:     "Error",
		KeyNameExists:       "A context with this name already exists.",
		KeyNameEmpty:        "Context name cannot be empty.",
		KeyCannotRename:     "Cannot rename the 'Default' context.",
		KeyCannotDelete:     "Cannot delete the 'Default' context.",
		KeyContextsSaved:    "All contexts saved",
		KeySaveFailed:       "Saving failed",
		KeySnapshotCreated:  "Snapshot created",
		KeySnapshotFailed:   "Snapshot failed",
		KeyErrorOpeningFile: "Error opening file",
		KeyDataFilePath:     "Data File Path",
		KeySnapshotDir:      "Snapshot Directory",
		KeyConfirmDelete:    "Confirm before deleting a context",
		KeySaveOnSwitch:     "Save to disk on context switch",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Мульти-счётчик",
		KeyContext:          "Контекст:",
		KeyCounterName:      "Счётчик %d",
		KeyAddNew:           "Добавить",
		KeyRename:           "Переименовать",
		KeyDelete:           "Удалить",
		KeyReset:            "Сброс",
		KeyResetAll:         "Сбросить все",
		KeySaveNow:          "Сохранить",
		KeySnapshot:         "Снимок",
		KeyRevealDataFile:   "Показать файл данных",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyCreate:           "Создать",
		KeyNotePlaceholder:  "Заметки для этого контекста...",
		KeyNewContextTitle:  "Новый контекст",
		KeyNewContextLabel:  "Введите имя нового контекста:",
		KeyRenameTitle:      "Переименовать контекст",
		KeyRenameLabel:      "Введите новое имя:",
		KeyDeleteTitle:      "Удалить контекст",
		KeyDeleteConfirm:    "Удалить '%s'? Это действие нельзя отменить.",
		KeyWarningTitle:     "Ошибка",
		KeyNameExists:       "Контекст с таким именем уже существует.",
		KeyNameEmpty:        "Имя контекста не может быть пустым.",
		KeyCannotRename:     "Нельзя переименовать контекст 'Default'.",
		KeyCannotDelete:     "Нельзя удалить контекст 'Default'.",
		KeyContextsSaved:    "Все контексты сохранены",
		KeySaveFailed:       "Ошибка сохранения",
		KeySnapshotCreated:  "Снимок создан",
		KeySnapshotFailed:   "Ошибка создания снимка",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyDataFilePath:     "Путь к файлу данных",
		KeySnapshotDir:      "Каталог снимков",
		KeyConfirmDelete:    "Подтверждать удаление контекста",
		KeySaveOnSwitch:     "Сохранять на диск при смене контекста",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Multi Contador",
		KeyContext:          "Contexto:",
		KeyCounterName:      "Contador %d",
		KeyAddNew:           "Adicionar",
		KeyRename:           "Renomear",
		KeyDelete:           "Excluir",
		KeyReset:            "Zerar",
		KeyResetAll:         "Zerar Tudo",
		KeySaveNow:          "Salvar Agora",
		KeySnapshot:         "Snapshot",
		KeyRevealDataFile:   "Mostrar Arquivo de Dados",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyCreate:           "Criar",
		KeyNotePlaceholder:  "Notas para este contexto...",
		KeyNewContextTitle:  "Novo Contexto",
		KeyNewContextLabel:  "Digite o nome do novo contexto:",
		KeyRenameTitle:      "Renomear Contexto",
		KeyRenameLabel:      "Digite o novo nome:",
		KeyDeleteTitle:      "Excluir Contexto",
		KeyDeleteConfirm:    "Tem certeza de que deseja excluir '%s'? Isso não pode ser desfeito.",
		KeyWarningTitle:     "Erro",
		KeyNameExists:       "Já existe um contexto com este nome.",
		KeyNameEmpty:        "O nome do contexto não pode estar vazio.",
		KeyCannotRename:     "Não é possível renomear o contexto 'Default'.",
		KeyCannotDelete:     "Não é possível excluir o contexto 'Default'.",
		KeyContextsSaved:    "Todos os contextos salvos",
		KeySaveFailed:       "Falha ao salvar",
		KeySnapshotCreated:  "Snapshot criado",
		KeySnapshotFailed:   "Falha ao criar snapshot",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyDataFilePath:     "Caminho do Arquivo de Dados",
		KeySnapshotDir:      "Diretório de Snapshots",
		KeyConfirmDelete:    "Confirmar antes de excluir um contexto",
		KeySaveOnSwitch:     "Salvar em disco ao trocar de contexto",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
	}
}
