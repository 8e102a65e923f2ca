package chat

import "strings"

// Callback data understood by HandleCallback. Prefixed forms carry a
// dictionary name after the colon.
const (
	CallbackMainMenu      = "main_menu"
	CallbackMenuDicts     = "menu_dicts"
	CallbackListDicts     = "list_dicts"
	CallbackCreateDict    = "create_dict"
	CallbackMenuTranslate = "menu_translate"
	CallbackToEnglish     = "to_en"
	CallbackToRussian     = "to_ru"

	PrefixDictionary = "dict"
	PrefixAddWord    = "add"
	PrefixTrain      = "train"
	PrefixShowWords  = "show"
	PrefixRating     = "rate"
	PrefixDeleteWord = "del"
	PrefixSave       = "save_trans"
)

// CommandStart registers the user and opens the main menu.
const CommandStart = "/start"

func withName(prefix, name string) string {
	return prefix + ":" + name
}

// splitCallback separates "prefix:name". Names may contain colons.
func splitCallback(data string) (prefix, name string) {
	prefix, name, found := strings.Cut(data, ":")
	if !found {
		return data, ""
	}
	return prefix, name
}
