package chat

import "github.com/heartmarshall/wordtrainer/internal/config"

// messages is the reply text catalog of one locale. Values with verbs are
// fmt templates; user supplied parts are HTML-escaped before formatting.
type messages struct {
	Welcome          string
	Unknown          string
	DictsButton      string
	TranslateButton  string
	DictsMenu        string
	MyDicts          string
	CreateDict       string
	Back             string
	Home             string
	NoDicts          string
	ChooseDict       string
	AskDictName      string
	DictCreated      string // name
	DictExists       string // name
	DictMenu         string // name
	AddWordButton    string
	TrainButton      string
	ShowButton       string
	RatingButton     string
	DeleteButton     string
	AskTerm          string
	AskTranslation   string // term
	WordSaved        string // term, translations
	WordsHeader      string // name
	NoWords          string
	AskDeleteTerm    string
	WordDeleted      string // term
	WordNotFound     string // term
	EmptyDictionary  string
	Question         string // term, position, total
	Hint             string // translations
	ResultCorrect    string // correct, total
	ResultMistakes   string
	RatingReport     string // name, last, total, best, total
	NoRating         string
	TranslateMenu    string
	ToEnglishButton  string
	ToRussianButton  string
	AskTranslateWord string
	EmptyText        string
	Translated       string // source, translation
	NoTranslation    string // text
	TranslateFailed  string
	NoDictsToSave    string
	ChooseSaveTarget string
	NothingToSave    string
	SavedTo          string // term, translation, name
	DictNotFound     string // name
	Invalid          string // details
	StoreUnavailable string
	Internal         string
}

var catalogs = map[string]*messages{
	config.LocaleRU: {
		Welcome:          "Привет! Выбери, что хочешь делать:",
		Unknown:          "Не понял сообщение. Выбери действие в меню:",
		DictsButton:      "📚 Словари",
		TranslateButton:  "🌍 Перевести",
		DictsMenu:        "В разделе «Словари» доступно:",
		MyDicts:          "📚 Мои словари",
		CreateDict:       "➕ Создать словарь",
		Back:             "🔙 Назад",
		Home:             "🏠 Главное меню",
		NoDicts:          "У тебя пока нет словарей.",
		ChooseDict:       "Выбери словарь:",
		AskDictName:      "Напиши название нового словаря:",
		DictCreated:      "Словарь <b>%s</b> создан!",
		DictExists:       "Словарь <b>%s</b> уже есть. Придумай другое название:",
		DictMenu:         "Ты в словаре <b>%s</b>. Что хочешь сделать?",
		AddWordButton:    "➕ Добавить слово",
		TrainButton:      "🧠 Тренировка",
		ShowButton:       "📄 Показать слова",
		RatingButton:     "📈 Рейтинг",
		DeleteButton:     "🗑️ Удалить слово",
		AskTerm:          "Напиши английское слово для добавления:",
		AskTranslation:   "Теперь напиши перевод слова <b>%s</b>. Несколько вариантов раздели «;».",
		WordSaved:        "Слово <b>%s</b> — <b>%s</b> добавлено или обновлено. Рейтинг сброшен.",
		WordsHeader:      "<b>📄 Слова из словаря %s:</b>\n\n",
		NoWords:          "Слов в этом словаре пока нет.",
		AskDeleteTerm:    "Напиши английское слово, которое хочешь удалить:",
		WordDeleted:      "Слово <b>%s</b> удалено. Рейтинг сброшен.",
		WordNotFound:     "❌ Слово <b>%s</b> не найдено в этом словаре.",
		EmptyDictionary:  "В словаре нет слов для тренировки!",
		Question:         "Как переводится: <b>%s</b>? (%d/%d)",
		Hint:             "Подсказка: правильный ответ: %s",
		ResultCorrect:    "✅ Правильно: <b>%d/%d</b>\n",
		ResultMistakes:   "\n❌ Ошибки:\n",
		RatingReport:     "📈 Рейтинг для <b>%s</b>\nПоследняя попытка: %d/%d\nЛучшая попытка: %d/%d",
		NoRating:         "Нет данных о рейтинге для этого словаря.",
		TranslateMenu:    "Выбери направление перевода:",
		ToEnglishButton:  "🇷🇺 ➡ 🇬🇧 На английский",
		ToRussianButton:  "🇬🇧 ➡ 🇷🇺 На русский",
		AskTranslateWord: "Введи слово для перевода:",
		EmptyText:        "❌ Пожалуйста, введи слово.",
		Translated:       "Перевод: <b>%s</b> ➡ <b>%s</b>\n\nВыбери словарь для добавления:",
		NoTranslation:    "❌ Не удалось найти перевод для <b>%s</b>.",
		TranslateFailed:  "❌ Сервис перевода недоступен, попробуй позже.",
		NoDictsToSave:    "У тебя ещё нет словарей, сначала создай словарь!",
		ChooseSaveTarget: "Выбери словарь кнопкой ниже:",
		NothingToSave:    "Нечего сохранять, сначала переведи слово.",
		SavedTo:          "Слово <b>%s</b> — <b>%s</b> добавлено в словарь <b>%s</b>!",
		DictNotFound:     "❌ Словарь <b>%s</b> не найден.",
		Invalid:          "❌ Некорректный ввод: %s",
		StoreUnavailable: "⚠️ Хранилище временно недоступно. Повтори, пожалуйста, последнее действие.",
		Internal:         "⚠️ Что-то пошло не так. Попробуй ещё раз.",
	},
	config.LocaleEN: {
		Welcome:          "Hi! What would you like to do?",
		Unknown:          "I didn't get that. Pick an action from the menu:",
		DictsButton:      "📚 Dictionaries",
		TranslateButton:  "🌍 Translate",
		DictsMenu:        "Dictionaries:",
		MyDicts:          "📚 My dictionaries",
		CreateDict:       "➕ New dictionary",
		Back:             "🔙 Back",
		Home:             "🏠 Main menu",
		NoDicts:          "You have no dictionaries yet.",
		ChooseDict:       "Pick a dictionary:",
		AskDictName:      "Send the name of the new dictionary:",
		DictCreated:      "Dictionary <b>%s</b> created!",
		DictExists:       "Dictionary <b>%s</b> already exists. Try another name:",
		DictMenu:         "Dictionary <b>%s</b>. What next?",
		AddWordButton:    "➕ Add word",
		TrainButton:      "🧠 Train",
		ShowButton:       "📄 Show words",
		RatingButton:     "📈 Rating",
		DeleteButton:     "🗑️ Delete word",
		AskTerm:          "Send the English word to add:",
		AskTranslation:   "Now send the translation of <b>%s</b>. Separate several with \";\".",
		WordSaved:        "Saved <b>%s</b> — <b>%s</b>. Rating reset.",
		WordsHeader:      "<b>📄 Words in %s:</b>\n\n",
		NoWords:          "This dictionary has no words yet.",
		AskDeleteTerm:    "Send the English word to delete:",
		WordDeleted:      "Deleted <b>%s</b>. Rating reset.",
		WordNotFound:     "❌ <b>%s</b> is not in this dictionary.",
		EmptyDictionary:  "This dictionary has no words to train on!",
		Question:         "Translate: <b>%s</b> (%d/%d)",
		Hint:             "Hint: the answer is %s",
		ResultCorrect:    "✅ Correct: <b>%d/%d</b>\n",
		ResultMistakes:   "\n❌ Mistakes:\n",
		RatingReport:     "📈 Rating for <b>%s</b>\nLast attempt: %d/%d\nBest attempt: %d/%d",
		NoRating:         "No rating for this dictionary yet.",
		TranslateMenu:    "Choose a direction:",
		ToEnglishButton:  "🇷🇺 ➡ 🇬🇧 To English",
		ToRussianButton:  "🇬🇧 ➡ 🇷🇺 To Russian",
		AskTranslateWord: "Send a word to translate:",
		EmptyText:        "❌ Please send a word.",
		Translated:       "Translation: <b>%s</b> ➡ <b>%s</b>\n\nPick a dictionary to save it to:",
		NoTranslation:    "❌ No translation found for <b>%s</b>.",
		TranslateFailed:  "❌ The translation service is unavailable, try later.",
		NoDictsToSave:    "You have no dictionaries yet, create one first!",
		ChooseSaveTarget: "Pick a dictionary with the buttons below:",
		NothingToSave:    "Nothing to save, translate a word first.",
		SavedTo:          "Saved <b>%s</b> — <b>%s</b> to <b>%s</b>!",
		DictNotFound:     "❌ Dictionary <b>%s</b> not found.",
		Invalid:          "❌ Invalid input: %s",
		StoreUnavailable: "⚠️ Storage is temporarily unavailable. Please repeat your last action.",
		Internal:         "⚠️ Something went wrong. Please try again.",
	},
}

func catalog(locale string) *messages {
	if m, ok := catalogs[locale]; ok {
		return m
	}
	return catalogs[config.LocaleRU]
}
