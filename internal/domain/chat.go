package domain

// ChatState tags what the conversation expects from the user's next text message.
type ChatState string

const (
	ChatStateIdle                             ChatState = "IDLE"
	ChatStateAwaitingDictionaryName           ChatState = "AWAITING_DICTIONARY_NAME"
	ChatStateAwaitingWord                     ChatState = "AWAITING_WORD"
	ChatStateAwaitingTranslation              ChatState = "AWAITING_TRANSLATION"
	ChatStateAwaitingAnswer                   ChatState = "AWAITING_ANSWER"
	ChatStateAwaitingTranslationDirectionWord ChatState = "AWAITING_TRANSLATION_DIRECTION_WORD"
	ChatStateAwaitingDeleteWord               ChatState = "AWAITING_DELETE_WORD"
	ChatStateAwaitingSaveTarget               ChatState = "AWAITING_SAVE_TARGET"
)

func (s ChatState) String() string { return string(s) }

func (s ChatState) IsValid() bool {
	switch s {
	case ChatStateIdle, ChatStateAwaitingDictionaryName, ChatStateAwaitingWord,
		ChatStateAwaitingTranslation, ChatStateAwaitingAnswer,
		ChatStateAwaitingTranslationDirectionWord, ChatStateAwaitingDeleteWord,
		ChatStateAwaitingSaveTarget:
		return true
	}
	return false
}

// TranslationDirection selects source and target language of a lookup.
type TranslationDirection string

const (
	DirectionToEnglish TranslationDirection = "ru-en"
	DirectionToRussian TranslationDirection = "en-ru"
)

func (d TranslationDirection) String() string { return string(d) }

// Languages returns the source and target language codes.
func (d TranslationDirection) Languages() (source, target string) {
	if d == DirectionToEnglish {
		return "ru", "en"
	}
	return "en", "ru"
}
