// Package i18n holds the user-facing string table.
//
// A Catalog is bound to one language and handed to whoever renders text,
// so there is no process-wide "current language".
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang identifies a supported UI language
type Lang int

const (
	EN Lang = iota
	UK
	RU
)

// Message keys. Unknown keys render as themselves.
const (
	KeyLang        = "lang"
	KeyHours       = "hh"
	KeyMinutes     = "mm"
	KeySeconds     = "ss"
	KeyPowerOff    = "Power off"
	KeyHibernate   = "Hibernate"
	KeyRestart     = "Restart"
	KeyOnlyInts    = "Only int values!"
	KeyEnterTime   = "Enter time!"
	KeyStart       = "Start"
	KeyStop        = "Stop"
	KeyQuit        = "Quit"
	KeyTimeLeft    = "Time left"
	KeyFiring      = "Time is up"
	KeyMode        = "Mode"
	KeyPrompt      = "Prompt"
	KeyUnknownKey  = "Unknown command"
	KeyTimeEntered = "Time set"
)

var collection = map[string][3]string{
	KeyLang:      {"English", "Українська", "Русский"},
	KeyHours:     {"hh", "гг", "чч"},
	KeyMinutes:   {"mm", "хх", "мм"},
	KeySeconds:   {"ss", "сс", "сс"},
	KeyPowerOff:  {"Power off", "Відключення", "Выключение"},
	KeyHibernate: {"Hibernate", "Гібернація", "Гибернация"},
	KeyRestart:   {"Restart", "Рестарт", "Рестарт"},
	KeyOnlyInts:  {"Only int values!", "Тільки цілі числа!", "Только целые числа!"},
	KeyEnterTime: {"Enter time!", "Введіть час!", "Введите время!"},
	KeyStart:     {"Start", "Старт", "Старт"},
	KeyStop:      {"Stop", "Стоп", "Стоп"},
	KeyQuit:      {"Quit", "Вихід", "Выход"},
	KeyTimeLeft:  {"Time left", "Залишилось", "Осталось"},
	KeyFiring:    {"Time is up", "Час вийшов", "Время вышло"},
	KeyMode:      {"Mode", "Режим", "Режим"},
	KeyPrompt: {
		"Enter hh:mm:ss, then s to start/stop, p/h/r to pick the mode, q to quit",
		"Введіть гг:хх:сс, s - старт/стоп, p/h/r - режим, q - вихід",
		"Введите чч:мм:сс, s - старт/стоп, p/h/r - режим, q - выход",
	},
	KeyUnknownKey:  {"Unknown command", "Невідома команда", "Неизвестная команда"},
	KeyTimeEntered: {"Time set", "Час встановлено", "Время установлено"},
}

// supported is ordered by Lang; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Ukrainian,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// Match picks the closest supported language for a BCP 47 tag or a POSIX
// locale such as "uk_UA.UTF-8". Anything unrecognised falls back to English.
func Match(tag string) Lang {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" {
		return EN
	}

	t, err := language.Parse(tag)
	if err != nil {
		return EN
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return EN
	}
	return Lang(index)
}

// String returns the language's own name
func (l Lang) String() string {
	return New(l).Get(KeyLang)
}

// Catalog resolves message keys for one language
type Catalog struct {
	lang Lang
}

// New creates a catalog for lang. Unsupported values fall back to English.
func New(lang Lang) Catalog {
	if lang < EN || lang > RU {
		lang = EN
	}
	return Catalog{lang: lang}
}

// Lang returns the catalog's language
func (c Catalog) Lang() Lang {
	return c.lang
}

// Get returns the translation of key, or key itself if there is none
func (c Catalog) Get(key string) string {
	if texts, ok := collection[key]; ok {
		return texts[c.lang]
	}
	return key
}
