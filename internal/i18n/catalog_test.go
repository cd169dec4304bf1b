package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogGet(t *testing.T) {
	tests := []struct {
		lang     Lang
		key      string
		expected string
	}{
		{EN, KeyHibernate, "Hibernate"},
		{UK, KeyHibernate, "Гібернація"},
		{RU, KeyHibernate, "Гибернация"},
		{UK, KeyEnterTime, "Введіть час!"},
		{RU, KeyOnlyInts, "Только целые числа!"},
		{EN, "no such key", "no such key"},
		{RU, "no such key", "no such key"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.lang).Get(tt.key))
		})
	}
}

func TestNewFallsBackToEnglish(t *testing.T) {
	c := New(Lang(12))
	assert.Equal(t, EN, c.Lang())
	assert.Equal(t, "Start", c.Get(KeyStart))
}

func TestCatalogsAreIndependent(t *testing.T) {
	uk := New(UK)
	en := New(EN)

	assert.Equal(t, "Стоп", uk.Get(KeyStop))
	assert.Equal(t, "Stop", en.Get(KeyStop))
}

func TestEveryKeyHasAllLanguages(t *testing.T) {
	for key, texts := range collection {
		for i, text := range texts {
			assert.NotEmpty(t, text, "key %q missing translation %d", key, i)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input    string
		expected Lang
	}{
		{"en", EN},
		{"en-US", EN},
		{"uk", UK},
		{"uk-UA", UK},
		{"uk_UA.UTF-8", UK},
		{"ru", RU},
		{"ru_RU.UTF-8", RU},
		{"", EN},
		{"C", EN},
		{"not a tag!", EN},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.input))
		})
	}
}

func TestLangString(t *testing.T) {
	assert.Equal(t, "English", EN.String())
	assert.Equal(t, "Українська", UK.String())
}
