package translate

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDictionary(t *testing.T) {
	d := NewDictionary(
		Entry{"Hello", "one"},
		Entry{"Bye", "two"},
		Entry{"Hello", "three"},
	)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []Entry{{"Hello", "three"}, {"Bye", "two"}}, d.Entries())

	v, ok := d.Lookup("Hello")
	assert.True(t, ok)
	assert.Equal(t, "three", v)

	_, ok = d.Lookup("hello")
	assert.False(t, ok)
}

func TestDictionary_Nil(t *testing.T) {
	var d *Dictionary

	_, ok := d.Lookup("Hello")
	assert.False(t, ok)
	assert.Nil(t, d.Entries())
	assert.Equal(t, 0, d.Len())
}

func TestDefaultDictionaries_Languages(t *testing.T) {
	known := map[string]bool{}
	for _, l := range DefaultLanguages() {
		known[string(l.Code)] = true
	}
	for lang, dict := range DefaultDictionaries() {
		assert.True(t, known[string(lang)], lang)
		assert.Greater(t, dict.Len(), 0, lang)
	}
}
