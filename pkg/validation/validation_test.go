package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthor(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		wantErr bool
	}{
		{name: "empty is allowed", author: "", wantErr: false},
		{name: "single character rejected", author: "A", wantErr: true},
		{name: "plain name", author: "Jorge Luis Borges", wantErr: false},
		{name: "diacritics hyphen apostrophe", author: "Ana-María O'Brien", wantErr: false},
		{name: "initials with dots", author: "J. R. R. Tolkien", wantErr: false},
		{name: "digits rejected", author: "Author 3000", wantErr: true},
		{name: "too long", author: strings.Repeat("a", 101), wantErr: true},
		{name: "whitespace only treated as empty", author: "   ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Author(tt.author)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	assert.NoError(t, Title(""))
	assert.Error(t, Title("X"))
	assert.NoError(t, Title("El Aleph"))
	assert.Error(t, Title(strings.Repeat("t", 201)))
}

func TestYearRange(t *testing.T) {
	from, to := 2020, 2010
	assert.Error(t, YearRange(&from, &to))

	to = 2024
	assert.NoError(t, YearRange(&from, &to))

	assert.NoError(t, YearRange(nil, &to))
	assert.NoError(t, YearRange(&from, nil))
	assert.NoError(t, YearRange(nil, nil))
}

func TestLimit(t *testing.T) {
	assert.NoError(t, Limit(0))
	assert.NoError(t, Limit(1))
	assert.NoError(t, Limit(10000))
	assert.Error(t, Limit(-5))
	assert.Error(t, Limit(10001))
}

func TestHasCriteria(t *testing.T) {
	year := 1990
	assert.False(t, HasCriteria("", "", "", "", nil, nil))
	assert.False(t, HasCriteria("  ", "", "", "", nil, nil))
	assert.True(t, HasCriteria("Borges", "", "", "", nil, nil))
	assert.True(t, HasCriteria("", "Ficciones", "", "", nil, nil))
	assert.True(t, HasCriteria("", "", "es", "", nil, nil))
	assert.True(t, HasCriteria("", "", "", "", &year, nil))
}
