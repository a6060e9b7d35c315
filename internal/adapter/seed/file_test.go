package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/adapter/seed"
	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/model"
)

const validSeed = `
magazines:
  - name: Tech Weekly
    category: Technology
  - name: AFAR
    category: Travel
authors:
  - name: Ada
  - name: Grace
articles:
  - author: Ada
    magazine: Tech Weekly
    title: Why Rust Matters
  - author: Grace
    magazine: Tech Weekly
    title: Compilers for Everyone
  - author: Ada
    magazine: AFAR
    title: Hiking the Alps
`

func TestDecode_ValidSeed(t *testing.T) {
	// arrange
	reg := model.NewRegistry()
	b := catalog.NewBuilder(reg)

	// act
	counts, err := seed.Decode(strings.NewReader(validSeed), b)

	// assert
	require.NoError(t, err)
	assert.Equal(t, seed.Counts{Magazines: 2, Authors: 2, Articles: 3}, counts)
	assert.Len(t, reg.Articles(), 3)

	ada, ok := b.LookupAuthor("Ada")
	require.True(t, ok)
	areas, ok := ada.TopicAreas()
	require.True(t, ok)
	assert.Equal(t, []string{"Technology", "Travel"}, areas)

	top, ok := reg.TopPublisher()
	require.True(t, ok)
	assert.Equal(t, "Tech Weekly", top.Name())
}

func TestDecode_EmptyDocument(t *testing.T) {
	counts, err := seed.Decode(strings.NewReader(""), catalog.NewBuilder(model.NewRegistry()))

	require.NoError(t, err)
	assert.Equal(t, seed.Counts{}, counts)
}

func TestDecode_ErrorCategories(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		target  error
		notWant []error
		message string
	}{
		{
			name:    "magazine_name_not_text",
			doc:     "magazines:\n  - name: 42\n    category: Technology\n",
			target:  model.ErrMagazineNameType,
			notWant: []error{model.ErrWrongType, model.ErrValidation},
			message: "line 2",
		},
		{
			name:   "magazine_name_too_long",
			doc:    "magazines:\n  - name: A name that is far too long\n    category: Technology\n",
			target: model.ErrValidation,
		},
		{
			name:    "magazine_category_not_text",
			doc:     "magazines:\n  - name: Tech Weekly\n    category: [a, b]\n",
			target:  model.ErrWrongType,
			notWant: []error{model.ErrValidation},
		},
		{
			name:   "magazine_category_empty",
			doc:    "magazines:\n  - name: Tech Weekly\n    category: \"\"\n",
			target: model.ErrValidation,
		},
		{
			name:    "magazine_redeclared_with_other_category",
			doc:     "magazines:\n  - name: Vogue\n    category: Fashion\n  - name: Vogue\n    category: Travel\n",
			target:  model.ErrValidation,
			message: "line 5",
		},
		{
			name:   "author_name_not_text",
			doc:    "authors:\n  - name: true\n",
			target: model.ErrValidation,
		},
		{
			name:   "title_not_text",
			doc:    "magazines:\n  - name: Tech Weekly\n    category: Technology\nauthors:\n  - name: Ada\narticles:\n  - author: Ada\n    magazine: Tech Weekly\n    title: 12345\n",
			target: model.ErrValidation,
		},
		{
			name:   "title_too_short",
			doc:    "magazines:\n  - name: Tech Weekly\n    category: Technology\nauthors:\n  - name: Ada\narticles:\n  - author: Ada\n    magazine: Tech Weekly\n    title: Rust\n",
			target: model.ErrValidation,
		},
		{
			name:    "unknown_magazine_with_suggestion",
			doc:     "magazines:\n  - name: Tech Weekly\n    category: Technology\nauthors:\n  - name: Ada\narticles:\n  - author: Ada\n    magazine: Tech Weakly\n    title: Why Rust Matters\n",
			target:  model.ErrWrongType,
			message: `did you mean "Tech Weekly"?`,
		},
		{
			name:   "missing_author_reference",
			doc:    "magazines:\n  - name: Tech Weekly\n    category: Technology\narticles:\n  - magazine: Tech Weekly\n    title: Why Rust Matters\n",
			target: model.ErrWrongType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Decode(strings.NewReader(tt.doc), catalog.NewBuilder(model.NewRegistry()))

			require.ErrorIs(t, err, tt.target)
			for _, other := range tt.notWant {
				assert.NotErrorIs(t, err, other)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestDecode_RepeatedNamesCountOnce(t *testing.T) {
	doc := "magazines:\n  - name: Vogue\n    category: Fashion\n  - name: Vogue\n    category: Fashion\n" +
		"authors:\n  - name: Ada\n  - name: Ada\n"
	reg := model.NewRegistry()

	counts, err := seed.Decode(strings.NewReader(doc), catalog.NewBuilder(reg))

	require.NoError(t, err)
	assert.Equal(t, seed.Counts{Magazines: 1, Authors: 1}, counts)
	assert.Len(t, reg.Magazines(), 1)
}

func TestDecode_ConflictWithEarlierSource(t *testing.T) {
	b := catalog.NewBuilder(model.NewRegistry())
	_, err := b.Magazine("Vogue", "Fashion")
	require.NoError(t, err)

	_, err = seed.Decode(strings.NewReader("magazines:\n  - name: Vogue\n    category: Travel\n"), b)

	require.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), `"Fashion"`)
}

func TestFileSource_Populate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSeed), 0o600))
	reg := model.NewRegistry()

	src := seed.NewFileSource(path, nil)
	err := src.Populate(context.Background(), catalog.NewBuilder(reg))

	require.NoError(t, err)
	assert.Equal(t, "seed:"+path, src.Name())
	assert.Len(t, reg.Magazines(), 2)
}

func TestFileSource_MissingFile(t *testing.T) {
	src := seed.NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"), nil)

	err := src.Populate(context.Background(), catalog.NewBuilder(model.NewRegistry()))

	require.ErrorIs(t, err, os.ErrNotExist)
}
