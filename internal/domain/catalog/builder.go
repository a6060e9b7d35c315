// Package catalog resolves name-based submissions from catalog sources into the
// publishing graph, sharing authors and magazines across sources within one run.
package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"magazine-catalog/internal/domain/model"
)

// maxSuggestionDistance bounds how different a name may be and still be suggested.
const maxSuggestionDistance = 3

// Builder indexes the authors and magazines it creates by name. Reusing an entity by name
// is a convenience of the import; the graph itself allows duplicate names.
type Builder struct {
	registry      *model.Registry
	authors       map[string]*model.Author
	authorNames   []string
	magazines     map[string]*model.Magazine
	magazineNames []string
}

// NewBuilder returns a Builder that creates entities in registry.
func NewBuilder(registry *model.Registry) *Builder {
	return &Builder{
		registry:  registry,
		authors:   make(map[string]*model.Author),
		magazines: make(map[string]*model.Magazine),
	}
}

// Registry returns the registry the builder populates.
func (b *Builder) Registry() *model.Registry {
	return b.registry
}

// Author returns the author called name, creating it on first use.
func (b *Builder) Author(name string) (*model.Author, error) {
	if author, ok := b.authors[name]; ok {
		return author, nil
	}
	author, err := model.NewAuthor(name)
	if err != nil {
		return nil, err
	}
	b.authors[name] = author
	b.authorNames = append(b.authorNames, name)
	return author, nil
}

// Magazine returns the magazine called name, creating it with category on first use.
// An existing magazine keeps its category.
func (b *Builder) Magazine(name, category string) (*model.Magazine, error) {
	if magazine, ok := b.magazines[name]; ok {
		return magazine, nil
	}
	magazine, err := b.registry.NewMagazine(name, category)
	if err != nil {
		return nil, err
	}
	b.magazines[name] = magazine
	b.magazineNames = append(b.magazineNames, name)
	return magazine, nil
}

// LookupAuthor returns a previously created author.
func (b *Builder) LookupAuthor(name string) (*model.Author, bool) {
	author, ok := b.authors[name]
	return author, ok
}

// LookupMagazine returns a previously created magazine.
func (b *Builder) LookupMagazine(name string) (*model.Magazine, bool) {
	magazine, ok := b.magazines[name]
	return magazine, ok
}

// Submit resolves the submission's author and magazine and creates the article.
func (b *Builder) Submit(s model.Submission) (*model.Article, error) {
	author, err := b.Author(s.Author)
	if err != nil {
		return nil, fmt.Errorf("author %q: %w", s.Author, err)
	}
	magazine, err := b.Magazine(s.Magazine, s.Category)
	if err != nil {
		return nil, fmt.Errorf("magazine %q: %w", s.Magazine, err)
	}
	article, err := author.AddArticle(magazine, s.Title)
	if err != nil {
		return nil, fmt.Errorf("article %q: %w", s.Title, err)
	}
	return article, nil
}

// SuggestAuthor returns the known author name closest to name, or "" if none is close.
func (b *Builder) SuggestAuthor(name string) string {
	return closest(name, b.authorNames)
}

// SuggestMagazine returns the known magazine name closest to name, or "" if none is close.
func (b *Builder) SuggestMagazine(name string) string {
	return closest(name, b.magazineNames)
}

func closest(name string, candidates []string) string {
	best, bestDist := "", maxSuggestionDistance+1
	needle := strings.ToLower(name)
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
