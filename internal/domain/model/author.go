package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Author writes articles for any number of magazines.
type Author struct {
	id       uuid.UUID
	name     string
	articles articleList
}

// NewAuthor creates an author. The name cannot be changed afterwards.
func NewAuthor(name string) (*Author, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: author name must be a non-empty string", ErrValidation)
	}
	return &Author{id: uuid.New(), name: name}, nil
}

func (au *Author) constructed() bool {
	return au != nil && au.id != uuid.Nil
}

func (au *Author) backrefs() *articleList {
	if au == nil {
		return nil
	}
	return &au.articles
}

// ID returns the author's identity.
func (au *Author) ID() uuid.UUID {
	return au.id
}

// Name returns the author's name.
func (au *Author) Name() string {
	return au.name
}

// Articles returns a copy of the author's articles in the order they were attached.
func (au *Author) Articles() []*Article {
	return au.articles.snapshot()
}

// Magazines returns the distinct magazines the author has written for.
func (au *Author) Magazines() []*Magazine {
	seen := make(map[*Magazine]struct{}, len(au.articles))
	magazines := make([]*Magazine, 0, len(au.articles))
	for _, article := range au.articles {
		if _, ok := seen[article.magazine]; ok {
			continue
		}
		seen[article.magazine] = struct{}{}
		magazines = append(magazines, article.magazine)
	}
	return magazines
}

// AddArticle creates a new article by this author in magazine.
func (au *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	return NewArticle(au, magazine, title)
}

// TopicAreas returns the distinct categories of the author's magazines.
// ok is false when the author has not written for any magazine.
func (au *Author) TopicAreas() (categories []string, ok bool) {
	magazines := au.Magazines()
	if len(magazines) == 0 {
		return nil, false
	}

	categories = make([]string, 0, len(magazines))
	seen := make(map[string]struct{}, len(magazines))
	for _, magazine := range magazines {
		if _, dup := seen[magazine.category]; dup {
			continue
		}
		seen[magazine.category] = struct{}{}
		categories = append(categories, magazine.category)
	}
	return categories, true
}

func (au *Author) String() string {
	return fmt.Sprintf("Author(name=%q)", au.name)
}
