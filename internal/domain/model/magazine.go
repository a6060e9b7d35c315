package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	minMagazineNameLength = 2
	maxMagazineNameLength = 16

	// contributingThreshold is the article count an author must exceed to count as contributing.
	contributingThreshold = 2
)

// Magazine publishes articles. Magazines are created by a Registry.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	articles articleList
	registry *Registry
}

func (m *Magazine) constructed() bool {
	return m != nil && m.registry != nil
}

func (m *Magazine) backrefs() *articleList {
	if m == nil {
		return nil
	}
	return &m.articles
}

// ID returns the magazine's identity.
func (m *Magazine) ID() uuid.UUID {
	return m.id
}

// Name returns the current name.
func (m *Magazine) Name() string {
	return m.name
}

// SetName renames the magazine. The name must be 2 to 16 characters long.
func (m *Magazine) SetName(name string) error {
	if n := utf8.RuneCountInString(name); n < minMagazineNameLength || n > maxMagazineNameLength {
		return fmt.Errorf("%w: magazine name must be between %d and %d characters", ErrValidation, minMagazineNameLength, maxMagazineNameLength)
	}
	m.name = name
	return nil
}

// Category returns the current category.
func (m *Magazine) Category() string {
	return m.category
}

// SetCategory changes the category. It must not be empty.
func (m *Magazine) SetCategory(category string) error {
	if category == "" {
		return fmt.Errorf("%w: magazine category must be a non-empty string", ErrValidation)
	}
	m.category = category
	return nil
}

// Articles returns a copy of the magazine's articles in the order they were attached.
func (m *Magazine) Articles() []*Article {
	return m.articles.snapshot()
}

// Contributors returns the distinct authors who have written for the magazine.
func (m *Magazine) Contributors() []*Author {
	authors, _ := m.tally()
	return authors
}

// ArticleTitles returns the titles of the magazine's articles.
// ok is false when the magazine has no articles.
func (m *Magazine) ArticleTitles() (titles []string, ok bool) {
	if len(m.articles) == 0 {
		return nil, false
	}
	titles = make([]string, 0, len(m.articles))
	for _, article := range m.articles {
		titles = append(titles, article.title)
	}
	return titles, true
}

// ContributingAuthors returns the authors with more than two articles in the magazine.
// Authors are told apart by identity, not by name. ok is false when nobody qualifies.
func (m *Magazine) ContributingAuthors() (authors []*Author, ok bool) {
	order, counts := m.tally()
	for _, author := range order {
		if counts[author] > contributingThreshold {
			authors = append(authors, author)
		}
	}
	if len(authors) == 0 {
		return nil, false
	}
	return authors, true
}

// tally counts articles per author, keeping the order in which authors first appear.
func (m *Magazine) tally() ([]*Author, map[*Author]int) {
	order := make([]*Author, 0, len(m.articles))
	counts := make(map[*Author]int, len(m.articles))
	for _, article := range m.articles {
		if _, seen := counts[article.author]; !seen {
			order = append(order, article.author)
		}
		counts[article.author]++
	}
	return order, counts
}

func (m *Magazine) String() string {
	return fmt.Sprintf("Magazine(name=%q, category=%q)", m.name, m.category)
}
