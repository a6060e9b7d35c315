package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	minTitleLength = 5
	maxTitleLength = 50
	notAvailable   = "N/A"
)

// Article joins exactly one Author and one Magazine.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle validates the title and both references, wires the article into the
// author's and magazine's back-reference lists and registers it with the magazine's registry.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if n := utf8.RuneCountInString(title); n < minTitleLength || n > maxTitleLength {
		return nil, fmt.Errorf("%w: article title must be between %d and %d characters", ErrValidation, minTitleLength, maxTitleLength)
	}
	if !author.constructed() {
		return nil, errNotAuthor
	}
	if !magazine.constructed() {
		return nil, errNotMagazine
	}

	article := &Article{id: uuid.New(), title: title}
	rebind(article, &article.author, author)
	rebind(article, &article.magazine, magazine)
	magazine.registry.addArticle(article)
	return article, nil
}

var (
	errNotAuthor   = fmt.Errorf("%w: author must be an Author created with NewAuthor", ErrWrongType)
	errNotMagazine = fmt.Errorf("%w: magazine must be a Magazine created by a Registry", ErrWrongType)
)

// ID returns the article's identity.
func (a *Article) ID() uuid.UUID {
	return a.id
}

// Title returns the title given at construction.
func (a *Article) Title() string {
	return a.title
}

// SetTitle does nothing: the title is fixed at construction and the call is silently ignored.
func (a *Article) SetTitle(string) {}

// Author returns the current author.
func (a *Article) Author() *Author {
	return a.author
}

// SetAuthor moves the article to another author.
func (a *Article) SetAuthor(author *Author) error {
	if !author.constructed() {
		return errNotAuthor
	}
	rebind(a, &a.author, author)
	return nil
}

// Magazine returns the current magazine.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// SetMagazine moves the article to another magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if !magazine.constructed() {
		return errNotMagazine
	}
	rebind(a, &a.magazine, magazine)
	return nil
}

// rebind points slot at next and moves a from the previous side's back-references to
// next's. The previous side may be nil; next never lists a twice.
func rebind[S side](a *Article, slot *S, next S) {
	if refs := (*slot).backrefs(); refs != nil {
		refs.remove(a)
	}
	*slot = next
	next.backrefs().add(a)
}

func (a *Article) String() string {
	authorName, magazineName := notAvailable, notAvailable
	if a.author != nil {
		authorName = a.author.name
	}
	if a.magazine != nil {
		magazineName = a.magazine.name
	}
	return fmt.Sprintf("Article(title=%q, author=%q, magazine=%q)", a.title, authorName, magazineName)
}
