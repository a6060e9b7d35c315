package model

import "github.com/google/uuid"

// Registry records every article and magazine created through it, in creation order.
// Entries are never removed. A Registry is not safe for concurrent use.
type Registry struct {
	articles  []*Article
	magazines []*Magazine
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewMagazine validates name and category and registers a new magazine.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	magazine := &Magazine{id: uuid.New()}
	if err := magazine.SetName(name); err != nil {
		return nil, err
	}
	if err := magazine.SetCategory(category); err != nil {
		return nil, err
	}
	magazine.registry = r
	r.magazines = append(r.magazines, magazine)
	return magazine, nil
}

func (r *Registry) addArticle(article *Article) {
	r.articles = append(r.articles, article)
}

// Articles returns every article created against this registry.
func (r *Registry) Articles() []*Article {
	out := make([]*Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// Magazines returns every magazine created by this registry, including ones renamed since.
func (r *Registry) Magazines() []*Magazine {
	out := make([]*Magazine, len(r.magazines))
	copy(out, r.magazines)
	return out
}

// TopPublisher returns the magazine with the most articles. The earliest registered
// magazine wins a tie. ok is false when there are no magazines or none has an article.
func (r *Registry) TopPublisher() (top *Magazine, ok bool) {
	if len(r.magazines) == 0 {
		return nil, false
	}

	most := -1
	for _, magazine := range r.magazines {
		if n := len(magazine.articles); n > most {
			most = n
			top = magazine
		}
	}
	if most == 0 && top != nil {
		return nil, false
	}
	return top, true
}
