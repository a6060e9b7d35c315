package usecase

import "magazine-catalog/internal/domain/model"

// Summary is a point-in-time digest of a publishing graph.
type Summary struct {
	Articles     int
	TopPublisher *MagazineSummary
	Magazines    []MagazineSummary
	Authors      []AuthorSummary
}

// MagazineSummary describes one magazine. ContributingAuthors is nil when no author
// has more than two articles in it.
type MagazineSummary struct {
	Name                string
	Category            string
	Titles              []string
	Contributors        []string
	ContributingAuthors []string
}

// AuthorSummary describes one author. TopicAreas is nil when the author has no magazines.
type AuthorSummary struct {
	Name       string
	Articles   int
	TopicAreas []string
}

// Summarize reads the registry's aggregate queries into a Summary. Only authors with at
// least one article are reachable from a registry, so only they are listed.
func Summarize(registry *model.Registry) Summary {
	articles := registry.Articles()
	summary := Summary{Articles: len(articles)}

	top, hasTop := registry.TopPublisher()
	topIndex := -1
	for i, magazine := range registry.Magazines() {
		summary.Magazines = append(summary.Magazines, summarizeMagazine(magazine))
		if hasTop && magazine == top {
			topIndex = i
		}
	}
	if topIndex >= 0 {
		summary.TopPublisher = &summary.Magazines[topIndex]
	}

	seen := make(map[*model.Author]struct{})
	for _, article := range articles {
		author := article.Author()
		if _, ok := seen[author]; ok {
			continue
		}
		seen[author] = struct{}{}
		areas, _ := author.TopicAreas()
		summary.Authors = append(summary.Authors, AuthorSummary{
			Name:       author.Name(),
			Articles:   len(author.Articles()),
			TopicAreas: areas,
		})
	}

	return summary
}

func summarizeMagazine(magazine *model.Magazine) MagazineSummary {
	titles, _ := magazine.ArticleTitles()
	ms := MagazineSummary{
		Name:         magazine.Name(),
		Category:     magazine.Category(),
		Titles:       titles,
		Contributors: authorNames(magazine.Contributors()),
	}
	if contributing, ok := magazine.ContributingAuthors(); ok {
		ms.ContributingAuthors = authorNames(contributing)
	}
	return ms
}

func authorNames(authors []*model.Author) []string {
	names := make([]string, 0, len(authors))
	for _, author := range authors {
		names = append(names, author.Name())
	}
	return names
}
