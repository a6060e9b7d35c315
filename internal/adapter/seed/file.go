package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

// FileSource loads a YAML seed file describing magazines, authors and articles.
type FileSource struct {
	path   string
	logger ports.Logger
}

var _ ports.CatalogSource = (*FileSource)(nil)

// NewFileSource builds a seed source reading path.
func NewFileSource(path string, logger ports.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Name identifies the source in logs.
func (s *FileSource) Name() string {
	return "seed:" + s.path
}

// Populate reads the seed file into builder.
func (s *FileSource) Populate(ctx context.Context, builder *catalog.Builder) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	counts, err := Decode(f, builder)
	if err != nil {
		return fmt.Errorf("seed %s: %w", s.path, err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "seed loaded", "path", s.path, "magazines", counts.Magazines, "authors", counts.Authors, "articles", counts.Articles)
	}
	return nil
}

// Counts reports how many entities a seed document created. Repeated names count once.
type Counts struct {
	Magazines int
	Authors   int
	Articles  int
}

type document struct {
	Magazines []magazineEntry `yaml:"magazines"`
	Authors   []authorEntry   `yaml:"authors"`
	Articles  []articleEntry  `yaml:"articles"`
}

// Entries keep raw nodes so that values of the wrong kind can be told apart from
// values of the wrong shape.
type magazineEntry struct {
	Name     yaml.Node `yaml:"name"`
	Category yaml.Node `yaml:"category"`
}

type authorEntry struct {
	Name yaml.Node `yaml:"name"`
}

type articleEntry struct {
	Author   yaml.Node `yaml:"author"`
	Magazine yaml.Node `yaml:"magazine"`
	Title    yaml.Node `yaml:"title"`
}

// Decode parses a seed document from r and creates its entities through builder.
// Magazines and authors are created first; articles reference them by name.
func Decode(r io.Reader, builder *catalog.Builder) (Counts, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Counts{}, fmt.Errorf("decode seed: %w", err)
	}

	var counts Counts
	for i, entry := range doc.Magazines {
		name, ok := text(entry.Name)
		if !ok {
			return Counts{}, fmt.Errorf("magazines[%d]%s: %w", i, at(entry.Name), model.ErrMagazineNameType)
		}
		category, ok := text(entry.Category)
		if !ok {
			return Counts{}, fmt.Errorf("magazines[%d]%s: %w: magazine category must be a non-empty string", i, at(entry.Category), model.ErrWrongType)
		}
		// A repeated name refers to the magazine already declared, so it must agree on category.
		if existing, ok := builder.LookupMagazine(name); ok {
			if existing.Category() != category {
				return Counts{}, fmt.Errorf("magazines[%d]%s: %w: magazine %q already declared with category %q, got %q",
					i, at(entry.Category), model.ErrValidation, name, existing.Category(), category)
			}
			continue
		}
		if _, err := builder.Magazine(name, category); err != nil {
			return Counts{}, fmt.Errorf("magazines[%d]%s: %w", i, at(entry.Name), err)
		}
		counts.Magazines++
	}

	for i, entry := range doc.Authors {
		name, ok := text(entry.Name)
		if !ok {
			return Counts{}, fmt.Errorf("authors[%d]%s: %w: author name must be a non-empty string", i, at(entry.Name), model.ErrValidation)
		}
		if _, ok := builder.LookupAuthor(name); ok {
			continue
		}
		if _, err := builder.Author(name); err != nil {
			return Counts{}, fmt.Errorf("authors[%d]%s: %w", i, at(entry.Name), err)
		}
		counts.Authors++
	}

	for i, entry := range doc.Articles {
		author, err := resolveAuthor(builder, entry.Author)
		if err != nil {
			return Counts{}, fmt.Errorf("articles[%d]%s: %w", i, at(entry.Author), err)
		}
		magazine, err := resolveMagazine(builder, entry.Magazine)
		if err != nil {
			return Counts{}, fmt.Errorf("articles[%d]%s: %w", i, at(entry.Magazine), err)
		}
		title, ok := text(entry.Title)
		if !ok {
			return Counts{}, fmt.Errorf("articles[%d]%s: %w: article title must be a string", i, at(entry.Title), model.ErrValidation)
		}
		if _, err := author.AddArticle(magazine, title); err != nil {
			return Counts{}, fmt.Errorf("articles[%d]%s: %w", i, at(entry.Title), err)
		}
		counts.Articles++
	}

	return counts, nil
}

func resolveAuthor(builder *catalog.Builder, node yaml.Node) (*model.Author, error) {
	name, ok := text(node)
	if !ok {
		return nil, fmt.Errorf("%w: article author must name an author", model.ErrWrongType)
	}
	author, ok := builder.LookupAuthor(name)
	if !ok {
		return nil, unknown("author", name, builder.SuggestAuthor(name))
	}
	return author, nil
}

func resolveMagazine(builder *catalog.Builder, node yaml.Node) (*model.Magazine, error) {
	name, ok := text(node)
	if !ok {
		return nil, fmt.Errorf("%w: article magazine must name a magazine", model.ErrWrongType)
	}
	magazine, ok := builder.LookupMagazine(name)
	if !ok {
		return nil, unknown("magazine", name, builder.SuggestMagazine(name))
	}
	return magazine, nil
}

func unknown(kind, name, suggestion string) error {
	if suggestion != "" {
		return fmt.Errorf("%w: unknown %s %q (did you mean %q?)", model.ErrWrongType, kind, name, suggestion)
	}
	return fmt.Errorf("%w: unknown %s %q", model.ErrWrongType, kind, name)
}

// text returns the node's value when it is a string scalar.
func text(node yaml.Node) (string, bool) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", false
	}
	return node.Value, true
}

func at(node yaml.Node) string {
	if node.Line == 0 {
		return ""
	}
	return fmt.Sprintf(" (line %d)", node.Line)
}
