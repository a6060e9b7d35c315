package model

// articleList is the back-reference list an Author or Magazine keeps of its articles.
type articleList []*Article

func (l *articleList) contains(a *Article) bool {
	for _, existing := range *l {
		if existing == a {
			return true
		}
	}
	return false
}

// remove drops the first occurrence of a, if any.
func (l *articleList) remove(a *Article) {
	for i, existing := range *l {
		if existing == a {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return
		}
	}
}

func (l *articleList) add(a *Article) {
	if !l.contains(a) {
		*l = append(*l, a)
	}
}

func (l articleList) snapshot() []*Article {
	out := make([]*Article, len(l))
	copy(out, l)
	return out
}

// side is one end of an article's relationship. backrefs returns nil for a nil receiver.
type side interface {
	backrefs() *articleList
}
