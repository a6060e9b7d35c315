package feeds_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/adapter/feeds"
	"magazine-catalog/internal/adapter/logging"
	"magazine-catalog/internal/domain/catalog"
	"magazine-catalog/internal/domain/model"
	"magazine-catalog/internal/domain/ports"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Go Weekly Newsletter</title>
    <category>Programming</category>
    <item>
      <title><![CDATA[Why <em>Go</em> generics   matter]]></title>
      <dc:creator>Rob Pike</dc:creator>
    </item>
    <item>
      <title>Tiny</title>
      <dc:creator>Rob Pike</dc:creator>
    </item>
    <item>
      <title>Scheduling goroutines</title>
      <author>ken@example.com (Ken Thompson)</author>
    </item>
  </channel>
</rss>`

func quietLogger() *logging.SLogger {
	return logging.New(nil)
}

func serve(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSSource_Populate(t *testing.T) {
	// arrange
	srv := serve(t, http.StatusOK, "application/rss+xml", sampleFeed)
	reg := model.NewRegistry()
	b := catalog.NewBuilder(reg)
	src := feeds.NewRSSSource(srv.URL, "Go Weekly", "", time.Second, quietLogger())

	// act
	err := src.Populate(context.Background(), b)

	// assert
	require.NoError(t, err)
	magazine, ok := b.LookupMagazine("Go Weekly")
	require.True(t, ok)
	assert.Equal(t, "Programming", magazine.Category())
	titles, ok := magazine.ArticleTitles()
	require.True(t, ok)
	assert.Equal(t, []string{"Why Go generics matter", "Scheduling goroutines"}, titles)

	_, ok = b.LookupAuthor("Ken Thompson")
	assert.True(t, ok)
}

func TestRSSSource_DecodesDeclaredCharset(t *testing.T) {
	feed := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<rss version=\"2.0\" xmlns:dc=\"http://purl.org/dc/elements/1.1/\"><channel>" +
		"<item><title>Caf\xe9 culture in Lisbon</title><dc:creator>Jos\xe9 Saramago</dc:creator></item>" +
		"</channel></rss>"
	srv := serve(t, http.StatusOK, "application/rss+xml", feed)
	b := catalog.NewBuilder(model.NewRegistry())

	err := feeds.NewRSSSource(srv.URL, "Lisboa", "Travel", time.Second, quietLogger()).Populate(context.Background(), b)

	require.NoError(t, err)
	_, ok := b.LookupAuthor("José Saramago")
	assert.True(t, ok)
	magazine, _ := b.LookupMagazine("Lisboa")
	titles, ok := magazine.ArticleTitles()
	require.True(t, ok)
	assert.Equal(t, []string{"Café culture in Lisbon"}, titles)
}

func TestRSSSource_ConfiguredCategoryWins(t *testing.T) {
	srv := serve(t, http.StatusOK, "application/rss+xml", sampleFeed)
	b := catalog.NewBuilder(model.NewRegistry())

	err := feeds.NewRSSSource(srv.URL, "Go Weekly", "Technology", time.Second, quietLogger()).Populate(context.Background(), b)

	require.NoError(t, err)
	magazine, _ := b.LookupMagazine("Go Weekly")
	assert.Equal(t, "Technology", magazine.Category())
}

func TestRSSSource_BadStatus(t *testing.T) {
	srv := serve(t, http.StatusBadGateway, "text/plain", "upstream down")

	err := feeds.NewRSSSource(srv.URL, "Go Weekly", "Technology", time.Second, quietLogger()).
		Populate(context.Background(), catalog.NewBuilder(model.NewRegistry()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRSSSource_NoUsableItems(t *testing.T) {
	srv := serve(t, http.StatusOK, "application/rss+xml", `<rss><channel><item><title>Tiny</title><dc:creator xmlns:dc="http://purl.org/dc/elements/1.1/">Rob</dc:creator></item></channel></rss>`)
	reg := model.NewRegistry()

	err := feeds.NewRSSSource(srv.URL, "Go Weekly", "Technology", time.Second, quietLogger()).
		Populate(context.Background(), catalog.NewBuilder(reg))

	require.Error(t, err)
	assert.Empty(t, reg.Articles())
}

func TestDevToSource_Populate(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title": "Understanding B-Trees", "user": {"name": "Grace Hopper", "username": "grace"}},
			{"title": "Tries explained simply", "user": {"name": "", "username": "alan"}},
			{"title": "Nope", "user": {"name": "Grace Hopper"}}
		]`))
	}))
	t.Cleanup(srv.Close)

	reg := model.NewRegistry()
	b := catalog.NewBuilder(reg)
	src := feeds.NewDevToSource(srv.URL, "algorithms", "DEV Algorithms", 10, time.Second, quietLogger())

	err := src.Populate(context.Background(), b)

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "tag=algorithms")
	assert.Contains(t, gotQuery, "per_page=10")
	magazine, ok := b.LookupMagazine("DEV Algorithms")
	require.True(t, ok)
	assert.Equal(t, "algorithms", magazine.Category())
	assert.Len(t, magazine.Articles(), 2)
	_, ok = b.LookupAuthor("alan")
	assert.True(t, ok)
}

type stubSource struct {
	name  string
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Populate(context.Context, *catalog.Builder) error {
	s.calls++
	return s.err
}

func TestCompositeSource_ToleratesPartialFailure(t *testing.T) {
	failing := &stubSource{name: "failing", err: errors.New("boom")}
	working := &stubSource{name: "working"}

	err := feeds.NewCompositeSource(quietLogger(), failing, nil, working).
		Populate(context.Background(), catalog.NewBuilder(model.NewRegistry()))

	require.NoError(t, err)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
}

func TestCompositeSource_FailsWhenAllFail(t *testing.T) {
	boom := errors.New("boom")
	sources := []ports.CatalogSource{
		&stubSource{name: "a", err: boom},
		&stubSource{name: "b", err: errors.New("bang")},
	}

	err := feeds.NewCompositeSource(quietLogger(), sources...).
		Populate(context.Background(), catalog.NewBuilder(model.NewRegistry()))

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "b: bang")
}
