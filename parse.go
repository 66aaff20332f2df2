package htmltable

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dpotapov/htmltable/fetch"
)

// config holds the accumulated effect of every Option passed to ParseHTML.
type config struct {
	match         Matcher
	hasMatch      bool
	attrs         map[string]*string
	hasAttrs      bool
	displayedOnly bool
	extractLinks  LinkExtraction
	logger        *slog.Logger
	ctx           context.Context
}

// Option configures a ParseHTML call.
type Option func(*config)

// WithMatch restricts the result to tables whose own text, or a descendant
// table's own text, matches m (§4.5).
func WithMatch(m Matcher) Option {
	return func(c *config) {
		c.match = m
		c.hasMatch = true
	}
}

// WithAttrs restricts the result to tables whose source <table> attributes
// (or a descendant's) satisfy every name/value pair in attrs. A nil value
// requires the attribute be present with no value (§4.2, §4.5).
func WithAttrs(attrs map[string]*string) Option {
	return func(c *config) {
		c.attrs = attrs
		c.hasAttrs = true
	}
}

// WithDisplayedOnly elides tables, rows, and cells whose inline style
// declares "display: none" (§4.5).
func WithDisplayedOnly(v bool) Option {
	return func(c *config) { c.displayedOnly = v }
}

// WithExtractLinks turns anchors within the named row group into TLink
// elements instead of collapsing them to plain text (§4.5).
func WithExtractLinks(le LinkExtraction) Option {
	return func(c *config) { c.extractLinks = le }
}

// WithLogger sets the logger used for fetch diagnostics. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithContext sets the context governing a network fetch. The default is
// context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// ParseHTML extracts tables from source, which may be an http(s):// URL, a
// path to a local file, or literal HTML text — in that preference order
// (§6). Options filter and shape the result; with none given, every table
// in the document is returned, links collapsed to plain text.
func ParseHTML(source string, opts ...Option) ([]*Table, error) {
	cfg := &config{extractLinks: LinkExtractionNone}
	for _, opt := range opts {
		opt(cfg)
	}
	if !ValidLinkExtraction(cfg.extractLinks) {
		return nil, &InvalidExtractLinksError{Value: cfg.extractLinks}
	}

	html, err := resolveSource(cfg, source)
	if err != nil {
		return nil, err
	}

	toks := NewTokenizer(html)
	tables, meta := extractTables(toks, cfg.extractLinks)

	if cfg.displayedOnly {
		tables = applyDisplayedOnly(tables, meta)
	}
	if cfg.hasMatch {
		tables = filterTopLevel(tables, func(t *Table) bool { return survivesText(t, cfg.match) })
	}
	if cfg.hasAttrs {
		tables = filterTopLevel(tables, func(t *Table) bool { return survivesAttrs(t, cfg.attrs, meta) })
	}

	assignIdentity(tables)
	return tables, nil
}

func resolveSource(cfg *config, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx := cfg.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		html, err := fetch.URL(ctx, source, cfg.logger)
		if err != nil {
			return "", &FetchError{Source: source, Err: err}
		}
		return html, nil
	}
	if fetch.Exists(source) {
		html, err := fetch.File(source, cfg.logger)
		if err != nil {
			return "", &FetchError{Source: source, Err: err}
		}
		return html, nil
	}
	return source, nil
}
