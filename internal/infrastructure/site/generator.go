package site

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"NewsSentiment/internal/aggregate"
	"NewsSentiment/internal/domain"
	"NewsSentiment/internal/ports"
)

// Generator renders the static index page, one detail page per source,
// and a machine-readable data.json snapshot.
type Generator struct {
	outputDir string
	logger    *slog.Logger
	index     *template.Template
	source    *template.Template
	now       func() time.Time
}

var _ ports.SiteWriter = (*Generator)(nil)

// NewGenerator parses the embedded templates up front so template errors
// surface at startup.
func NewGenerator(outputDir string, log *slog.Logger) (*Generator, error) {
	index, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	source, err := template.New("source").Parse(sourceTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse source template: %w", err)
	}

	return &Generator{
		outputDir: outputDir,
		logger:    log,
		index:     index,
		source:    source,
		now:       time.Now,
	}, nil
}

// WriteSite renders everything into the output directory. The ranking
// drives the index card order; sources keep the configured feed order and
// back the per-source detail pages.
func (g *Generator) WriteSite(ctx context.Context, sources []domain.SourceArticles, ranking []domain.SourceStatistics) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write site: %w", err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	articlesBySource := make(map[string][]domain.Article, len(sources))
	for _, src := range sources {
		articlesBySource[src.Source] = src.Articles
	}

	if err := g.writeIndex(ranking); err != nil {
		return err
	}

	for _, stats := range ranking {
		if !stats.HasData() {
			continue
		}
		if err := g.writeSourcePage(stats, articlesBySource[stats.Source]); err != nil {
			return err
		}
	}

	if err := g.writeData(ranking, articlesBySource); err != nil {
		return err
	}

	g.info("site generated", "dir", g.outputDir, "sources", len(ranking))
	return nil
}

func (g *Generator) writeIndex(ranking []domain.SourceStatistics) error {
	view := indexView{GeneratedAt: g.now().UTC().Format("2006-01-02 15:04 UTC")}
	for _, stats := range ranking {
		view.TotalArticles += stats.ArticleCount
		view.Sources = append(view.Sources, newSourceCard(stats))
	}

	return g.render(g.index, "index.html", view)
}

func (g *Generator) writeSourcePage(stats domain.SourceStatistics, articles []domain.Article) error {
	view := sourcePageView{
		Source:   stats.Source,
		Count:    stats.ArticleCount,
		AvgScore: stats.AverageScore,
	}
	for _, article := range rankedForDisplay(articles) {
		view.Articles = append(view.Articles, articleView{
			Title:       article.Title,
			Link:        article.Link,
			Published:   article.PublishedAt.Format("2006-01-02"),
			Description: article.Description,
			Score:       article.SentimentScore,
			Label:       string(article.SentimentLabel),
		})
	}

	return g.render(g.source, sourceFilename(stats.Source), view)
}

func (g *Generator) writeData(ranking []domain.SourceStatistics, articlesBySource map[string][]domain.Article) error {
	snapshot := jsonSnapshot{GeneratedAt: g.now().UTC().Format(time.RFC3339)}
	for _, stats := range ranking {
		src := jsonSource{
			Name:        stats.Source,
			Count:       stats.ArticleCount,
			AvgScore:    stats.AverageScore,
			MinScore:    stats.MinScore,
			MaxScore:    stats.MaxScore,
			LabelCounts: map[string]int{},
		}
		for label, count := range stats.LabelCounts {
			src.LabelCounts[string(label)] = count
		}
		for _, article := range rankedForDisplay(articlesBySource[stats.Source]) {
			src.Articles = append(src.Articles, jsonArticle{
				Title:          article.Title,
				Link:           article.Link,
				Published:      article.PublishedAt.Format("2006-01-02"),
				Description:    article.Description,
				Source:         article.Source,
				SentimentScore: article.SentimentScore,
				SentimentLabel: string(article.SentimentLabel),
			})
		}
		snapshot.TotalArticles += stats.ArticleCount
		snapshot.Sources = append(snapshot.Sources, src)
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data.json: %w", err)
	}

	path := filepath.Join(g.outputDir, "data.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (g *Generator) render(tmpl *template.Template, filename string, view any) error {
	path := filepath.Join(g.outputDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := tmpl.Execute(file, view); err != nil {
		_ = file.Close()
		return fmt.Errorf("render %s: %w", filename, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	g.debug("page written", "path", path)
	return nil
}

// rankedForDisplay applies the within-source ranking: sentiment score
// descending, stable ties.
func rankedForDisplay(articles []domain.Article) []domain.Article {
	return aggregate.RankArticles(articles)
}

func sourceFilename(source string) string {
	return strings.ReplaceAll(strings.ToLower(source), " ", "_") + ".html"
}

func (g *Generator) info(msg string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Info(msg, args...)
	}
}

func (g *Generator) debug(msg string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}
