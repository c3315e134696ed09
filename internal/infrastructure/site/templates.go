package site

import "NewsSentiment/internal/domain"

type indexView struct {
	GeneratedAt   string
	TotalArticles int
	Sources       []sourceCard
}

type sourceCard struct {
	Name          string
	Filename      string
	HasData       bool
	Count         int
	AvgScore      float64
	MinScore      float64
	MaxScore      float64
	MarkerPercent float64
	Labels        []labelCount
}

type labelCount struct {
	Label string
	Count int
}

func newSourceCard(stats domain.SourceStatistics) sourceCard {
	card := sourceCard{
		Name:     stats.Source,
		Filename: sourceFilename(stats.Source),
		HasData:  stats.HasData(),
		Count:    stats.ArticleCount,
		AvgScore: stats.AverageScore,
		MinScore: stats.MinScore,
		MaxScore: stats.MaxScore,
		// map [-1,1] onto the sentiment bar
		MarkerPercent: (stats.AverageScore + 1) / 2 * 100,
	}

	for _, label := range domain.Labels {
		if count := stats.LabelCounts[label]; count > 0 {
			card.Labels = append(card.Labels, labelCount{Label: string(label), Count: count})
		}
	}
	return card
}

type sourcePageView struct {
	Source   string
	Count    int
	AvgScore float64
	Articles []articleView
}

type articleView struct {
	Title       string
	Link        string
	Published   string
	Description string
	Score       float64
	Label       string
}

type jsonSnapshot struct {
	GeneratedAt   string       `json:"generated_at"`
	TotalArticles int          `json:"total_articles"`
	Sources       []jsonSource `json:"sources"`
}

type jsonSource struct {
	Name        string         `json:"name"`
	Count       int            `json:"count"`
	AvgScore    float64        `json:"avg_score"`
	MinScore    float64        `json:"min_score"`
	MaxScore    float64        `json:"max_score"`
	LabelCounts map[string]int `json:"label_counts"`
	Articles    []jsonArticle  `json:"articles"`
}

type jsonArticle struct {
	Title          string  `json:"title"`
	Link           string  `json:"link"`
	Published      string  `json:"published"`
	Description    string  `json:"description"`
	Source         string  `json:"source"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>News Sentiment Analysis</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; max-width: 1200px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
h1 { color: #333; border-bottom: 3px solid #007bff; padding-bottom: 10px; }
.summary { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.source-card { background: white; padding: 20px; margin: 15px 0; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.source-card h2 { margin-top: 0; color: #007bff; }
.source-card a { text-decoration: none; color: inherit; }
.sentiment-bar { height: 30px; background: linear-gradient(to right, #dc3545 0%, #ffc107 50%, #28a745 100%); border-radius: 4px; position: relative; margin: 10px 0; }
.sentiment-marker { position: absolute; width: 3px; height: 100%; background: black; top: 0; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 10px; margin: 10px 0; }
.stat { padding: 10px; background: #f8f9fa; border-radius: 4px; }
.stat-label { font-size: 0.85em; color: #666; }
.stat-value { font-size: 1.5em; font-weight: bold; color: #333; }
.label-badge { display: inline-block; padding: 5px 10px; margin: 2px; border-radius: 4px; background: #e9ecef; font-size: 0.85em; }
.no-data { color: #888; font-style: italic; }
.footer { color: #888; font-size: 0.85em; margin-top: 30px; }
</style>
</head>
<body>
<h1>News Sentiment Analysis</h1>
<div class="summary">
<p><strong>{{.TotalArticles}}</strong> relevant articles across <strong>{{len .Sources}}</strong> sources.</p>
</div>
{{range .Sources}}
<div class="source-card">
{{if .HasData}}
<a href="{{.Filename}}"><h2>{{.Name}}</h2></a>
<div class="sentiment-bar"><div class="sentiment-marker" style="left: {{printf "%.1f" .MarkerPercent}}%"></div></div>
<div class="stats">
<div class="stat"><div class="stat-label">Articles</div><div class="stat-value">{{.Count}}</div></div>
<div class="stat"><div class="stat-label">Average</div><div class="stat-value">{{printf "%.3f" .AvgScore}}</div></div>
<div class="stat"><div class="stat-label">Min</div><div class="stat-value">{{printf "%.3f" .MinScore}}</div></div>
<div class="stat"><div class="stat-label">Max</div><div class="stat-value">{{printf "%.3f" .MaxScore}}</div></div>
</div>
<div>
{{range .Labels}}<span class="label-badge">{{.Label}}: {{.Count}}</span>{{end}}
</div>
{{else}}
<h2>{{.Name}}</h2>
<p class="no-data">No relevant coverage this period.</p>
{{end}}
</div>
{{end}}
<p class="footer">Generated {{.GeneratedAt}}</p>
</body>
</html>
`

const sourceTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Source}} - News Sentiment</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; max-width: 1000px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
h1 { color: #333; border-bottom: 3px solid #007bff; padding-bottom: 10px; }
.summary { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.article { background: white; padding: 15px 20px; margin: 12px 0; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.article h3 { margin: 0 0 5px 0; }
.article a { color: #007bff; text-decoration: none; }
.meta { font-size: 0.85em; color: #666; }
.score { font-weight: bold; }
.back { display: inline-block; margin-bottom: 10px; color: #007bff; text-decoration: none; }
</style>
</head>
<body>
<a class="back" href="index.html">&larr; All sources</a>
<h1>{{.Source}}</h1>
<div class="summary">
<p><strong>{{.Count}}</strong> articles, average sentiment <span class="score">{{printf "%.3f" .AvgScore}}</span>.</p>
</div>
{{range .Articles}}
<div class="article">
<h3><a href="{{.Link}}">{{.Title}}</a></h3>
<p class="meta">{{.Published}} &middot; <span class="score">{{printf "%.3f" .Score}}</span> &middot; {{.Label}}</p>
<p>{{.Description}}</p>
</div>
{{end}}
</body>
</html>
`
