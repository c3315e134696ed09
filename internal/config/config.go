package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "NEWS_SENTIMENT_CONFIG"
	outputDirEnv  = "OUTPUT_DIR"
	monthsBackEnv = "MONTHS_BACK"
	policyEnv     = "RELEVANCE_POLICY"
	logLevelEnv   = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Window    WindowConfig    `yaml:"window"`
	Relevance RelevanceConfig `yaml:"relevance"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Output    OutputConfig    `yaml:"output"`
	Feeds     []FeedConfig    `yaml:"feeds"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WindowConfig defines the trailing recency window.
type WindowConfig struct {
	MonthsBack int `yaml:"monthsBack"`
}

// RelevanceConfig selects the active topic policy and its terms.
type RelevanceConfig struct {
	Policy   string   `yaml:"policy"`
	Keywords []string `yaml:"keywords"`
}

// SentimentConfig carries the lexicons, normalization divisor, and the
// label threshold table.
type SentimentConfig struct {
	Divisor    float64         `yaml:"divisor"`
	Positive   []string        `yaml:"positive"`
	Negative   []string        `yaml:"negative"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
}

// ThresholdConfig lists the four descending band boundaries; the lowest
// band has no lower bound.
type ThresholdConfig struct {
	VeryPositive float64 `yaml:"veryPositive"`
	Positive     float64 `yaml:"positive"`
	Neutral      float64 `yaml:"neutral"`
	Negative     float64 `yaml:"negative"`
}

// SchedulerConfig defines optional periodic regeneration. An empty
// interval means a single run.
type SchedulerConfig struct {
	Interval string `yaml:"interval"`
}

// IntervalDuration resolves the interval string to a duration. Empty or
// unparseable values mean a single run.
func (s SchedulerConfig) IntervalDuration() time.Duration {
	if s.Interval == "" {
		return 0
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil {
		log.Printf("config: invalid scheduler interval %s: %v (running once)", s.Interval, err)
		return 0
	}
	return d
}

// OutputConfig describes where the generated site lands.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// FeedConfig describes a single named RSS/Atom feed.
type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Feeds) == 0 {
		cfg.Feeds = defaultConfig().Feeds
	}

	return cfg
}

// Validate rejects values the pipeline cannot run with. Threshold ordering
// and lexicon disjointness are checked by the sentiment scorer itself.
func (c Config) Validate() error {
	if c.Window.MonthsBack <= 0 {
		return fmt.Errorf("window.monthsBack must be positive, got %d", c.Window.MonthsBack)
	}
	if c.Sentiment.Divisor <= 0 {
		return fmt.Errorf("sentiment.divisor must be positive, got %g", c.Sentiment.Divisor)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	for _, feed := range c.Feeds {
		if feed.Name == "" || feed.URL == "" {
			return fmt.Errorf("feeds entries require both name and url")
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(policyEnv); v != "" {
		c.Relevance.Policy = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(monthsBackEnv); v != "" {
		if months, err := strconv.Atoi(v); err != nil {
			log.Printf("config: invalid %s=%s: %v (keeping %d)", monthsBackEnv, v, err, c.Window.MonthsBack)
		} else {
			c.Window.MonthsBack = months
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Window.MonthsBack != 0 {
		base.Window.MonthsBack = override.Window.MonthsBack
	}

	if override.Relevance.Policy != "" {
		base.Relevance.Policy = override.Relevance.Policy
	}
	if len(override.Relevance.Keywords) > 0 {
		base.Relevance.Keywords = override.Relevance.Keywords
	}

	if override.Sentiment.Divisor != 0 {
		base.Sentiment.Divisor = override.Sentiment.Divisor
	}
	if len(override.Sentiment.Positive) > 0 {
		base.Sentiment.Positive = override.Sentiment.Positive
	}
	if len(override.Sentiment.Negative) > 0 {
		base.Sentiment.Negative = override.Sentiment.Negative
	}
	if override.Sentiment.Thresholds != (ThresholdConfig{}) {
		base.Sentiment.Thresholds = override.Sentiment.Thresholds
	}

	if override.Scheduler.Interval != "" {
		base.Scheduler.Interval = override.Scheduler.Interval
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}

	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Window:  WindowConfig{MonthsBack: 12},
		Relevance: RelevanceConfig{
			Policy: "keywords",
			Keywords: []string{
				"china", "chinese", "beijing", "xi jinping", "ccp",
				"taiwan", "hong kong", "xinjiang", "tibet", "shanghai",
			},
		},
		Sentiment: SentimentConfig{
			Divisor:  0.1,
			Positive: defaultPositiveTerms(),
			Negative: defaultNegativeTerms(),
			Thresholds: ThresholdConfig{
				VeryPositive: 0.5,
				Positive:     0.1,
				Neutral:      -0.1,
				Negative:     -0.5,
			},
		},
		Scheduler: SchedulerConfig{Interval: ""},
		Output:    OutputConfig{Dir: "site"},
		Feeds: []FeedConfig{
			{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/world/rss.xml"},
			{Name: "CNN", URL: "http://rss.cnn.com/rss/edition_world.rss"},
			{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
			{Name: "Reuters", URL: "https://www.reutersagency.com/feed/?taxonomy=best-topics&post_type=best"},
			{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
			{Name: "New York Times", URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml"},
		},
	}
}

func defaultPositiveTerms() []string {
	return []string{
		"good", "great", "excellent", "positive", "fortunate", "correct",
		"superior", "success", "successful", "growth", "gain", "prosper",
		"prosperity", "benefit", "improve", "improvement", "advance",
		"advancement", "progress", "boom", "win", "winning", "leader",
		"leading", "strong", "strength", "breakthrough", "innovation",
	}
}

func defaultNegativeTerms() []string {
	return []string{
		"bad", "terrible", "awful", "negative", "unfortunate", "wrong",
		"inferior", "failure", "fail", "decline", "loss", "lose",
		"crisis", "problem", "issue", "concern", "threat", "threaten",
		"risk", "danger", "dangerous", "conflict", "tension", "dispute",
		"criticism", "criticize", "condemn", "sanction", "weak", "weakness",
	}
}
