package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig represents the application configuration (spec §6
// "Configuration": listening port, cache TTL, scraper timeout, trends
// minimum interval, scraper enrichment delay, long-form threshold).
type AppConfig struct {
	DefaultRegion         string
	DefaultDuration       string
	DefaultTimeRange      string
	DefaultOrder          string
	APIKey                string
	RisingStarMultiplier  float64
	LongTailMinEngagement float64
	LongTailMaxFreq       int

	// Opportunity Score Weights
	OppWeightVPD    float64
	OppWeightLike   float64
	OppWeightFresh  float64
	OppWeightSatPen float64
	OppWeightSlope  float64

	// Server and pipeline configuration (spec §6)
	Port                  int
	CacheTTL              time.Duration
	ScraperBinary         string
	ScraperTimeout        time.Duration
	TrendsMinInterval     time.Duration
	RisingStarEnrichDelay time.Duration
	LongFormThresholdMins float64
	RequestDeadline       time.Duration
}

// LoadConfig loads configuration from environment.
func LoadConfig() *AppConfig {
	config := &AppConfig{
		DefaultRegion:         "any",
		DefaultDuration:       "any",
		DefaultTimeRange:      "any",
		DefaultOrder:          "relevance",
		RisingStarMultiplier:  1.5,
		LongTailMinEngagement: 5.0,
		LongTailMaxFreq:       2,
		OppWeightVPD:          0.45,
		OppWeightLike:         0.25,
		OppWeightFresh:        0.20,
		OppWeightSatPen:       0.30,
		OppWeightSlope:        0.15,

		Port:                  8080,
		CacheTTL:              3600 * time.Second,
		ScraperBinary:         "yt-dlp",
		ScraperTimeout:        30 * time.Second,
		TrendsMinInterval:     1 * time.Second,
		RisingStarEnrichDelay: 200 * time.Millisecond,
		LongFormThresholdMins: 40,
		RequestDeadline:       60 * time.Second,
	}

	if region := strings.TrimSpace(os.Getenv("YTMINER_DEFAULT_REGION")); region != "" {
		config.DefaultRegion = region
	}

	if duration := strings.TrimSpace(os.Getenv("YTMINER_DEFAULT_DURATION")); duration != "" {
		config.DefaultDuration = duration
	}

	if tr := strings.TrimSpace(os.Getenv("YTMINER_DEFAULT_TIME_RANGE")); tr != "" {
		config.DefaultTimeRange = tr
	}

	if ord := strings.TrimSpace(os.Getenv("YTMINER_DEFAULT_ORDER")); ord != "" {
		config.DefaultOrder = ord
	}

	if v := strings.TrimSpace(os.Getenv("YTMINER_RISING_STAR_MULTIPLIER")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			config.RisingStarMultiplier = f
		}
	}

	if v := strings.TrimSpace(os.Getenv("YTMINER_LONG_TAIL_MIN_ENGAGEMENT")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.LongTailMinEngagement = f
		}
	}

	if v := strings.TrimSpace(os.Getenv("YTMINER_LONG_TAIL_MAX_FREQ")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			config.LongTailMaxFreq = n
		}
	}

	// Opportunity Score Weights from env (optional overrides)
	if v := strings.TrimSpace(os.Getenv("YTMINER_OPP_W_VPD")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.OppWeightVPD = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_OPP_W_LIKE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.OppWeightLike = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_OPP_W_FRESH")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.OppWeightFresh = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_OPP_W_SAT")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.OppWeightSatPen = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_OPP_W_SLOPE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.OppWeightSlope = f
		}
	}

	if v := strings.TrimSpace(os.Getenv("YTMINER_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Port = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.CacheTTL = time.Duration(n) * time.Second
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_SCRAPER_BINARY")); v != "" {
		config.ScraperBinary = v
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_SCRAPER_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.ScraperTimeout = time.Duration(n) * time.Second
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_TRENDS_MIN_INTERVAL_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.TrendsMinInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_RISING_STAR_ENRICH_DELAY_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			config.RisingStarEnrichDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_LONG_FORM_THRESHOLD_MINUTES")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			config.LongFormThresholdMins = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("YTMINER_REQUEST_DEADLINE_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.RequestDeadline = time.Duration(n) * time.Second
		}
	}

	config.APIKey = strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))

	return config
}

// SaveConfig saves configuration to .env file.
func (c *AppConfig) SaveConfig() error {
	envContent := ""

	if c.APIKey != "" {
		envContent += "YOUTUBE_API_KEY=" + c.APIKey + "\n"
	}

	envContent += "YTMINER_DEFAULT_REGION=" + c.DefaultRegion + "\n"
	envContent += "YTMINER_DEFAULT_DURATION=" + c.DefaultDuration + "\n"
	envContent += "YTMINER_DEFAULT_TIME_RANGE=" + c.DefaultTimeRange + "\n"
	envContent += "YTMINER_DEFAULT_ORDER=" + c.DefaultOrder + "\n"
	envContent += "YTMINER_RISING_STAR_MULTIPLIER=" + strconv.FormatFloat(c.RisingStarMultiplier, 'f', -1, 64) + "\n"
	envContent += "YTMINER_LONG_TAIL_MIN_ENGAGEMENT=" + strconv.FormatFloat(c.LongTailMinEngagement, 'f', -1, 64) + "\n"
	envContent += "YTMINER_LONG_TAIL_MAX_FREQ=" + strconv.Itoa(c.LongTailMaxFreq) + "\n"

	envContent += "YTMINER_OPP_W_VPD=" + strconv.FormatFloat(c.OppWeightVPD, 'f', -1, 64) + "\n"
	envContent += "YTMINER_OPP_W_LIKE=" + strconv.FormatFloat(c.OppWeightLike, 'f', -1, 64) + "\n"
	envContent += "YTMINER_OPP_W_FRESH=" + strconv.FormatFloat(c.OppWeightFresh, 'f', -1, 64) + "\n"
	envContent += "YTMINER_OPP_W_SAT=" + strconv.FormatFloat(c.OppWeightSatPen, 'f', -1, 64) + "\n"
	envContent += "YTMINER_OPP_W_SLOPE=" + strconv.FormatFloat(c.OppWeightSlope, 'f', -1, 64) + "\n"

	envContent += "YTMINER_PORT=" + strconv.Itoa(c.Port) + "\n"
	envContent += "YTMINER_CACHE_TTL_SECONDS=" + strconv.Itoa(int(c.CacheTTL.Seconds())) + "\n"
	envContent += "YTMINER_SCRAPER_BINARY=" + c.ScraperBinary + "\n"
	envContent += "YTMINER_SCRAPER_TIMEOUT_SECONDS=" + strconv.Itoa(int(c.ScraperTimeout.Seconds())) + "\n"
	envContent += "YTMINER_TRENDS_MIN_INTERVAL_MS=" + strconv.Itoa(int(c.TrendsMinInterval.Milliseconds())) + "\n"
	envContent += "YTMINER_RISING_STAR_ENRICH_DELAY_MS=" + strconv.Itoa(int(c.RisingStarEnrichDelay.Milliseconds())) + "\n"
	envContent += "YTMINER_LONG_FORM_THRESHOLD_MINUTES=" + strconv.FormatFloat(c.LongFormThresholdMins, 'f', -1, 64) + "\n"
	envContent += "YTMINER_REQUEST_DEADLINE_SECONDS=" + strconv.Itoa(int(c.RequestDeadline.Seconds())) + "\n"

	return os.WriteFile(".env", []byte(envContent), 0644)
}
