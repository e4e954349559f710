package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Feed source
	FeedURL      string `long:"feed-url" env:"FEED_URL" default:"https://www.finansportalen.no/services/feed/v3/bank/kredittkort.atom" description:"Atom feed URL for credit card offers"`
	FeedUsername string `long:"feed-username" env:"FEED_USERNAME" description:"Feed basic auth username (required)" required:"true"`
	FeedPassword string `long:"feed-password" env:"FEED_PASSWORD" description:"Feed basic auth password (required)" required:"true"`

	// CMS API
	CMSURL             string `long:"cms-url" env:"CMS_URL" default:"https://api.webflow.com/v2" description:"CMS API base URL"`
	CMSToken           string `long:"cms-token" env:"CMS_TOKEN" description:"CMS bearer token (required)" required:"true"`
	OffersCollectionID string `long:"offers-collection" env:"OFFERS_COLLECTION_ID" default:"66757dbebe301e2905b5ecc2" description:"CMS collection holding the card offer items"`
	BanksCollectionID  string `long:"banks-collection" env:"BANKS_COLLECTION_ID" default:"66636a29a268f18ba1798b0a" description:"CMS collection holding the bank reference items"`

	// Pipeline tuning
	MappingFile string        `long:"mapping-file" env:"MAPPING_FILE" description:"Field mapping YAML file (defaults to the embedded table)"`
	PageSize    int           `long:"page-size" env:"PAGE_SIZE" default:"100" description:"CMS list page size"`
	PageDelay   time.Duration `long:"page-delay" env:"PAGE_DELAY" default:"1s" description:"Delay between CMS list pages"`
	EntryDelay  time.Duration `long:"entry-delay" env:"ENTRY_DELAY" default:"1s" description:"Delay after each reconciled entry"`
	BankPages   int           `long:"bank-pages" env:"BANK_PAGES" default:"4" description:"Maximum pages scanned per bank lookup"`
	Timeout     time.Duration `long:"timeout" env:"HTTP_TIMEOUT" default:"30s" description:"HTTP client timeout"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"kortsync/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Europe/Oslo" description:"Timezone for the update date stamp"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedURL:            raw.FeedURL,
		FeedUsername:       raw.FeedUsername,
		FeedPassword:       raw.FeedPassword,
		CMSURL:             raw.CMSURL,
		CMSToken:           raw.CMSToken,
		OffersCollectionID: raw.OffersCollectionID,
		BanksCollectionID:  raw.BanksCollectionID,
		MappingFile:        raw.MappingFile,
		PageSize:           raw.PageSize,
		PageDelay:          raw.PageDelay,
		EntryDelay:         raw.EntryDelay,
		BankPages:          raw.BankPages,
		Timeout:            raw.Timeout,
		UserAgent:          raw.UserAgent,
		Timezone:           raw.Timezone,
		Debug:              raw.Debug,
		Version:            GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
