package cfg

import "time"

type Cfg struct {
	// Feed source
	FeedURL      string
	FeedUsername string
	FeedPassword string

	// CMS API
	CMSURL             string
	CMSToken           string
	OffersCollectionID string
	BanksCollectionID  string

	// Pipeline tuning
	MappingFile string
	PageSize    int
	PageDelay   time.Duration
	EntryDelay  time.Duration
	BankPages   int
	Timeout     time.Duration

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
