package domain

// ContentDetails is the detail payload fetched from the metadata provider
// for one content item. Optional fields are empty when the provider had
// nothing for them.
type ContentDetails struct {
	Genres        []Genre
	Title         string
	OriginalTitle string
	Tagline       string
	Overview      string
	ReleaseDate   string
	PosterURL     string
	BackdropURL   string
	VoteAverage   float64
}

// Genre is one entry of the provider's genre taxonomy.
type Genre struct {
	ID   int64
	Name string
}

// StreamingProvider is one regional streaming service carrying a content item.
type StreamingProvider struct {
	ProviderID      int64  `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path,omitempty"`
	DisplayPriority int    `json:"display_priority,omitempty"`
}

// ContentInfo is the merged result of the two independent metadata calls.
// Each half is fail-soft: when a sub-call failed, its Unavailable flag is set
// and the value is zero. A nil Providers with ProvidersUnavailable false means
// the provider answered and no allow-listed streaming service carries the
// item, which is different from an outage.
type ContentInfo struct {
	Details              *ContentDetails
	DetailsUnavailable   bool
	Providers            []StreamingProvider
	ProvidersUnavailable bool
}

// PrimaryGenre returns the first genre of the details, or nil when details
// are missing or carry no genres.
func (i *ContentInfo) PrimaryGenre() *Genre {
	if i.Details == nil || len(i.Details.Genres) == 0 {
		return nil
	}
	return &i.Details.Genres[0]
}
