package tmdb

import (
	"strings"

	"catalogue-service/internal/domain"
)

// detailsResponse is the wire shape of the content-details endpoint.
type detailsResponse struct {
	Genres        []genreEntry `json:"genres"`
	Title         string       `json:"title"`
	OriginalTitle string       `json:"original_title"`
	Tagline       string       `json:"tagline"`
	Overview      string       `json:"overview"`
	ReleaseDate   string       `json:"release_date"`
	FirstAirDate  string       `json:"first_air_date"`
	PosterPath    string       `json:"poster_path"`
	BackdropPath  string       `json:"backdrop_path"`
	VoteAverage   float64      `json:"vote_average"`
}

type genreEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// toDomain maps the wire payload to domain.ContentDetails, resolving image
// path fragments against the configured image base URL.
func (r *detailsResponse) toDomain(imageBaseURL string) *domain.ContentDetails {
	details := &domain.ContentDetails{
		Title:         r.Title,
		OriginalTitle: r.OriginalTitle,
		Tagline:       r.Tagline,
		Overview:      r.Overview,
		ReleaseDate:   r.ReleaseDate,
		VoteAverage:   r.VoteAverage,
	}

	// TV series report a first air date instead of a release date.
	if details.ReleaseDate == "" {
		details.ReleaseDate = r.FirstAirDate
	}

	if r.PosterPath != "" {
		details.PosterURL = imageURL(imageBaseURL, r.PosterPath)
	}
	if r.BackdropPath != "" {
		details.BackdropURL = imageURL(imageBaseURL, r.BackdropPath)
	}

	details.Genres = make([]domain.Genre, len(r.Genres))
	for i, g := range r.Genres {
		details.Genres[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}

	return details
}

// providersResponse is the wire shape of the watch-providers endpoint,
// keyed by region code.
type providersResponse struct {
	Results map[string]regionOffers `json:"results"`
}

type regionOffers struct {
	Flatrate []providerEntry `json:"flatrate"`
}

type providerEntry struct {
	ProviderID      int64  `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

func (p providerEntry) toDomain() domain.StreamingProvider {
	return domain.StreamingProvider{
		ProviderID:      p.ProviderID,
		ProviderName:    p.ProviderName,
		LogoPath:        p.LogoPath,
		DisplayPriority: p.DisplayPriority,
	}
}

func imageURL(base, fragment string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(fragment, "/")
}
