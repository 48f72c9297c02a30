package types

// FilmRecord is the normalized per-film data unit produced by parsing one
// detail page. Optional fields are pointers so that "unknown" survives as
// null in JSON and NULL in SQL instead of an empty string masquerading as
// data.
type FilmRecord struct {
	// Title is the film title from the first infobox row. A record is
	// only emitted if title extraction succeeded.
	Title string `json:"title"`

	// ReleaseYear is the first four-digit run found in the release date
	// field, nil if no such run exists.
	ReleaseYear *int `json:"release_year"`

	// Director is the normalized comma-joined list of director names.
	Director *string `json:"director"`

	// BoxOffice is the cleaned box office revenue string. It stays a
	// string: no numeric parse is attempted.
	BoxOffice *string `json:"box_office"`

	// Country is the normalized comma-joined list of countries.
	Country *string `json:"country"`

	// URL is the canonical detail-page URL the record was scraped from.
	URL string `json:"url"`
}

// BoxOfficeKey returns the box office string for sorting, empty when unknown.
func (r *FilmRecord) BoxOfficeKey() string {
	if r.BoxOffice == nil {
		return ""
	}
	return *r.BoxOffice
}

// StringPtr returns a pointer to s, or nil if s is empty. Used to map
// "field not found / cleaned away to nothing" onto an absent field.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
