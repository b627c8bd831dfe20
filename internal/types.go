package internal

// WhiskeyType is the closed set of product-type tags a release can carry.
type WhiskeyType string

const (
	TypeBourbon    WhiskeyType = "bourbon"
	TypeRye        WhiskeyType = "rye"
	TypeWheat      WhiskeyType = "wheat"
	TypeTennessee  WhiskeyType = "tennessee"
	TypeSingleMalt WhiskeyType = "single_malt"
	TypeScotch     WhiskeyType = "scotch"
	TypeJapanese   WhiskeyType = "japanese"
	TypeBlend      WhiskeyType = "blend"
)

// RawRelease is a loosely structured record as a collector produced it.
// Keys are source-dependent (name/product_name, proof/abv, age/age_years,
// msrp/price, ...) and values are untyped strings, numbers or booleans.
// Collectors additionally tag provenance under KeySource / KeySourceURL.
type RawRelease map[string]any

const (
	KeySource    = "_source"
	KeySourceURL = "_source_url"
)

// Release is the canonical normalized schema. Pointer fields are nullable;
// nil means the parsers found nothing for that field.
type Release struct {
	ID           string      `json:"id"`
	ProductName  string      `json:"product_name"`
	Distillery   *string     `json:"distillery"`
	Type         WhiskeyType `json:"type"`
	Proof        *float64    `json:"proof"`
	ABV          *float64    `json:"abv"`
	AgeYears     *int        `json:"age_years"`
	MSRP         *float64    `json:"msrp"`
	BottleSizeML int         `json:"bottle_size_ml"`
	ReleaseMonth *string     `json:"release_month"`
	ReleaseDate  *string     `json:"release_date"`
	ReleaseYear  int         `json:"release_year"`
	Batch        *string     `json:"batch"`
	Finish       *string     `json:"finish"`
	Mashbill     *string     `json:"mashbill"`
	Notes        *string     `json:"notes"`
	IsLimited    int         `json:"is_limited"`
	IsNew        int         `json:"is_new"`
	ImageURL     *string     `json:"image_url"`
	SourceURL    *string     `json:"source_url"`
}

// SourcedRelease pairs a normalized release with the raw record and
// provenance it came from, so storage can archive the original payload.
type SourcedRelease struct {
	Release    *Release
	Raw        RawRelease
	SourceName string
	SourceURL  string
}

// ReleaseSource is one contributing source row for a stored release.
type ReleaseSource struct {
	ID         int     `json:"id"`
	ReleaseID  string  `json:"release_id"`
	SourceName string  `json:"source_name"`
	SourceURL  *string `json:"source_url"`
	ScrapedAt  string  `json:"scraped_at"`
	RawData    *string `json:"raw_data"`
}

// ReleaseListItem is a release plus the distinct names of the sources
// that contributed to it, as returned by list queries.
type ReleaseListItem struct {
	Release
	Sources []string `json:"sources"`
}

// ReleaseDetail is a release plus full per-source provenance rows.
type ReleaseDetail struct {
	Release
	SourceDetails []ReleaseSource `json:"source_details"`
}

type ScrapeLogRow struct {
	ID         int     `json:"id"`
	SourceName string  `json:"source_name"`
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Errors     *string `json:"errors"`
	StartedAt  string  `json:"started_at"`
	FinishedAt *string `json:"finished_at"`
}

type MonthCount struct {
	ReleaseMonth *string `json:"release_month"`
	Count        int     `json:"count"`
}

type DistilleryCount struct {
	Distillery string `json:"distillery"`
	Count      int    `json:"count"`
}

type Stats struct {
	TotalReleases int      `json:"totalReleases"`
	TotalSources  int      `json:"totalSources"`
	AvgProof      *float64 `json:"avgProof"`
	AvgPrice      *float64 `json:"avgPrice"`
	LastScrape    *string  `json:"lastScrape"`
}
