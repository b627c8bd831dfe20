package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"bourboncal/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA foreign_keys = ON;`,
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS releases (
  id             TEXT PRIMARY KEY,
  product_name   TEXT NOT NULL,
  distillery     TEXT,
  type           TEXT DEFAULT 'bourbon',
  proof          REAL,
  abv            REAL,
  age_years      INTEGER,
  msrp           REAL,
  bottle_size_ml INTEGER DEFAULT 750,
  release_month  TEXT,
  release_date   TEXT,
  release_year   INTEGER DEFAULT 2026,
  batch          TEXT,
  finish         TEXT,
  mashbill       TEXT,
  notes          TEXT,
  is_limited     INTEGER DEFAULT 0,
  is_new         INTEGER DEFAULT 0,
  image_url      TEXT,
  source_url     TEXT,
  created_at     TEXT DEFAULT (datetime('now')),
  updated_at     TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS release_sources (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  release_id  TEXT NOT NULL,
  source_name TEXT NOT NULL,
  source_url  TEXT,
  scraped_at  TEXT DEFAULT (datetime('now')),
  raw_data    TEXT,
  FOREIGN KEY (release_id) REFERENCES releases(id) ON DELETE CASCADE,
  UNIQUE(release_id, source_name)
);

CREATE TABLE IF NOT EXISTS scrape_logs (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  source_name TEXT NOT NULL,
  status      TEXT NOT NULL,
  count       INTEGER DEFAULT 0,
  errors      TEXT,
  started_at  TEXT DEFAULT (datetime('now')),
  finished_at TEXT
);

CREATE TABLE IF NOT EXISTS metadata (
  key       TEXT PRIMARY KEY,
  value     TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_releases_month ON releases(release_month);
CREATE INDEX IF NOT EXISTS idx_releases_distillery ON releases(distillery);
CREATE INDEX IF NOT EXISTS idx_releases_type ON releases(type);
CREATE INDEX IF NOT EXISTS idx_releases_year ON releases(release_year);
CREATE INDEX IF NOT EXISTS idx_release_sources_release ON release_sources(release_id);
`

	_, err := d.conn.Exec(schema)
	return err
}

// UpsertRelease inserts a release or fills gaps in an existing row. On
// conflict each field only overwrites when the incoming value is non-NULL,
// so repeated scrapes enrich a row without clobbering earlier data.
func (d *DB) UpsertRelease(r *internal.Release) error {
	_, err := d.conn.Exec(`
INSERT INTO releases (
  id, product_name, distillery, type, proof, abv, age_years, msrp,
  bottle_size_ml, release_month, release_date, release_year, batch,
  finish, mashbill, notes, is_limited, is_new, image_url, source_url
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  product_name   = COALESCE(excluded.product_name, releases.product_name),
  distillery     = COALESCE(excluded.distillery, releases.distillery),
  type           = COALESCE(excluded.type, releases.type),
  proof          = COALESCE(excluded.proof, releases.proof),
  abv            = COALESCE(excluded.abv, releases.abv),
  age_years      = COALESCE(excluded.age_years, releases.age_years),
  msrp           = COALESCE(excluded.msrp, releases.msrp),
  bottle_size_ml = COALESCE(excluded.bottle_size_ml, releases.bottle_size_ml),
  release_month  = COALESCE(excluded.release_month, releases.release_month),
  release_date   = COALESCE(excluded.release_date, releases.release_date),
  batch          = COALESCE(excluded.batch, releases.batch),
  finish         = COALESCE(excluded.finish, releases.finish),
  mashbill       = COALESCE(excluded.mashbill, releases.mashbill),
  notes          = COALESCE(excluded.notes, releases.notes),
  is_limited     = COALESCE(excluded.is_limited, releases.is_limited),
  is_new         = COALESCE(excluded.is_new, releases.is_new),
  image_url      = COALESCE(excluded.image_url, releases.image_url),
  source_url     = COALESCE(excluded.source_url, releases.source_url),
  updated_at     = datetime('now')
`,
		r.ID, r.ProductName, r.Distillery, string(r.Type), r.Proof, r.ABV, r.AgeYears, r.MSRP,
		r.BottleSizeML, r.ReleaseMonth, r.ReleaseDate, r.ReleaseYear, r.Batch,
		r.Finish, r.Mashbill, r.Notes, r.IsLimited, r.IsNew, r.ImageURL, r.SourceURL,
	)
	return err
}

// AddSource records that source contributed to release_id, archiving the raw
// payload. The (release_id, source_name) pair is unique; duplicates are
// ignored so re-scrapes stay idempotent.
func (d *DB) AddSource(releaseID, sourceName, sourceURL string, raw internal.RawRelease) error {
	rawJSON, _ := json.Marshal(raw)
	_, err := d.conn.Exec(`
INSERT OR IGNORE INTO release_sources (release_id, source_name, source_url, raw_data)
VALUES (?, ?, ?, ?)
`, releaseID, sourceName, sourceURL, string(rawJSON))
	return err
}

func (d *DB) LogScrape(sourceName, status string, count int, errMsg *string) error {
	_, err := d.conn.Exec(`
INSERT INTO scrape_logs (source_name, status, count, errors, finished_at)
VALUES (?, ?, ?, ?, datetime('now'))
`, sourceName, status, count, errMsg)
	return err
}

// Filters narrows ListReleases. Zero values mean "no constraint".
type Filters struct {
	Month      string
	Type       string
	Distillery string
	MinProof   *float64
	MaxProof   *float64
	MaxPrice   *float64
	Year       *int
	Search     string
}

func (d *DB) ListReleases(f Filters) ([]internal.ReleaseListItem, error) {
	query := `
SELECT r.id, r.product_name, r.distillery, r.type, r.proof, r.abv, r.age_years, r.msrp,
       r.bottle_size_ml, r.release_month, r.release_date, r.release_year, r.batch,
       r.finish, r.mashbill, r.notes, r.is_limited, r.is_new, r.image_url, r.source_url,
       GROUP_CONCAT(DISTINCT rs.source_name) AS sources
FROM releases r
LEFT JOIN release_sources rs ON r.id = rs.release_id
`
	var conditions []string
	var params []any

	if f.Month != "" {
		conditions = append(conditions, "r.release_month = ?")
		params = append(params, f.Month)
	}
	if f.Type != "" {
		conditions = append(conditions, "r.type = ?")
		params = append(params, f.Type)
	}
	if f.Distillery != "" {
		conditions = append(conditions, "r.distillery LIKE ?")
		params = append(params, "%"+f.Distillery+"%")
	}
	if f.MinProof != nil {
		conditions = append(conditions, "r.proof >= ?")
		params = append(params, *f.MinProof)
	}
	if f.MaxProof != nil {
		conditions = append(conditions, "r.proof <= ?")
		params = append(params, *f.MaxProof)
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "r.msrp <= ?")
		params = append(params, *f.MaxPrice)
	}
	if f.Year != nil {
		conditions = append(conditions, "r.release_year = ?")
		params = append(params, *f.Year)
	}
	if f.Search != "" {
		conditions = append(conditions, "(r.product_name LIKE ? OR r.distillery LIKE ? OR r.notes LIKE ?)")
		s := "%" + f.Search + "%"
		params = append(params, s, s, s)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " GROUP BY r.id ORDER BY r.release_month ASC, r.product_name ASC"

	rows, err := d.conn.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ReleaseListItem
	for rows.Next() {
		var item internal.ReleaseListItem
		var typ string
		var sources *string
		if err := rows.Scan(
			&item.ID, &item.ProductName, &item.Distillery, &typ, &item.Proof, &item.ABV, &item.AgeYears, &item.MSRP,
			&item.BottleSizeML, &item.ReleaseMonth, &item.ReleaseDate, &item.ReleaseYear, &item.Batch,
			&item.Finish, &item.Mashbill, &item.Notes, &item.IsLimited, &item.IsNew, &item.ImageURL, &item.SourceURL,
			&sources,
		); err != nil {
			return nil, err
		}
		item.Type = internal.WhiskeyType(typ)
		item.Sources = []string{}
		if sources != nil && *sources != "" {
			item.Sources = strings.Split(*sources, ",")
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetRelease returns the release plus its per-source provenance rows, or
// nil when the id is unknown.
func (d *DB) GetRelease(id string) (*internal.ReleaseDetail, error) {
	var detail internal.ReleaseDetail
	var typ string
	err := d.conn.QueryRow(`
SELECT id, product_name, distillery, type, proof, abv, age_years, msrp,
       bottle_size_ml, release_month, release_date, release_year, batch,
       finish, mashbill, notes, is_limited, is_new, image_url, source_url
FROM releases WHERE id = ?
`, id).Scan(
		&detail.ID, &detail.ProductName, &detail.Distillery, &typ, &detail.Proof, &detail.ABV, &detail.AgeYears, &detail.MSRP,
		&detail.BottleSizeML, &detail.ReleaseMonth, &detail.ReleaseDate, &detail.ReleaseYear, &detail.Batch,
		&detail.Finish, &detail.Mashbill, &detail.Notes, &detail.IsLimited, &detail.IsNew, &detail.ImageURL, &detail.SourceURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	detail.Type = internal.WhiskeyType(typ)

	rows, err := d.conn.Query(`
SELECT id, release_id, source_name, source_url, scraped_at, raw_data
FROM release_sources WHERE release_id = ?
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail.SourceDetails = []internal.ReleaseSource{}
	for rows.Next() {
		var src internal.ReleaseSource
		if err := rows.Scan(&src.ID, &src.ReleaseID, &src.SourceName, &src.SourceURL, &src.ScrapedAt, &src.RawData); err != nil {
			return nil, err
		}
		detail.SourceDetails = append(detail.SourceDetails, src)
	}
	return &detail, rows.Err()
}

// MonthSummary counts releases per month for the given year, in calendar
// order with unknown months last.
func (d *DB) MonthSummary(year int) ([]internal.MonthCount, error) {
	var cases strings.Builder
	for i, m := range []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	} {
		fmt.Fprintf(&cases, "WHEN '%s %d' THEN %d ", m, year, i+1)
	}

	rows, err := d.conn.Query(fmt.Sprintf(`
SELECT release_month, COUNT(*) AS count
FROM releases
WHERE release_year = ?
GROUP BY release_month
ORDER BY CASE release_month %sELSE 13 END
`, cases.String()), year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.MonthCount
	for rows.Next() {
		var mc internal.MonthCount
		if err := rows.Scan(&mc.ReleaseMonth, &mc.Count); err != nil {
			return nil, err
		}
		out = append(out, mc)
	}
	return out, rows.Err()
}

func (d *DB) Distilleries() ([]internal.DistilleryCount, error) {
	rows, err := d.conn.Query(`
SELECT DISTINCT distillery, COUNT(*) AS count
FROM releases
WHERE distillery IS NOT NULL
GROUP BY distillery
ORDER BY count DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.DistilleryCount
	for rows.Next() {
		var dc internal.DistilleryCount
		if err := rows.Scan(&dc.Distillery, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (d *DB) Stats() (internal.Stats, error) {
	var stats internal.Stats
	if err := d.conn.QueryRow(`SELECT COUNT(*) FROM releases`).Scan(&stats.TotalReleases); err != nil {
		return stats, err
	}
	if err := d.conn.QueryRow(`SELECT COUNT(DISTINCT source_name) FROM release_sources`).Scan(&stats.TotalSources); err != nil {
		return stats, err
	}
	if err := d.conn.QueryRow(`SELECT AVG(proof) FROM releases WHERE proof IS NOT NULL`).Scan(&stats.AvgProof); err != nil {
		return stats, err
	}
	if err := d.conn.QueryRow(`SELECT AVG(msrp) FROM releases WHERE msrp IS NOT NULL`).Scan(&stats.AvgPrice); err != nil {
		return stats, err
	}
	if err := d.conn.QueryRow(`SELECT MAX(finished_at) FROM scrape_logs`).Scan(&stats.LastScrape); err != nil {
		return stats, err
	}
	return stats, nil
}

func (d *DB) RecentScrapeLogs(limit int) ([]internal.ScrapeLogRow, error) {
	rows, err := d.conn.Query(`
SELECT id, source_name, status, count, errors, started_at, finished_at
FROM scrape_logs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ScrapeLogRow
	for rows.Next() {
		var row internal.ScrapeLogRow
		if err := rows.Scan(&row.ID, &row.SourceName, &row.Status, &row.Count, &row.Errors, &row.StartedAt, &row.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
