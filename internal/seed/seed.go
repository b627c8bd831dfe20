// Package seed loads a curated set of 2026 releases so the API and frontend
// can be exercised without hitting any live source. Records go through the
// same normalize and persist path as scraped data.
package seed

import (
	"fmt"

	"bourboncal/internal"
	"bourboncal/internal/pipeline"
	"bourboncal/internal/storage"
	"bourboncal/internal/util"
)

var sampleReleases = []internal.RawRelease{
	{
		"product_name":     "Maker's Mark Cellar Aged 2026 Release",
		"distillery":       "Maker's Mark",
		"type":             "bourbon",
		"proof":            "112.9 Proof",
		"age":              "11 years",
		"msrp":             "$200",
		"release_month":    "January",
		"notes":            "Kentucky Straight Bourbon Whisky, aged 11-14 years in limestone cellar",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Knob Creek Blender's Edition No. 01",
		"distillery":       "Jim Beam",
		"type":             "bourbon",
		"proof":            "109 Proof",
		"age":              "10 years",
		"msrp":             "$59.99",
		"release_month":    "January",
		"notes":            "Kentucky Straight Bourbon Whiskey",
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Old Forester Tribute Series 2026 Release",
		"distillery":       "Brown-Forman",
		"type":             "bourbon",
		"proof":            "115 Proof",
		"age":              "12 years",
		"release_month":    "July",
		"notes":            "375ml bottle, charred 3 times as long as the standard Old Forester barrel profile",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "James B. Beam Distillers' Share 230th Anniversary Bourbon",
		"distillery":       "Jim Beam",
		"type":             "bourbon",
		"proof":            "115 Proof",
		"age":              "7 years",
		"release_month":    "January",
		"notes":            "Aged 7-20 years, commemorating 230th anniversary",
		"is_limited":       true,
		"source_url":       "https://bourbonbossman.com/2026-bourbon-release-calendar/",
		internal.KeySource: "bourbon-bossman",
	},
	{
		"product_name":     "King of Kentucky Small Batch",
		"distillery":       "Brown-Forman",
		"type":             "bourbon",
		"proof":            "105 Proof",
		"age":              "12 years",
		"release_month":    "January",
		"notes":            "Kentucky Straight Bourbon Whiskey",
		"is_limited":       true,
		"source_url":       "https://bourbonbossman.com/2026-bourbon-release-calendar/",
		internal.KeySource: "bourbon-bossman",
	},
	{
		"product_name":     "Heaven Hill Heritage Collection 2026",
		"distillery":       "Heaven Hill",
		"type":             "bourbon",
		"proof":            "137 Proof",
		"age":              "22 years",
		"notes":            "Highest proof Heaven Hill bourbon ever released at 68.5% ABV",
		"is_limited":       true,
		"source_url":       "https://www.frootbat.com/blog/2575/most-anticipated-bourbon-releases-of-2026",
		internal.KeySource: "articles/frootbat",
	},
	{
		"product_name":     "Maker's Mark Star Hill Farm 2026",
		"distillery":       "Maker's Mark",
		"type":             "bourbon",
		"proof":            "114.7 Proof",
		"mashbill":         "51% soft red winter wheat, 27% malted soft red winter wheat, 22% malted barley",
		"notes":            "Unique wheat-forward mashbill",
		"is_limited":       true,
		"source_url":       "https://www.frootbat.com/blog/2575/most-anticipated-bourbon-releases-of-2026",
		internal.KeySource: "articles/frootbat",
	},
	{
		"product_name":     "Jack Daniel's 14 Year Old Tennessee Whiskey Batch 2",
		"distillery":       "Jack Daniel's",
		"type":             "tennessee",
		"age":              "14 years",
		"release_month":    "February",
		"notes":            "Second batch of the inaugural 14-year expression",
		"is_limited":       true,
		"source_url":       "https://www.frootbat.com/blog/2575/most-anticipated-bourbon-releases-of-2026",
		internal.KeySource: "articles/frootbat",
	},
	{
		"product_name":     "Blood Oath Pact No. 12",
		"distillery":       "Lux Row",
		"type":             "bourbon",
		"proof":            "98.6 Proof",
		"release_month":    "April",
		"finish":           "Italian wine casks (Montepulciano and Sangiovese)",
		"notes":            "Blend finished in Italian wine casks",
		"is_limited":       true,
		"source_url":       "https://www.frootbat.com/blog/2575/most-anticipated-bourbon-releases-of-2026",
		internal.KeySource: "articles/frootbat",
	},
	{
		"product_name":     "Little Book Chapter 10",
		"distillery":       "Jim Beam",
		"type":             "bourbon",
		"proof":            "121.8 Proof",
		"release_month":    "June",
		"finish":           "Sherry and toasted bourbon casks",
		"notes":            "Bourbon finished in sherry and toasted bourbon casks",
		"is_limited":       true,
		"source_url":       "https://www.frootbat.com/blog/2575/most-anticipated-bourbon-releases-of-2026",
		internal.KeySource: "articles/frootbat",
	},
	{
		"product_name":     "Baker's 7 Year Old Single Barrel High Rye Bourbon",
		"distillery":       "Jim Beam",
		"type":             "bourbon",
		"age":              "7 years",
		"notes":            "Single barrel, high-rye mashbill limited release",
		"is_limited":       true,
		"source_url":       "https://www.blackwellswines.com/blogs/news/rare-whiskey-releases-of-2026-what-collectors-should-watch-for",
		internal.KeySource: "articles/blackwells",
	},
	{
		"product_name":     "George Dickel 18 Year Old Bourbon Whisky",
		"distillery":       "George Dickel",
		"type":             "bourbon",
		"age":              "18 years",
		"notes":            "Rare aged expression from George Dickel",
		"is_limited":       true,
		"source_url":       "https://www.blackwellswines.com/blogs/news/rare-whiskey-releases-of-2026-what-collectors-should-watch-for",
		internal.KeySource: "articles/blackwells",
	},
	{
		"product_name":     "Maker's Mark 101 Proof Limited Release",
		"distillery":       "Maker's Mark",
		"type":             "bourbon",
		"proof":            "101 Proof",
		"notes":            "Limited higher-proof expression",
		"is_limited":       true,
		"source_url":       "https://www.blackwellswines.com/blogs/news/rare-whiskey-releases-of-2026-what-collectors-should-watch-for",
		internal.KeySource: "articles/blackwells",
	},
	{
		"product_name":     "Rebel Cask Strength Single Barrel Bourbon",
		"distillery":       "Lux Row",
		"type":             "bourbon",
		"proof":            "126 Proof",
		"notes":            "63% ABV cask strength single barrel",
		"is_limited":       true,
		"source_url":       "https://www.blackwellswines.com/blogs/news/rare-whiskey-releases-of-2026-what-collectors-should-watch-for",
		internal.KeySource: "articles/blackwells",
	},
	{
		"product_name":     "Angel's Envy Bottled-in-Bond Cask Strength Bourbon",
		"distillery":       "Angel's Envy",
		"type":             "bourbon",
		"notes":            "First cask-strength, un-finished release under the Bottled-in-Bond act",
		"is_limited":       true,
		"source_url":       "https://www.blackwellswines.com/blogs/news/rare-whiskey-releases-of-2026-what-collectors-should-watch-for",
		internal.KeySource: "articles/blackwells",
	},
	{
		"product_name":     "Angel's Envy Distiller's Collection 10 Cask Strength Straight Rye",
		"distillery":       "Angel's Envy",
		"type":             "rye",
		"proof":            "112 Proof",
		"age":              "10 years",
		"release_month":    "January",
		"finish":           "Caribbean Rum Casks",
		"notes":            "Finished in Caribbean Rum Casks",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Redwood Empire Thunderbolt Bourbon Whiskey",
		"distillery":       "Redwood Empire",
		"type":             "bourbon",
		"proof":            "94 Proof",
		"release_month":    "January",
		"notes":            "New release from Redwood Empire",
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Colonel E.H. Taylor Bottled in Bond Bourbon 15 Year",
		"distillery":       "Buffalo Trace",
		"type":             "bourbon",
		"proof":            "100 Proof",
		"age":              "15 years",
		"release_month":    "September",
		"notes":            "Part of the Buffalo Trace Antique Collection (BTAC) 2026",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Eagle Rare 17 Year Old Bourbon",
		"distillery":       "Buffalo Trace",
		"type":             "bourbon",
		"proof":            "101 Proof",
		"age":              "17 years",
		"release_month":    "September",
		"notes":            "BTAC 2026 release",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "George T. Stagg Bourbon 2026",
		"distillery":       "Buffalo Trace",
		"type":             "bourbon",
		"age":              "15 years",
		"release_month":    "September",
		"notes":            "BTAC 2026 release, aged 15 years 4 months",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Sazerac 18 Year Old Rye Whiskey 2026",
		"distillery":       "Buffalo Trace",
		"type":             "rye",
		"age":              "18 years",
		"release_month":    "September",
		"notes":            "BTAC 2026 release",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Thomas H. Handy Rye 2026",
		"distillery":       "Buffalo Trace",
		"type":             "rye",
		"age":              "6 years",
		"release_month":    "September",
		"notes":            "BTAC 2026 release",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "William Larue Weller Bourbon 2026",
		"distillery":       "Buffalo Trace",
		"type":             "bourbon",
		"age":              "14 years",
		"release_month":    "September",
		"notes":            "BTAC 2026 release, wheated bourbon",
		"is_limited":       true,
		"source_url":       "https://www.breakingbourbon.com/release-calendar",
		internal.KeySource: "breaking-bourbon",
	},
	{
		"product_name":     "Barrell Bourbon New Year 2026",
		"distillery":       "Barrell Craft Spirits",
		"type":             "blend",
		"age":              "5 years",
		"release_month":    "January",
		"mashbill":         "78% corn, 18% rye, 4% malted barley",
		"notes":            "Sourced from KY, IN, MD, WY, TN, NY, OH. 5 to 16 years old",
		"source_url":       "https://seelbachs.com/blogs/news/barrell-bourbon-armagnac-2026-new-year",
		internal.KeySource: "articles/seelbachs",
	},
}

// Run normalizes and stores the sample dataset, returning the number of
// releases written.
func Run(db *storage.DB, year int) (int, error) {
	count := 0
	for _, raw := range sampleReleases {
		norm := pipeline.NormalizeRelease(raw, year)
		if norm == nil {
			fmt.Printf("  skipped: %v\n", raw["product_name"])
			continue
		}

		if err := db.UpsertRelease(norm); err != nil {
			return count, err
		}

		sourceName := util.CoerceString(raw[internal.KeySource])
		if sourceName == "" {
			sourceName = "unknown"
		}
		if err := db.AddSource(norm.ID, sourceName, util.CoerceString(raw["source_url"]), raw); err != nil {
			return count, err
		}
		count++

		proof := "?"
		if norm.Proof != nil {
			proof = fmt.Sprintf("%g", *norm.Proof)
		}
		fmt.Printf("  %s (%s proof)\n", norm.ProductName, proof)
	}
	return count, nil
}
