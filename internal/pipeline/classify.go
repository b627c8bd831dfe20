package pipeline

import (
	"strings"

	"bourboncal/internal"
	"bourboncal/internal/util"
)

// typeRule maps a lowercase text fragment to a type tag. Rules are scanned
// in order and the first fragment contained in the input wins, so more
// specific fragments must be listed before broader ones that would shadow
// them with a different tag.
type typeRule struct {
	fragment string
	tag      internal.WhiskeyType
}

var typeRules = []typeRule{
	{"bourbon", internal.TypeBourbon},
	{"kentucky straight bourbon", internal.TypeBourbon},
	{"straight bourbon", internal.TypeBourbon},
	{"rye", internal.TypeRye},
	{"straight rye", internal.TypeRye},
	{"rye whiskey", internal.TypeRye},
	{"wheat whiskey", internal.TypeWheat},
	{"wheated bourbon", internal.TypeBourbon},
	{"tennessee whiskey", internal.TypeTennessee},
	{"tennessee", internal.TypeTennessee},
	{"single malt", internal.TypeSingleMalt},
	{"american single malt", internal.TypeSingleMalt},
	{"scotch", internal.TypeScotch},
	{"japanese whisky", internal.TypeJapanese},
	{"blended", internal.TypeBlend},
	{"blend", internal.TypeBlend},
}

var scotchRegions = []string{"scotch", "highland", "speyside", "islay"}

// ClassifyType maps free text to a whiskey type tag. It always produces a
// value: unmatched or absent input defaults to bourbon.
func ClassifyType(raw any) internal.WhiskeyType {
	s := strings.ToLower(strings.TrimSpace(util.CoerceString(raw)))
	if s == "" {
		return internal.TypeBourbon
	}

	for _, rule := range typeRules {
		if strings.Contains(s, rule.fragment) {
			return rule.tag
		}
	}

	if strings.Contains(s, "rye") {
		return internal.TypeRye
	}
	if strings.Contains(s, "wheat") {
		return internal.TypeWheat
	}
	for _, region := range scotchRegions {
		if strings.Contains(s, region) {
			return internal.TypeScotch
		}
	}
	return internal.TypeBourbon
}

// distilleryRule maps a brand or sub-brand fragment to the distillery that
// produces it. Same first-substring-match semantics as typeRules.
type distilleryRule struct {
	fragment   string
	distillery string
}

var distilleryRules = []distilleryRule{
	{"buffalo trace", "Buffalo Trace"},
	{"wild turkey", "Wild Turkey"},
	{"heaven hill", "Heaven Hill"},
	{"jim beam", "Jim Beam"},
	{"beam suntory", "Jim Beam"},
	{"maker's mark", "Maker's Mark"},
	{"makers mark", "Maker's Mark"},
	{"woodford reserve", "Woodford Reserve"},
	{"four roses", "Four Roses"},
	{"knob creek", "Jim Beam"},
	{"booker's", "Jim Beam"},
	{"bookers", "Jim Beam"},
	{"baker's", "Jim Beam"},
	{"basil hayden", "Jim Beam"},
	{"old forester", "Brown-Forman"},
	{"jack daniel's", "Jack Daniel's"},
	{"jack daniel", "Jack Daniel's"},
	{"george dickel", "George Dickel"},
	{"barrell", "Barrell Craft Spirits"},
	{"angel's envy", "Angel's Envy"},
	{"angels envy", "Angel's Envy"},
	{"michter's", "Michter's"},
	{"michter", "Michter's"},
	{"e.h. taylor", "Buffalo Trace"},
	{"eagle rare", "Buffalo Trace"},
	{"george t. stagg", "Buffalo Trace"},
	{"stagg", "Buffalo Trace"},
	{"blanton's", "Buffalo Trace"},
	{"blanton", "Buffalo Trace"},
	{"weller", "Buffalo Trace"},
	{"pappy van winkle", "Buffalo Trace"},
	{"van winkle", "Buffalo Trace"},
	{"sazerac", "Buffalo Trace"},
	{"elijah craig", "Heaven Hill"},
	{"evan williams", "Heaven Hill"},
	{"larceny", "Heaven Hill"},
	{"henry mckenna", "Heaven Hill"},
	{"parker's heritage", "Heaven Hill"},
	{"old fitzgerald", "Heaven Hill"},
	{"rebel", "Lux Row"},
	{"blood oath", "Lux Row"},
	{"little book", "Jim Beam"},
	{"redwood empire", "Redwood Empire"},
	{"belle meade", "Nelson's Green Brier"},
	{"whistlepig", "WhistlePig"},
	{"high west", "High West"},
	{"bardstown bourbon", "Bardstown Bourbon Company"},
	{"king of kentucky", "Brown-Forman"},
	{"old elk", "Old Elk"},
	{"rabbit hole", "Rabbit Hole"},
	{"still austin", "Still Austin"},
	{"kentucky owl", "Kentucky Owl"},
	{"smoke wagon", "Smoke Wagon"},
	{"new riff", "New Riff"},
	{"wilderness trail", "Wilderness Trail"},
	{"castle & key", "Castle & Key"},
	{"starlight", "Starlight"},
	{"colonel e.h. taylor", "Buffalo Trace"},
	{"thomas h. handy", "Buffalo Trace"},
	{"william larue weller", "Buffalo Trace"},
}

// ExtractDistillery infers a canonical distillery name from a product name.
// Used only when the source supplies no explicit distillery; nil when no
// known brand fragment appears.
func ExtractDistillery(productName string) *string {
	if strings.TrimSpace(productName) == "" {
		return nil
	}
	lower := strings.ToLower(productName)
	for _, rule := range distilleryRules {
		if strings.Contains(lower, rule.fragment) {
			return util.StringPtr(rule.distillery)
		}
	}
	return nil
}
