package directory

// Counties lists Taiwan's 22 top-level administrative regions.
// Parsed tokens must match an entry byte-for-byte; no normalization,
// no substring matches.
var Counties = []string{
	"臺北市",
	"新北市",
	"桃園市",
	"臺中市",
	"臺南市",
	"高雄市",
	"基隆市",
	"新竹市",
	"嘉義市",
	"新竹縣",
	"苗栗縣",
	"彰化縣",
	"南投縣",
	"雲林縣",
	"嘉義縣",
	"屏東縣",
	"宜蘭縣",
	"花蓮縣",
	"臺東縣",
	"澎湖縣",
	"金門縣",
	"連江縣",
}

var countySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Counties))
	for _, c := range Counties {
		m[c] = struct{}{}
	}
	return m
}()

// IsCounty reports whether token is exactly one of the 22 region names.
func IsCounty(token string) bool {
	_, ok := countySet[token]
	return ok
}
