package extract

import (
	"sort"
	"strings"

	"goreview/adapters/tabular"
)

// techVocabulary lists the technology names worth surfacing in a review, in
// canonical casing. Detection is case-insensitive substring containment; the
// canonical spelling is what lands in the dataset.
var techVocabulary = []string{
	"React Native", "MMKV", "Databricks", "Mixpanel", "AsyncStorage",
	"Fabric", "TurboModules", "Protobufs", "Crashlytics", "SDK",
	"DigiLocker", "Acko", "ZeptoLocker", "AETHER", "Horizon",
	"CleverTap", "AppsFlyer", "KNOW SDK", "HyperVerge", "Lucid",
	"ClickHouse", "Kafka", "LogChef", "Storybook", "Fresco",
	"pdfplumber", "native-stack", "KeyboardController", "PagerView",
	"Android", "iOS", "TypeScript", "JavaScript", "Python", "Node.js",
	"API", "JWT", "OAuth",
}

// DetectTechnologies scans the joined row titles for vocabulary entries.
// The result is sorted and free of duplicates.
func DetectTechnologies(rows []tabular.Row) []string {
	titles := make([]string, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, row.Get(colTitle))
	}
	corpus := strings.ToLower(strings.Join(titles, " "))

	found := []string{}
	for _, tech := range techVocabulary {
		if strings.Contains(corpus, strings.ToLower(tech)) {
			found = append(found, tech)
		}
	}
	sort.Strings(found)
	return found
}
