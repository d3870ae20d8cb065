package domain

import "sort"

// TagMeta is a tag label with the number of repos in the current
// collection carrying it.
type TagMeta struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AggregateTags derives the frequency table of all tags across the
// collection. The result is sorted lexicographically by label.
//
// GitHub topics are restricted to lower-case letters, digits and
// hyphens, so plain byte-wise comparison matches locale-aware
// ordering for every label that can occur.
func AggregateTags(repos []Repo) []TagMeta {
	counts := make(map[string]int)
	for i := range repos {
		for _, tag := range repos[i].AllTags {
			counts[tag]++
		}
	}

	tags := make([]TagMeta, 0, len(counts))
	for label, count := range counts {
		tags = append(tags, TagMeta{Label: label, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Label < tags[j].Label
	})
	return tags
}
