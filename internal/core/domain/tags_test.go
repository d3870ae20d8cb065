package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateTags(t *testing.T) {
	repos := []Repo{
		Normalize(RawRepo{Topics: []string{"ml", "cv"}}),
		Normalize(RawRepo{Topics: []string{"ml"}}),
	}

	tags := AggregateTags(repos)

	assert.Equal(t, []TagMeta{
		{Label: "cv", Count: 1},
		{Label: "ml", Count: 2},
	}, tags)
}

func TestAggregateTags_Empty(t *testing.T) {
	assert.Empty(t, AggregateTags(nil))
	assert.Empty(t, AggregateTags([]Repo{Normalize(RawRepo{})}))
}

func TestAggregateTags_SortedByLabel(t *testing.T) {
	repos := []Repo{
		Normalize(RawRepo{Topics: []string{"zig", "api", "ml-ops", "ml"}}),
	}

	tags := AggregateTags(repos)

	labels := make([]string, len(tags))
	for i, tag := range tags {
		labels[i] = tag.Label
	}
	assert.Equal(t, []string{"api", "ml", "ml-ops", "zig"}, labels)
}

func TestAggregateTags_CaseVariantsCountOnce(t *testing.T) {
	repos := []Repo{
		Normalize(RawRepo{Topics: []string{"CV", "cv"}}),
		Normalize(RawRepo{Topics: []string{"Cv"}}),
	}

	tags := AggregateTags(repos)

	assert.Equal(t, []TagMeta{{Label: "cv", Count: 2}}, tags)
}
