package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/scoring"
)

func TestTableTotalOverAllOrderedPairs(t *testing.T) {
	require.Len(t, pairTable, 36, "table must cover all 6x6 ordered pairs")

	for _, p := range riasec.Alphabet {
		for _, s := range riasec.Alphabet {
			for _, conf := range []scoring.Level{scoring.High, scoring.Medium, scoring.Low} {
				got := Map(p, s, conf, "8-10")
				assert.NotEmpty(t, got.Stream, "pair %s%s", p, s)
				assert.NotEmpty(t, got.CareerFields, "pair %s%s", p, s)
				assert.NotEmpty(t, got.Guidance, "pair %s%s", p, s)
			}
		}
	}
}

func TestOrderSensitive(t *testing.T) {
	ri := Map(riasec.Realistic, riasec.Investigative, scoring.High, "11-12")
	ir := Map(riasec.Investigative, riasec.Realistic, scoring.High, "11-12")
	assert.NotEqual(t, ri.CareerFields, ir.CareerFields, "(R,I) and (I,R) are distinct profiles")
}

func TestMissingSecondaryReadsAsSamePair(t *testing.T) {
	alone := Map(riasec.Social, "", scoring.Medium, "8-10")
	same := Map(riasec.Social, riasec.Social, scoring.Medium, "8-10")
	assert.Equal(t, same, alone)
}

func TestDeterministic(t *testing.T) {
	a := Map(riasec.Enterprising, riasec.Conventional, scoring.High, "11-12")
	b := Map(riasec.Enterprising, riasec.Conventional, scoring.High, "11-12")
	assert.Equal(t, a, b)
}

func TestGradeChangesPhrasingNotPair(t *testing.T) {
	junior := Map(riasec.Investigative, riasec.Social, scoring.High, "8-10")
	senior := Map(riasec.Investigative, riasec.Social, scoring.High, "11-12")

	assert.Equal(t, junior.Stream, senior.Stream)
	assert.Equal(t, junior.CareerFields, senior.CareerFields)
	assert.NotEqual(t, junior.Guidance, senior.Guidance)
}

func TestConfidenceTempersGuidanceOnly(t *testing.T) {
	high := Map(riasec.Artistic, riasec.Enterprising, scoring.High, "8-10")
	low := Map(riasec.Artistic, riasec.Enterprising, scoring.Low, "8-10")

	assert.Equal(t, high.Stream, low.Stream)
	assert.Equal(t, high.CareerFields, low.CareerFields)
	assert.NotEqual(t, high.Guidance, low.Guidance)
}

func TestDegenerateInputNeutralDefault(t *testing.T) {
	got := Map("", "", scoring.Low, "")
	assert.Equal(t, "Exploratory", got.Stream)
	assert.NotEmpty(t, got.CareerFields)
	assert.NotEmpty(t, got.Guidance)
}

func TestFromTopDomains(t *testing.T) {
	got := FromTopDomains([]riasec.Domain{riasec.Realistic, riasec.Investigative}, scoring.High, "11-12")
	want := Map(riasec.Realistic, riasec.Investigative, scoring.High, "11-12")
	assert.Equal(t, want, got)

	solo := FromTopDomains([]riasec.Domain{riasec.Conventional}, scoring.Low, "")
	assert.Equal(t, Map(riasec.Conventional, riasec.Conventional, scoring.Low, ""), solo)

	empty := FromTopDomains(nil, scoring.Low, "")
	assert.Equal(t, "Exploratory", empty.Stream)
}
