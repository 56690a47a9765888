package locale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary_Normalize_ReplacesNilCollections(t *testing.T) {
	var d Dictionary
	d.Normalize()

	assert.NotNil(t, d.Nav)
	assert.NotNil(t, d.Ribbons)
	assert.NotNil(t, d.Services)
	assert.NotNil(t, d.HospitalDepts)
	assert.NotNil(t, d.Process)
	assert.NotNil(t, d.Plans)
	assert.NotNil(t, d.TravelBullets)
	assert.NotNil(t, d.PolicyLinksGroups)
	assert.NotNil(t, d.EligibleGroups)
}

func TestDictionary_Normalize_ReplacesNestedNilCollections(t *testing.T) {
	d := Dictionary{
		Plans:             []PricingPlan{{Name: "Standard"}},
		PolicyLinksGroups: []LinkGroup{{City: "Shanghai"}},
		EligibleGroups:    []CountryGroup{{Region: "Europe"}},
	}
	d.Normalize()

	assert.NotNil(t, d.Plans[0].Items)
	assert.NotNil(t, d.PolicyLinksGroups[0].Links)
	assert.NotNil(t, d.EligibleGroups[0].Countries)
}

func TestDictionary_SerializesWithoutNulls(t *testing.T) {
	// A normalized empty dictionary must serialize every collection as [],
	// never null, so the presentation layer can iterate unconditionally
	var d Dictionary
	d.Normalize()

	raw, err := json.Marshal(&d)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"nav", "ribbons", "services", "hospitalDepts", "process", "plans", "travelBullets", "policyLinksGroups", "eligibleGroups"} {
		assert.NotNil(t, decoded[key], "field %q serialized as null", key)
	}
}

func TestDictionary_NilSafeAccessors(t *testing.T) {
	var d *Dictionary

	assert.Equal(t, "", d.NavLabel("services"))
	assert.NotNil(t, d.RibbonList())
	assert.Empty(t, d.RibbonList())
	assert.NotNil(t, d.ServiceList())
	assert.NotNil(t, d.EligibleGroupList())

	g := CountryGroup{Region: "Europe"}
	assert.NotNil(t, g.CountryList())
	assert.Empty(t, g.CountryList())
}

func TestEmbeddedDictionaries_AreComplete(t *testing.T) {
	table, err := NewTable("zh")
	require.NoError(t, err)

	for _, code := range table.Codes() {
		dict := table.Resolve(code)
		require.NotNil(t, dict, "locale %q", code)

		assert.Equal(t, "MediBridge Global", dict.Brand, "locale %q", code)
		assert.NotEmpty(t, dict.Tagline, "locale %q", code)
		assert.NotEmpty(t, dict.NavLabel("services"), "locale %q", code)
		assert.NotEmpty(t, dict.RibbonList(), "locale %q", code)
		assert.Len(t, dict.ServiceList(), 6, "locale %q", code)
		assert.NotEmpty(t, dict.Process, "locale %q", code)
		assert.NotEmpty(t, dict.Plans, "locale %q", code)
		assert.NotEmpty(t, dict.EligibleGroupList(), "locale %q", code)
		assert.NotEmpty(t, dict.Form.Name, "locale %q", code)
		assert.NotEmpty(t, dict.SubmitOK, "locale %q", code)
		assert.NotEmpty(t, dict.SubmitFail, "locale %q", code)
	}
}
