package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/utils"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func cents(v int) *int { return &v }

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

func TestClassifyVariant(t *testing.T) {
	window := utils.DefaultRecencyWindowDays

	tests := []struct {
		name        string
		salePrice   *int
		releaseDate time.Time
		want        Variant
	}{
		{name: "sale on an old shoe", salePrice: cents(4999), releaseDate: testNow.AddDate(-10, 0, 0), want: VariantOnSale},
		{name: "sale on a new shoe wins", salePrice: cents(4999), releaseDate: daysAgo(2), want: VariantOnSale},
		{name: "zero sale price still on sale", salePrice: cents(0), releaseDate: daysAgo(400), want: VariantOnSale},
		{name: "released five days ago", releaseDate: daysAgo(5), want: VariantNewRelease},
		{name: "released exactly thirty days ago", releaseDate: daysAgo(30), want: VariantNewRelease},
		{name: "released thirty one days ago", releaseDate: daysAgo(31), want: VariantDefault},
		{name: "released two years ago", releaseDate: testNow.AddDate(-2, 0, 0), want: VariantDefault},
		{name: "zero release date", releaseDate: time.Time{}, want: VariantDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVariant(tt.salePrice, tt.releaseDate, testNow, window))
		})
	}
}

func TestClassifyVariantSaleIgnoresReleaseDate(t *testing.T) {
	for days := 0; days <= 400; days += 7 {
		got := ClassifyVariant(cents(1000+days), daysAgo(days), testNow, utils.DefaultRecencyWindowDays)
		assert.Equal(t, VariantOnSale, got, "days=%d", days)
	}
}

func TestClassifyVariantRespectsWindow(t *testing.T) {
	assert.Equal(t, VariantNewRelease, ClassifyVariant(nil, daysAgo(45), testNow, 60))
	assert.Equal(t, VariantDefault, ClassifyVariant(nil, daysAgo(8), testNow, 7))
}

func TestShoeVariantIgnoresOtherFields(t *testing.T) {
	base := Shoe{Slug: "a", Name: "A", Price: 100, NumOfColors: 1, ReleaseDate: daysAgo(5)}
	other := Shoe{Slug: "zz", Name: "Other", Price: 99999, NumOfColors: 12, ReleaseDate: daysAgo(5)}

	assert.Equal(t, base.Variant(testNow, 30), other.Variant(testNow, 30))
}

func TestVariantText(t *testing.T) {
	for _, v := range []Variant{VariantDefault, VariantOnSale, VariantNewRelease} {
		text, err := v.MarshalText()
		require.NoError(t, err)

		var back Variant
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, v, back)
	}

	var v Variant
	assert.Error(t, v.UnmarshalText([]byte("clearance")))

	out, err := json.Marshal(map[string]Variant{"variant": VariantNewRelease})
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"new-release"}`, string(out))
}
