package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"printhub-api/models"
)

func baseOptions() models.PrintOptions {
	return models.PrintOptions{
		Copies:    1,
		PageRange: "all",
		PrintType: models.PrintBlackAndWhite,
		Sided:     models.SingleSided,
		PaperSize: "A4",
	}
}

func TestCost_BasicScenario(t *testing.T) {
	p := DefaultPricing()
	files := []models.PrintFile{{Name: "doc.pdf", Pages: 12}}
	opts := baseOptions()
	opts.Copies = 2

	// 12 pages x 2 copies x 2.00/page bw
	assert.InDelta(t, 48.0, p.Cost(files, opts), 1e-9)
}

func TestCost_ColorRate(t *testing.T) {
	p := DefaultPricing()
	files := []models.PrintFile{{Name: "slides.pdf", Pages: 10}}
	opts := baseOptions()
	opts.PrintType = models.PrintColor

	assert.InDelta(t, 100.0, p.Cost(files, opts), 1e-9)
}

func TestCost_A3Multiplier(t *testing.T) {
	p := DefaultPricing()
	files := []models.PrintFile{{Name: "poster.pdf", Pages: 4}}
	opts := baseOptions()
	opts.PaperSize = "A3"

	assert.InDelta(t, 16.0, p.Cost(files, opts), 1e-9)
}

func TestCost_DoubleSidedDiscount(t *testing.T) {
	p := DefaultPricing()
	files := []models.PrintFile{{Name: "notes.pdf", Pages: 10}}
	opts := baseOptions()
	opts.Sided = models.DoubleSided

	// 10 pages x 1 copy x (2.00 x 0.9)
	assert.InDelta(t, 18.0, p.Cost(files, opts), 1e-9)
}

func TestCost_PageRangeSelection(t *testing.T) {
	p := DefaultPricing()
	files := []models.PrintFile{{Name: "doc.pdf", Pages: 20}}

	cases := []struct {
		name      string
		pageRange string
		want      float64
	}{
		{"all keyword", "all", 40},
		{"empty means all", "", 40},
		{"simple range", "1-5", 10},
		{"range plus single", "1-3,7", 8},
		{"end clipped to document", "15-30", 12},
		{"single page beyond document ignored", "25", 0},
		{"malformed falls back to all", "five-nine", 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := baseOptions()
			opts.PageRange = tc.pageRange
			assert.InDelta(t, tc.want, p.Cost(files, opts), 1e-9)
		})
	}
}

func TestCost_MultipleFilesSumPages(t *testing.T) {
	p := DefaultPricing()
	files := []models.PrintFile{
		{Name: "a.pdf", Pages: 3},
		{Name: "b.pdf", Pages: 7},
	}
	assert.InDelta(t, 20.0, p.Cost(files, baseOptions()), 1e-9)
}

func TestCost_NoPages(t *testing.T) {
	p := DefaultPricing()
	assert.Zero(t, p.Cost(nil, baseOptions()))
}
