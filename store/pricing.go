package store

import (
	"math"
	"strconv"
	"strings"

	"printhub-api/models"
)

// Pricing is the rate card used to cost an order at creation time.
type Pricing struct {
	RateBW         float64 // per page, black and white
	RateColor      float64 // per page, color
	A3Multiplier   float64 // A3 sheets are billed at a multiple of the base rate
	DoubleSidedOff float64 // fraction taken off the rate for double-sided jobs
}

// DefaultPricing returns the shop's standard rate card.
func DefaultPricing() Pricing {
	return Pricing{
		RateBW:         2.00,
		RateColor:      10.00,
		A3Multiplier:   2.0,
		DoubleSidedOff: 0.10,
	}
}

// Rate returns the per-page rate for a print type.
func (p Pricing) Rate(t models.PrintType) float64 {
	if t == models.PrintColor {
		return p.RateColor
	}
	return p.RateBW
}

// Cost computes the price of a job: copies x billable pages x rate, with the
// paper-size multiplier applied and the double-sided discount taken off the
// rate. Billable pages honour the page-range expression; consumption does not.
func (p Pricing) Cost(files []models.PrintFile, opts models.PrintOptions) float64 {
	totalPages := 0
	for _, f := range files {
		totalPages += f.Pages
	}
	if totalPages == 0 {
		return 0
	}

	rate := p.Rate(opts.PrintType)
	if opts.Sided == models.DoubleSided {
		rate *= 1 - p.DoubleSidedOff
	}

	multiplier := 1.0
	if opts.PaperSize == "A3" {
		multiplier *= p.A3Multiplier
	}

	pages := billablePages(opts.PageRange, totalPages)
	return float64(opts.Copies) * float64(pages) * rate * multiplier
}

// billablePages evaluates a page-range expression like "all", "1-12" or
// "1-3,7" against the document's page count. Pages beyond the document are
// clipped; a malformed expression falls back to billing every page.
func billablePages(rangeExpr string, max int) int {
	rangeExpr = strings.TrimSpace(rangeExpr)
	if rangeExpr == "" || rangeExpr == "all" {
		return max
	}

	count := 0
	valid := false
	for _, part := range strings.Split(rangeExpr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err1 != nil || err2 != nil || start < 1 || start > end {
				continue
			}
			if start > max {
				valid = true
				continue
			}
			count += int(math.Min(float64(end), float64(max))) - start + 1
			valid = true
		} else {
			page, err := strconv.Atoi(part)
			if err != nil || page < 1 {
				continue
			}
			if page <= max {
				count++
			}
			valid = true
		}
	}
	if !valid {
		return max
	}
	return count
}
