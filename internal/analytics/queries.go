package analytics

import "github.com/reignstats/reignstats/internal/monarch"

// ReignResult names the monarch with the longest single reign.
type ReignResult struct {
	Available bool   `json:"available"`
	Name      string `json:"name"`
	Years     int    `json:"years"`
}

// HouseResult names a house and the total years its members reigned.
// House is "" for records that carry no house.
type HouseResult struct {
	Available bool   `json:"available"`
	House     string `json:"house"`
	Years     int    `json:"years"`
}

// NameResult names the most common first name and how often it occurs.
type NameResult struct {
	Available bool   `json:"available"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

// Count returns the number of monarchs in the dataset.
func Count(recs []monarch.Record) int {
	return len(recs)
}

// LongestReign returns the monarch whose reign lasted the longest.
func LongestReign(recs []monarch.Record, currentYear int) ReignResult {
	var best ReignResult
	for i, r := range recs {
		years := monarch.ParseReignYears(r.Years, currentYear)
		if i == 0 || years > best.Years {
			best = ReignResult{Available: true, Name: r.Name, Years: years}
		}
	}
	return best
}

// LongestHouse returns the house whose members reigned the most years in total.
// Records without a house are grouped together under "".
func LongestHouse(recs []monarch.Record, currentYear int) HouseResult {
	order, totals := houseTotals(recs, currentYear)

	var best HouseResult
	for i, house := range order {
		if i == 0 || totals[house] > best.Years {
			best = HouseResult{Available: true, House: house, Years: totals[house]}
		}
	}
	return best
}

// CommonFirstName returns the most frequent first name. Records whose first
// name is empty are ignored.
func CommonFirstName(recs []monarch.Record) NameResult {
	var order []string
	counts := make(map[string]int)
	for _, r := range recs {
		first := r.FirstName()
		if first == "" {
			continue
		}
		if _, seen := counts[first]; !seen {
			order = append(order, first)
		}
		counts[first]++
	}

	var best NameResult
	for i, name := range order {
		if i == 0 || counts[name] > best.Count {
			best = NameResult{Available: true, Name: name, Count: counts[name]}
		}
	}
	return best
}

// CurrentHouse returns the house of the last monarch in the sequence together
// with the years every member of that house reigned, contiguous or not.
// Not available when the sequence is empty or the last monarch has no house.
func CurrentHouse(recs []monarch.Record, currentYear int) HouseResult {
	if len(recs) == 0 {
		return HouseResult{}
	}
	house := recs[len(recs)-1].House
	if house == "" {
		return HouseResult{}
	}

	var total int
	for _, r := range recs {
		if r.House == house {
			total += monarch.ParseReignYears(r.Years, currentYear)
		}
	}
	return HouseResult{Available: true, House: house, Years: total}
}

// houseTotals sums reign years per house. order lists houses by first
// occurrence.
func houseTotals(recs []monarch.Record, currentYear int) (order []string, totals map[string]int) {
	totals = make(map[string]int)
	for _, r := range recs {
		// A null hse decodes to "", so it groups with an explicit "".
		if _, seen := totals[r.House]; !seen {
			order = append(order, r.House)
		}
		totals[r.House] += monarch.ParseReignYears(r.Years, currentYear)
	}
	return order, totals
}
