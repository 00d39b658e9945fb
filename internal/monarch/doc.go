// Package monarch defines the monarch record decoded from the upstream dataset
// and the reign-length arithmetic shared by every statistic.
//
// The upstream JSON uses short field names (id, nm, cty, hse, yrs). Record maps
// them onto readable Go fields; absent or null fields decode to "".
//
// ParseReignYears turns a "start-end" range into a duration in years:
//
//	"1066-1087" → 21
//	"1952-"     → currentYear - 1952 (ongoing reign)
//	"1066"      → 0 (single-year reign)
//	"", "abc-1200" → 0
package monarch
