package agent

import (
	"regexp"
	"strings"
	"time"
)

// Response cache TTLs. Questions anchored entirely in past months get the
// long TTL because their answers cannot change; anything touching the
// current period stays fresh for minutes only.
const (
	historicalTTL = 24 * time.Hour
	liveTTL       = 5 * time.Minute

	responseCachePrefix = "resp:"
)

// istZone anchors "current month" to Indian Standard Time, where the
// business operates.
var istZone = time.FixedZone("IST", 5*3600+30*60)

var (
	isoDateRe      = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	monthYearRe    = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})\b`)
	relativePastRe = regexp.MustCompile(`(?i)\b(last|previous)\s+(month|quarter|year)\b`)
	todayRe        = regexp.MustCompile(`(?i)\btoday\b`)
)

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// responseCacheKey normalizes the user message (trim, lowercase, collapse
// whitespace) and scopes it by vertical.
func responseCacheKey(message, vertical string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(message)), " ")
	return responseCachePrefix + norm + ":" + vertical
}

// responseTTL picks the cache TTL by scanning the message for date signals.
// Every detected date strictly before the start of the current IST month
// means the answer is historical and safe to keep for a day. Mixed, current,
// future, or absent signals get the short TTL.
func responseTTL(message string, now time.Time) time.Duration {
	monthStart := startOfCurrentMonth(now)
	signals := dateSignals(message, monthStart)
	if len(signals) == 0 {
		return liveTTL
	}
	for _, signal := range signals {
		if !signal.Before(monthStart) {
			return liveTTL
		}
	}
	return historicalTTL
}

func startOfCurrentMonth(now time.Time) time.Time {
	ist := now.In(istZone)
	return time.Date(ist.Year(), ist.Month(), 1, 0, 0, 0, 0, istZone)
}

// dateSignals extracts every date reference in the message. Relative past
// phrases resolve to just before the current month start, so they always
// classify as historical.
func dateSignals(message string, monthStart time.Time) []time.Time {
	var signals []time.Time

	for _, m := range isoDateRe.FindAllStringSubmatch(message, -1) {
		year, month, day := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		signals = append(signals, time.Date(year, time.Month(month), day, 0, 0, 0, 0, istZone))
	}

	for _, m := range monthYearRe.FindAllStringSubmatch(message, -1) {
		month, ok := monthByPrefix[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		signals = append(signals, time.Date(atoi(m[2]), month, 1, 0, 0, 0, 0, istZone))
	}

	if relativePastRe.MatchString(message) {
		signals = append(signals, monthStart.Add(-time.Second))
	}

	// "today" resolves to the current month start, so it always classifies
	// as live.
	if todayRe.MatchString(message) {
		signals = append(signals, monthStart)
	}

	return signals
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
