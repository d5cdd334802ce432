package numerals

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	percentRangePattern = regexp.MustCompile(`(\d+)% to (\d+)%`)
	percentPattern      = regexp.MustCompile(`(\d+)%`)
	ordinalPattern      = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)
	currencyPattern     = regexp.MustCompile(`\$(\d+)`)
	fourDigitPattern    = regexp.MustCompile(`\b\d{4}\b`)
	numberPattern       = regexp.MustCompile(`\d+s?`)
	decadePattern       = regexp.MustCompile(`^\d0s$`)
)

// passes is the ordered rewrite cascade. Later passes only ever see digits
// the earlier, more specific passes left untouched.
var passes = []func(string) string{
	expandPercentRanges,
	expandPercents,
	expandOrdinals,
	expandCurrency,
	expandFourDigit,
	expandRemaining,
}

// Expand rewrites every digit sequence in text into English words, applying
// percentage, ordinal, currency, four-digit, and decade rules before the
// generic cardinal fallback. Digit runs too large for an int are left as-is.
func Expand(text string) string {
	for _, pass := range passes {
		text = pass(text)
	}
	return text
}

func expandPercentRanges(text string) string {
	return percentRangePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := percentRangePattern.FindStringSubmatch(match)
		low, err := strconv.Atoi(groups[1])
		if err != nil {
			return match
		}
		high, err := strconv.Atoi(groups[2])
		if err != nil {
			return match
		}
		return Cardinal(low) + " to " + Cardinal(high) + " percent"
	})
}

func expandPercents(text string) string {
	return percentPattern.ReplaceAllStringFunc(text, func(match string) string {
		n, err := strconv.Atoi(strings.TrimSuffix(match, "%"))
		if err != nil {
			return match
		}
		return Cardinal(n) + " percent"
	})
}

func expandOrdinals(text string) string {
	return ordinalPattern.ReplaceAllStringFunc(text, func(match string) string {
		n, err := strconv.Atoi(match[:len(match)-2])
		if err != nil {
			return match
		}
		return Ordinal(n)
	})
}

func expandCurrency(text string) string {
	return currencyPattern.ReplaceAllStringFunc(text, func(match string) string {
		n, err := strconv.Atoi(strings.TrimPrefix(match, "$"))
		if err != nil {
			return match
		}
		return Cardinal(n) + " dollars"
	})
}

// expandFourDigit renders four-digit numbers in the year style spoken
// English prefers: 2025 -> "twenty twenty-five", 1400 -> "fourteen hundred".
// Round thousands keep the plain cardinal form.
func expandFourDigit(text string) string {
	return fourDigitPattern.ReplaceAllStringFunc(text, func(match string) string {
		n, err := strconv.Atoi(match)
		if err != nil {
			return match
		}
		if n%1000 == 0 {
			return Cardinal(n)
		}
		high, low := n/100, n%100
		if low != 0 {
			return Cardinal(high) + " " + Cardinal(low)
		}
		return Cardinal(high) + " hundred"
	})
}

func expandRemaining(text string) string {
	return numberPattern.ReplaceAllStringFunc(text, func(match string) string {
		if decadePattern.MatchString(match) {
			decade, err := strconv.Atoi(strings.TrimSuffix(match, "s"))
			if err != nil {
				return match
			}
			return strings.ReplaceAll(Cardinal(decade), "y", "ie") + "s"
		}
		digits, plural := match, false
		if strings.HasSuffix(match, "s") {
			digits, plural = match[:len(match)-1], true
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return match
		}
		word := Cardinal(n)
		if plural {
			word += "s"
		}
		return word
	})
}
