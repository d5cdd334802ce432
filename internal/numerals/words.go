package numerals

import "strings"

var onesWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var scaleWords = []string{"", "thousand", "million", "billion", "trillion"}

// Irregular final-word substitutions for ordinals; everything else takes a
// plain "th" (after y -> ieth rewriting for tens).
var ordinalIrregular = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// Cardinal renders a non-negative integer as English words, e.g.
// 45 -> "forty-five", 123 -> "one hundred and twenty-three",
// 12345 -> "twelve thousand, three hundred and forty-five".
func Cardinal(n int) string {
	if n < 0 {
		return "minus " + Cardinal(-n)
	}
	if n < 100 {
		return underHundred(n)
	}

	// Split into thousands groups, least significant first.
	var groups []int
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		word := underThousand(groups[i])
		if i > 0 {
			word += " " + scaleWords[i]
		}
		parts = append(parts, word)
	}

	// A trailing group below one hundred attaches with "and" rather than a
	// comma: "one thousand and fifty-six".
	last := len(parts) - 1
	if last > 0 && groups[0] > 0 && groups[0] < 100 {
		return strings.Join(parts[:last], ", ") + " and " + parts[last]
	}
	return strings.Join(parts, ", ")
}

// Ordinal renders a non-negative integer as an English ordinal word,
// e.g. 21 -> "twenty-first", 70 -> "seventieth".
func Ordinal(n int) string {
	cardinal := Cardinal(n)

	// Rewrite only the final word; it may follow a space or a hyphen.
	cut := strings.LastIndexAny(cardinal, " -")
	prefix, final := "", cardinal
	if cut >= 0 {
		prefix, final = cardinal[:cut+1], cardinal[cut+1:]
	}

	switch {
	case ordinalIrregular[final] != "":
		final = ordinalIrregular[final]
	case strings.HasSuffix(final, "y"):
		final = strings.TrimSuffix(final, "y") + "ieth"
	default:
		final += "th"
	}
	return prefix + final
}

func underHundred(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + "-" + onesWords[n%10]
}

func underThousand(n int) string {
	if n < 100 {
		return underHundred(n)
	}
	word := onesWords[n/100] + " hundred"
	if rest := n % 100; rest != 0 {
		word += " and " + underHundred(rest)
	}
	return word
}
