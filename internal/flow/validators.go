package flow

import "strings"

// allowedBrands lists every spelling of the brands Hawa Co sells,
// Arabic and Latin. Matching is substring so "عايز دايون 150" passes.
var allowedBrands = []string{
	"ابو حوا", "أبو حوا",
	"دايون", "dayun",
	"هوجان", "hogan",
	"بنلي", "benelli",
	"كي واي", "كيوى", "keeway", "keway",
	"فيجورى", "vigory",
	"زونتيس", "zontes", "زانتوس",
	"cmg", "سي ام جي",
	"تايجر", "tiger",
	"تروسكل", "تروسيكل", "tricycle",
}

// sameNumberPhrases are the ways customers say "WhatsApp is the same
// number as my phone".
var sameNumberPhrases = []string{"نفس الرقم", "نفس", "هو", "نفسه"}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsValidFullName requires at least three whitespace-separated parts:
// first name, father's name, family name.
func IsValidFullName(name string) bool {
	return len(strings.Fields(name)) >= 3
}

// IsAllowedBike reports whether the text mentions any brand Hawa Co sells.
func IsAllowedBike(text string) bool {
	lower := strings.ToLower(text)
	for _, brand := range allowedBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return true
		}
	}
	return false
}

// IsSameNumberPhrase reports whether the text says WhatsApp equals the
// phone number already given.
func IsSameNumberPhrase(text string) bool {
	norm := normalize(text)
	for _, phrase := range sameNumberPhrases {
		if norm == phrase {
			return true
		}
	}
	return false
}

// IsInstallment reports whether the payment answer asks for installments.
func IsInstallment(text string) bool {
	norm := normalize(text)
	return strings.Contains(norm, "قسط") || strings.Contains(norm, "تقسيط")
}
