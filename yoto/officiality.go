package yoto

import (
	"regexp"
	"strings"

	"github.com/yack-order/toyo-discord-bot/model"
)

// Officiality labels. UnknownCardType is a sentinel result, not an error.
const (
	OfficialityYoto = "Yoto"
	OfficialityMYO  = "MYO"
	OfficialityDemo = "Demo"
	OfficialityFree = "Free"
	UnknownCardType = "unknown card type"
)

// demoRe covers the demo-description phrases that need no lookahead. The
// "Discover" prefix carries exclusions and is handled separately.
var demoRe = regexp.MustCompile(`(: A preview)|(: The first)|(: Prologue)|(Chapter 1)|(Chapter one)|([0-9]+ track[s]? Full Card: [0-9]+ tracks. Available: Until)`)

// discoverExclusions are the "Discover..." continuations that do NOT indicate
// a demo card.
var discoverExclusions = []string{": The full card", " ten", " fascinating", " the science"}

// Officiality classifies the provenance of a card. Rules run in order and the
// first match wins; later rules are broader and would mask earlier ones if
// reordered.
func Officiality(url string, card *model.Card) string {
	// A "?84" query marks a scanned physical card.
	if strings.Contains(url, "?84") {
		return OfficialityYoto
	}

	if card.CreatorEmail != "" {
		return OfficialityMYO // could also be a Yoto Space
	}

	if isDemoDescription(card.Metadata.Description) {
		return OfficialityDemo
	}

	if card.Availability == "free" {
		return OfficialityFree
	}

	if card.UserID == "yoto" {
		return OfficialityYoto
	}
	if strings.HasPrefix(card.UserID, "auth0") {
		return OfficialityMYO // could also be a Yoto Space
	}

	if card.Category != "" {
		return OfficialityYoto
	}

	if len(card.ClubAvailability) > 0 {
		return OfficialityYoto
	}

	if card.Metadata.Media.HasStreams {
		return OfficialityFree
	}

	return UnknownCardType
}

// IsMYOCard reports whether a card looks user-made: it has a creator email
// and was not uploaded by the official account.
func IsMYOCard(card *model.Card) bool {
	return card.CreatorEmail != "" && card.UserID != "yoto"
}

func isDemoDescription(desc string) bool {
	if desc == "" {
		return false
	}
	if demoRe.MatchString(desc) {
		return true
	}

	// "Discover" counts unless it continues with one of the excluded phrases.
	rest := desc
	for {
		i := strings.Index(rest, "Discover")
		if i < 0 {
			return false
		}
		tail := rest[i+len("Discover"):]
		excluded := false
		for _, ex := range discoverExclusions {
			if strings.HasPrefix(tail, ex) {
				excluded = true
				break
			}
		}
		if !excluded {
			return true
		}
		rest = tail
	}
}
