package directory

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// phoneTokenPattern matches tokens made of phone characters only:
	// digits, parentheses, hyphen, slash, hash.
	phoneTokenPattern = regexp.MustCompile(`^[0-9()\-/#]+$`)

	// offerTriggerPattern marks where address text ends and offer text
	// begins. Trigger keywords only; no deeper understanding of the offer.
	offerTriggerPattern = regexp.MustCompile(`優惠|折|免|贈|享`)
)

// ParseEntry splits an entry-start line into a ShopRecord.
// The second return is false when the line does not match the entry-start
// shape; callers classify before parsing, so this is a defensive re-check.
func ParseEntry(text string) (ShopRecord, bool) {
	m := entryStartPattern.FindStringSubmatch(text)
	if m == nil {
		return ShopRecord{}, false
	}

	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return ShopRecord{}, false
	}

	rec := ShopRecord{
		ID:       id,
		Category: m[2] + m[3],
	}

	remainder := strings.TrimSpace(m[4])
	tokens := strings.Fields(remainder)

	countyIdx := -1
	for i, tok := range tokens {
		if IsCounty(tok) {
			countyIdx = i
			break
		}
	}
	if countyIdx < 0 {
		// Malformed or cross-page-split row: emit a partial record rather
		// than dropping it.
		rec.Name = remainder
		return rec, true
	}
	rec.County = tokens[countyIdx]

	rec.Name, rec.Phone = splitNamePhone(tokens[:countyIdx], remainder)

	if countyIdx+1 < len(tokens) {
		rec.District = tokens[countyIdx+1]
	}

	rec.Address, rec.Offer = splitAddressOffer(tokens[min(countyIdx+2, len(tokens)):])
	return rec, true
}

// splitNamePhone divides the tokens before the county between the business
// name and the phone number. Phone tokens are collected right-to-left while
// they match the phone character set; collection stops at the first token
// that does not. This assumes phone digits are the rightmost tokens before
// the region and are contiguous, so a name with trailing digits is
// misattributed to the phone field.
func splitNamePhone(preCounty []string, remainder string) (name, phone string) {
	phoneCount := 0
	for i := len(preCounty) - 1; i >= 0; i-- {
		if !phoneTokenPattern.MatchString(preCounty[i]) {
			break
		}
		phoneCount++
	}

	nameTokens := preCounty[:len(preCounty)-phoneCount]
	name = strings.Join(nameTokens, " ")
	phone = strings.Join(preCounty[len(preCounty)-phoneCount:], " ")
	if name == "" {
		name = remainder
	}
	return name, phone
}

// splitAddressOffer scans left-to-right for the first offer-trigger token.
// Tokens before it form the address; the trigger token onward forms the
// offer. With no trigger, everything is address.
func splitAddressOffer(tokens []string) (address, offer string) {
	for i, tok := range tokens {
		if offerTriggerPattern.MatchString(tok) {
			return strings.Join(tokens[:i], " "), strings.Join(tokens[i:], " ")
		}
	}
	return strings.Join(tokens, " "), ""
}
