package postcodenl

import "regexp"

// Four digits, an optional single space, two letters (either case).
var postcodePattern = regexp.MustCompile(`^\d{4} ?[A-Za-z]{2}$`)

// validatePostcode checks the postcode format before any network call is
// made, so that malformed inputs do not count against the API usage
// limits. House numbers are not validated beyond their unsigned type.
func validatePostcode(postcode string) error {
	if !postcodePattern.MatchString(postcode) {
		return &InputError{Input: postcode}
	}
	return nil
}
