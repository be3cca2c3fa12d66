package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	supportedRegions = []string{
		"AU",
		"NZ",
		"FJ",
		"US",
		"GB",
	}
)

func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsedNumber) {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}
	return phone
}

func NormalizePhonePtr(phone *string) *string {
	if phone == nil {
		return nil
	}
	v := NormalizePhone(*phone)
	if v == "" {
		return nil
	}
	return &v
}
