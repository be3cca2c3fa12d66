// Package sanitizer normalizes client input before validation and storage.
//
// All functions are idempotent. Input that cannot be normalized is returned
// trimmed rather than rejected; rejecting it is the validator's job.
//
// Normalization includes:
//   - Text: collapse whitespace, trim leading/trailing spaces
//   - Slugs: lower-case, whitespace and underscores become single dashes
//   - Emails: trim and lower-case
//   - Phone numbers: E.164 when the number is valid for a supported region
//   - URLs: trim, lower-case scheme and host of absolute http(s) URLs
//   - Slices: normalize items, drop empty values and duplicates, keep order
package sanitizer
