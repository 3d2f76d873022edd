// Package juriscraper parses CM/ECF court notification emails into typed
// records of case filing activity. It handles both notification flavors:
// NEFs (Notices of Electronic Filing, sent by district and bankruptcy
// courts) and NDAs (Notices of Docket Activity, sent by appellate courts),
// in their HTML and plain text renditions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, plaintext/,
// parse/).
package juriscraper
