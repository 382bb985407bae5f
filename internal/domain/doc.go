// Package domain contains the core entities of the news API (topics,
// articles, comments and users) and the tagged domain error type that the
// service layer uses to report missing resources and malformed input,
// independent of any specific infrastructure or delivery mechanism.
package domain
