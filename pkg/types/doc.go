// Package types defines the entity records, stage enumerations, collection
// names, snapshot format, and standard errors for the Atlas recruiting/CRM
// store. Every other package depends on types; types depends on nothing.
package types
