// Package services contains the NewsBoard application services: account
// authentication, news authoring and reading, the moderation workflow and
// engagement (likes and comments).
//
// Every operation that acts on behalf of a user takes an explicit
// models.Session. Failures are reported with the sentinel errors of
// internal/common and must be matched with errors.Is; an operation that
// fails leaves the store untouched.
package services
