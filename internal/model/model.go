// Package model holds the store system's records and the create and update
// payloads accepted for each of them.
package model
