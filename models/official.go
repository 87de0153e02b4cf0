// Package models defines data structures used across the application.
// File: models/official.go
package models

// ----------------------- official model -----------------------

// Official is a meet official allowed to record and judge attempts.
// Password holds a bcrypt hash, never plain text.
type Official struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isadmin"`
}

// ----------------------- officials file ----------------------

// OfficialsFile is the on-disk collection of officials credentials.
type OfficialsFile struct {
	Officials []Official `json:"officials"`
}
