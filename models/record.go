// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record field names. They are used as JSON keys, CSV header cells and
// column names, in this exact order.
const (
	FieldWebsite  = "website"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldNotes    = "notes"
)

// RecordFields lists the fixed record fields in storage order.
var RecordFields = []string{FieldWebsite, FieldUsername, FieldPassword, FieldNotes}

// Record is one credential entry of a vault.
//
// Depending on the storage mode the four values are either plaintext or
// self-contained encrypted tokens. A Record never mixes the two.
type Record struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

// Values returns the field values in [RecordFields] order.
func (r Record) Values() []string {
	return []string{r.Website, r.Username, r.Password, r.Notes}
}

// Field returns a pointer to the value of the named field, or nil when the
// name is not one of [RecordFields].
func (r *Record) Field(name string) *string {
	switch name {
	case FieldWebsite:
		return &r.Website
	case FieldUsername:
		return &r.Username
	case FieldPassword:
		return &r.Password
	case FieldNotes:
		return &r.Notes
	default:
		return nil
	}
}

// RecordInput is the wire form of a record accepted by the save endpoint.
// Pointer fields let validation tell a missing key from an empty value.
type RecordInput struct {
	Website  *string `json:"website"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Notes    *string `json:"notes"`
}

// MissingFields returns the names of the fields absent from the input.
func (in RecordInput) MissingFields() []string {
	var missing []string
	if in.Website == nil {
		missing = append(missing, FieldWebsite)
	}
	if in.Username == nil {
		missing = append(missing, FieldUsername)
	}
	if in.Password == nil {
		missing = append(missing, FieldPassword)
	}
	if in.Notes == nil {
		missing = append(missing, FieldNotes)
	}
	return missing
}

// ToRecord converts the input into a [Record]. Absent fields become empty
// strings, so callers are expected to validate first.
func (in RecordInput) ToRecord() Record {
	return Record{
		Website:  deref(in.Website),
		Username: deref(in.Username),
		Password: deref(in.Password),
		Notes:    deref(in.Notes),
	}
}

// NewRecordInput builds a fully populated [RecordInput] from a [Record].
func NewRecordInput(r Record) RecordInput {
	return RecordInput{
		Website:  &r.Website,
		Username: &r.Username,
		Password: &r.Password,
		Notes:    &r.Notes,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
