// Package models defines the user record and the payloads that create,
// update, and project it.
package models

import (
	"recordkeeper/internal/records"
	"recordkeeper/pkg/bounded"
)

// Schema names the user record store in events, metrics, and backends.
const Schema = "user"

// Field labels used in FieldTooLong messages.
const (
	FieldFirstName = "first name"
	FieldLastName  = "last name"
	FieldAddress   = "address"
)

// Record is the stored user. Text fields hold bytes produced by strict
// encoding and are only exposed through ToView.
type Record struct {
	FName   bounded.Str64  `json:"fname"`
	LName   bounded.Str64  `json:"lname"`
	Address bounded.Str128 `json:"address"`
	Age     uint32         `json:"age"`
}

// CreateCommand carries a full field set for create and replace.
type CreateCommand struct {
	FName   string
	LName   string
	Address string
	Age     uint32
}

// NewRecord encodes every text field in declaration order; the first
// overflow aborts.
func NewRecord(cmd CreateCommand) (Record, error) {
	fname, err := records.EncodeText[bounded.Cap64](FieldFirstName, cmd.FName)
	if err != nil {
		return Record{}, err
	}
	lname, err := records.EncodeText[bounded.Cap64](FieldLastName, cmd.LName)
	if err != nil {
		return Record{}, err
	}
	address, err := records.EncodeText[bounded.Cap128](FieldAddress, cmd.Address)
	if err != nil {
		return Record{}, err
	}
	return Record{FName: fname, LName: lname, Address: address, Age: cmd.Age}, nil
}

// Update is a partial field set. A nil field leaves the stored value as is.
type Update struct {
	FName   *string
	LName   *string
	Address *string
	Age     *uint32
}

// Apply stages u onto current, which the caller passes by value. Any
// encoding failure returns the error and no record.
func (u Update) Apply(current Record) (Record, error) {
	next := current
	if u.FName != nil {
		v, err := records.EncodeText[bounded.Cap64](FieldFirstName, *u.FName)
		if err != nil {
			return Record{}, err
		}
		next.FName = v
	}
	if u.LName != nil {
		v, err := records.EncodeText[bounded.Cap64](FieldLastName, *u.LName)
		if err != nil {
			return Record{}, err
		}
		next.LName = v
	}
	if u.Address != nil {
		v, err := records.EncodeText[bounded.Cap128](FieldAddress, *u.Address)
		if err != nil {
			return Record{}, err
		}
		next.Address = v
	}
	if u.Age != nil {
		next.Age = *u.Age
	}
	return next, nil
}

// Fields lists the supplied field names, for tracing.
func (u Update) Fields() []string {
	var out []string
	if u.FName != nil {
		out = append(out, "fname")
	}
	if u.LName != nil {
		out = append(out, "lname")
	}
	if u.Address != nil {
		out = append(out, "address")
	}
	if u.Age != nil {
		out = append(out, "age")
	}
	return out
}

var _ records.Patch[Record] = Update{}

// View is the human-readable projection of a Record.
type View struct {
	FName   string `json:"fname"`
	LName   string `json:"lname"`
	Address string `json:"address"`
	Age     uint32 `json:"age"`
}

// ToView decodes text fields fail-soft: bytes that are not valid UTF-8
// project as "".
func ToView(r Record) View {
	return View{
		FName:   r.FName.String(),
		LName:   r.LName.String(),
		Address: r.Address.String(),
		Age:     r.Age,
	}
}
