// Package models defines the profile record, its categorical fields, and
// the payloads that create, update, and project it.
package models

import (
	"fmt"

	"recordkeeper/internal/records"
	"recordkeeper/pkg/bounded"
	dErrors "recordkeeper/pkg/domain-errors"
)

// Schema names the profile record store.
const Schema = "profile"

// Field labels used in validation messages.
const (
	FieldFirstName        = "first name"
	FieldMiddleName       = "middle name"
	FieldLastName         = "last name"
	FieldPicturePath      = "picture path"
	FieldNationality      = "nationality"
	FieldReligion         = "religion"
	FieldLiteracyLanguage = "literacy language"
	FieldCity             = "city"
	FieldDivision         = "division"
	FieldBirthDate        = "birth date"
)

// Record is the stored profile. PostalCode 0 means unset.
type Record struct {
	FName            bounded.Str64  `json:"fname"`
	MName            bounded.Str64  `json:"mname"`
	LName            bounded.Str64  `json:"lname"`
	MaritalStatus    MaritalStatus  `json:"marital_status"`
	PicturePath      bounded.Str128 `json:"picture_path"`
	Gender           Gender         `json:"gender"`
	BloodGroup       BloodType      `json:"blood_group"`
	Nationality      bounded.Str64  `json:"nationality"`
	Religion         bounded.Str64  `json:"religion"`
	LiteracyLanguage bounded.Str64  `json:"literacy_language"`
	Province         Province       `json:"province"`
	District         District       `json:"district"`
	City             bounded.Str64  `json:"city"`
	Division         bounded.Str64  `json:"division"`
	PostalCode       uint32         `json:"postal_code"`
	BirthDate        bounded.Str64  `json:"birth_date"`
}

// CreateCommand carries the full field set for a new profile.
type CreateCommand struct {
	FName            string
	MName            string
	LName            string
	MaritalStatus    MaritalStatus
	PicturePath      string
	Gender           Gender
	BloodGroup       BloodType
	Nationality      string
	Religion         string
	LiteracyLanguage string
	Province         Province
	District         District
	City             string
	Division         string
	PostalCode       uint32
	BirthDate        string
}

// textField pairs a label with a destination so encoding runs in
// declaration order and stops at the first failure.
type textField struct {
	label  string
	src    string
	dst64  *bounded.Str64
	dst128 *bounded.Str128
}

func encodeAll(fields []textField) error {
	for _, f := range fields {
		var err error
		if f.dst128 != nil {
			*f.dst128, err = records.EncodeText[bounded.Cap128](f.label, f.src)
		} else {
			*f.dst64, err = records.EncodeText[bounded.Cap64](f.label, f.src)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// NewRecord validates categorical fields, encodes text fields in
// declaration order, then checks the birth date syntax.
func NewRecord(cmd CreateCommand) (Record, error) {
	if err := validateEnums(&cmd.MaritalStatus, &cmd.Gender, &cmd.BloodGroup, &cmd.Province, &cmd.District); err != nil {
		return Record{}, err
	}

	rec := Record{
		MaritalStatus: cmd.MaritalStatus,
		Gender:        cmd.Gender,
		BloodGroup:    cmd.BloodGroup,
		Province:      cmd.Province,
		District:      cmd.District,
		PostalCode:    cmd.PostalCode,
	}
	err := encodeAll([]textField{
		{label: FieldFirstName, src: cmd.FName, dst64: &rec.FName},
		{label: FieldMiddleName, src: cmd.MName, dst64: &rec.MName},
		{label: FieldLastName, src: cmd.LName, dst64: &rec.LName},
		{label: FieldPicturePath, src: cmd.PicturePath, dst128: &rec.PicturePath},
		{label: FieldNationality, src: cmd.Nationality, dst64: &rec.Nationality},
		{label: FieldReligion, src: cmd.Religion, dst64: &rec.Religion},
		{label: FieldLiteracyLanguage, src: cmd.LiteracyLanguage, dst64: &rec.LiteracyLanguage},
		{label: FieldCity, src: cmd.City, dst64: &rec.City},
		{label: FieldDivision, src: cmd.Division, dst64: &rec.Division},
	})
	if err != nil {
		return Record{}, err
	}

	rec.BirthDate, err = records.EncodeDate(FieldBirthDate, cmd.BirthDate)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// validateEnums accepts nil entries, which stand for fields an update
// leaves untouched.
func validateEnums(marital *MaritalStatus, gender *Gender, blood *BloodType, province *Province, district *District) error {
	switch {
	case marital != nil && !marital.IsValid():
		return invalidEnum("marital status", string(*marital))
	case gender != nil && !gender.IsValid():
		return invalidEnum("gender", string(*gender))
	case blood != nil && !blood.IsValid():
		return invalidEnum("blood group", string(*blood))
	case province != nil && !province.IsValid():
		return invalidEnum("province", string(*province))
	case district != nil && !district.IsValid():
		return invalidEnum("district", string(*district))
	}
	return nil
}

func invalidEnum(field, value string) error {
	return dErrors.Wrap(fmt.Errorf("%w: %q", ErrUnknownValue, value), dErrors.CodeInvalidInput,
		fmt.Sprintf("%s %q is not recognized", field, value))
}

// Update is a partial field set. Every present field is validated and
// staged; the first failure discards all of them.
type Update struct {
	FName            *string
	MName            *string
	LName            *string
	MaritalStatus    *MaritalStatus
	PicturePath      *string
	Gender           *Gender
	BloodGroup       *BloodType
	Nationality      *string
	Religion         *string
	LiteracyLanguage *string
	Province         *Province
	District         *District
	City             *string
	Division         *string
	PostalCode       *uint32
	BirthDate        *string
}

func (u Update) Apply(current Record) (Record, error) {
	if err := validateEnums(u.MaritalStatus, u.Gender, u.BloodGroup, u.Province, u.District); err != nil {
		return Record{}, err
	}

	next := current
	var fields []textField
	add64 := func(label string, src *string, dst *bounded.Str64) {
		if src != nil {
			fields = append(fields, textField{label: label, src: *src, dst64: dst})
		}
	}
	add64(FieldFirstName, u.FName, &next.FName)
	add64(FieldMiddleName, u.MName, &next.MName)
	add64(FieldLastName, u.LName, &next.LName)
	if u.PicturePath != nil {
		fields = append(fields, textField{label: FieldPicturePath, src: *u.PicturePath, dst128: &next.PicturePath})
	}
	add64(FieldNationality, u.Nationality, &next.Nationality)
	add64(FieldReligion, u.Religion, &next.Religion)
	add64(FieldLiteracyLanguage, u.LiteracyLanguage, &next.LiteracyLanguage)
	add64(FieldCity, u.City, &next.City)
	add64(FieldDivision, u.Division, &next.Division)
	if err := encodeAll(fields); err != nil {
		return Record{}, err
	}

	if u.BirthDate != nil {
		bd, err := records.EncodeDate(FieldBirthDate, *u.BirthDate)
		if err != nil {
			return Record{}, err
		}
		next.BirthDate = bd
	}

	if u.MaritalStatus != nil {
		next.MaritalStatus = *u.MaritalStatus
	}
	if u.Gender != nil {
		next.Gender = *u.Gender
	}
	if u.BloodGroup != nil {
		next.BloodGroup = *u.BloodGroup
	}
	if u.Province != nil {
		next.Province = *u.Province
	}
	if u.District != nil {
		next.District = *u.District
	}
	if u.PostalCode != nil {
		next.PostalCode = *u.PostalCode
	}
	return next, nil
}

// Fields lists the supplied field names, for tracing.
func (u Update) Fields() []string {
	var out []string
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"fname", u.FName != nil},
		{"mname", u.MName != nil},
		{"lname", u.LName != nil},
		{"marital_status", u.MaritalStatus != nil},
		{"picture_path", u.PicturePath != nil},
		{"gender", u.Gender != nil},
		{"blood_group", u.BloodGroup != nil},
		{"nationality", u.Nationality != nil},
		{"religion", u.Religion != nil},
		{"literacy_language", u.LiteracyLanguage != nil},
		{"province", u.Province != nil},
		{"district", u.District != nil},
		{"city", u.City != nil},
		{"division", u.Division != nil},
		{"postal_code", u.PostalCode != nil},
		{"birth_date", u.BirthDate != nil},
	} {
		if f.present {
			out = append(out, f.name)
		}
	}
	return out
}

var _ records.Patch[Record] = Update{}

// View is the human-readable projection of a Record.
type View struct {
	FName            string        `json:"fname"`
	MName            string        `json:"mname"`
	LName            string        `json:"lname"`
	MaritalStatus    MaritalStatus `json:"marital_status"`
	PicturePath      string        `json:"picture_path"`
	Gender           Gender        `json:"gender"`
	BloodGroup       BloodType     `json:"blood_group"`
	Nationality      string        `json:"nationality"`
	Religion         string        `json:"religion"`
	LiteracyLanguage string        `json:"literacy_language"`
	Province         Province      `json:"province"`
	District         District      `json:"district"`
	City             string        `json:"city"`
	Division         string        `json:"division"`
	PostalCode       uint32        `json:"postal_code"`
	BirthDate        string        `json:"birth_date"`
}

// ToView decodes text fields fail-soft; categorical and numeric fields pass
// through.
func ToView(r Record) View {
	return View{
		FName:            r.FName.String(),
		MName:            r.MName.String(),
		LName:            r.LName.String(),
		MaritalStatus:    r.MaritalStatus,
		PicturePath:      r.PicturePath.String(),
		Gender:           r.Gender,
		BloodGroup:       r.BloodGroup,
		Nationality:      r.Nationality.String(),
		Religion:         r.Religion.String(),
		LiteracyLanguage: r.LiteracyLanguage.String(),
		Province:         r.Province,
		District:         r.District,
		City:             r.City.String(),
		Division:         r.Division.String(),
		PostalCode:       r.PostalCode,
		BirthDate:        r.BirthDate.String(),
	}
}
