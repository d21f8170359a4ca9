package models

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is wrapped by every rejected enum name.
var ErrUnknownValue = errors.New("unknown enum value")

// MaritalStatus of the profile owner. The zero value is not valid.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	default:
		return false
	}
}

func (m *MaritalStatus) UnmarshalText(b []byte) error {
	return parseInto(m, b, "marital status")
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

func (g *Gender) UnmarshalText(b []byte) error {
	return parseInto(g, b, "gender")
}

// BloodType uses ABO group plus Rh sign, e.g. "AB-".
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
)

func (b BloodType) IsValid() bool {
	switch b {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg, BloodOPos, BloodONeg, BloodABPos, BloodABNeg:
		return true
	default:
		return false
	}
}

func (b *BloodType) UnmarshalText(text []byte) error {
	return parseInto(b, text, "blood type")
}

// Province is one of the nine Sri Lankan provinces.
type Province string

const (
	ProvinceWestern      Province = "Western"
	ProvinceCentral      Province = "Central"
	ProvinceSouthern     Province = "Southern"
	ProvinceNorthern     Province = "Northern"
	ProvinceEastern      Province = "Eastern"
	ProvinceNorthWestern Province = "NorthWestern"
	ProvinceNorthCentral Province = "NorthCentral"
	ProvinceUva          Province = "Uva"
	ProvinceSabaragamuwa Province = "Sabaragamuwa"
)

func (p Province) IsValid() bool {
	switch p {
	case ProvinceWestern, ProvinceCentral, ProvinceSouthern, ProvinceNorthern, ProvinceEastern,
		ProvinceNorthWestern, ProvinceNorthCentral, ProvinceUva, ProvinceSabaragamuwa:
		return true
	default:
		return false
	}
}

func (p *Province) UnmarshalText(b []byte) error {
	return parseInto(p, b, "province")
}

// District is one of the 25 administrative districts. District and Province
// are stored independently; a mismatched pair is accepted.
type District string

const (
	DistrictColombo      District = "Colombo"
	DistrictGampaha      District = "Gampaha"
	DistrictKalutara     District = "Kalutara"
	DistrictKandy        District = "Kandy"
	DistrictMatale       District = "Matale"
	DistrictNuwaraEliya  District = "NuwaraEliya"
	DistrictGalle        District = "Galle"
	DistrictMatara       District = "Matara"
	DistrictHambantota   District = "Hambantota"
	DistrictJaffna       District = "Jaffna"
	DistrictKilinochchi  District = "Kilinochchi"
	DistrictMannar       District = "Mannar"
	DistrictVavuniya     District = "Vavuniya"
	DistrictMullaitivu   District = "Mullaitivu"
	DistrictBatticaloa   District = "Batticaloa"
	DistrictAmpara       District = "Ampara"
	DistrictTrincomalee  District = "Trincomalee"
	DistrictKurunegala   District = "Kurunegala"
	DistrictPuttalam     District = "Puttalam"
	DistrictAnuradhapura District = "Anuradhapura"
	DistrictPolonnaruwa  District = "Polonnaruwa"
	DistrictBadulla      District = "Badulla"
	DistrictMonaragala   District = "Monaragala"
	DistrictRatnapura    District = "Ratnapura"
	DistrictKegalle      District = "Kegalle"
)

func (d District) IsValid() bool {
	switch d {
	case DistrictColombo, DistrictGampaha, DistrictKalutara,
		DistrictKandy, DistrictMatale, DistrictNuwaraEliya,
		DistrictGalle, DistrictMatara, DistrictHambantota,
		DistrictJaffna, DistrictKilinochchi, DistrictMannar, DistrictVavuniya, DistrictMullaitivu,
		DistrictBatticaloa, DistrictAmpara, DistrictTrincomalee,
		DistrictKurunegala, DistrictPuttalam,
		DistrictAnuradhapura, DistrictPolonnaruwa,
		DistrictBadulla, DistrictMonaragala,
		DistrictRatnapura, DistrictKegalle:
		return true
	default:
		return false
	}
}

func (d *District) UnmarshalText(b []byte) error {
	return parseInto(d, b, "district")
}

type enum interface {
	~string
	IsValid() bool
}

func parseInto[E enum](dst *E, b []byte, kind string) error {
	v := E(b)
	if !v.IsValid() {
		return fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, b)
	}
	*dst = v
	return nil
}
