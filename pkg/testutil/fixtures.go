package testutil

import (
	"github.com/google/uuid"

	profilemodels "recordkeeper/internal/profile/models"
	usermodels "recordkeeper/internal/user/models"
	id "recordkeeper/pkg/domain"
)

// TestAccounts are fixed account IDs for deterministic test data.
var TestAccounts = struct {
	Account1 id.AccountID
	Account2 id.AccountID
}{
	Account1: id.AccountID(uuid.MustParse("11111111-1111-1111-1111-111111111111")),
	Account2: id.AccountID(uuid.MustParse("22222222-2222-2222-2222-222222222222")),
}

// UserBuilder provides a fluent interface for building user create commands.
type UserBuilder struct {
	cmd usermodels.CreateCommand
}

// NewUser starts from a valid user.
func NewUser() *UserBuilder {
	return &UserBuilder{cmd: usermodels.CreateCommand{
		FName:   "Jane",
		LName:   "Doe",
		Address: "1 Main St",
		Age:     30,
	}}
}

func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.cmd.FName, b.cmd.LName = first, last
	return b
}

func (b *UserBuilder) WithAddress(address string) *UserBuilder {
	b.cmd.Address = address
	return b
}

func (b *UserBuilder) WithAge(age uint32) *UserBuilder {
	b.cmd.Age = age
	return b
}

func (b *UserBuilder) Build() usermodels.CreateCommand {
	return b.cmd
}

// ProfileBuilder provides a fluent interface for building profile create commands.
type ProfileBuilder struct {
	cmd profilemodels.CreateCommand
}

// NewProfile starts from a valid profile.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{cmd: profilemodels.CreateCommand{
		FName:            "Jane",
		LName:            "Doe",
		MaritalStatus:    profilemodels.MaritalMarried,
		Gender:           profilemodels.GenderFemale,
		BloodGroup:       profilemodels.BloodABPos,
		Nationality:      "Sri Lankan",
		LiteracyLanguage: "Tamil",
		Province:         profilemodels.ProvinceNorthern,
		District:         profilemodels.DistrictJaffna,
		City:             "Jaffna",
		PostalCode:       40000,
		BirthDate:        "1990-01-31",
	}}
}

func (b *ProfileBuilder) WithName(first, middle, last string) *ProfileBuilder {
	b.cmd.FName, b.cmd.MName, b.cmd.LName = first, middle, last
	return b
}

func (b *ProfileBuilder) WithCity(city string) *ProfileBuilder {
	b.cmd.City = city
	return b
}

func (b *ProfileBuilder) WithBirthDate(date string) *ProfileBuilder {
	b.cmd.BirthDate = date
	return b
}

func (b *ProfileBuilder) WithLocation(province profilemodels.Province, district profilemodels.District) *ProfileBuilder {
	b.cmd.Province, b.cmd.District = province, district
	return b
}

func (b *ProfileBuilder) Build() profilemodels.CreateCommand {
	return b.cmd
}
