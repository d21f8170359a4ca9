package handler

import (
	"recordkeeper/internal/profile/models"
	"recordkeeper/pkg/validation"
)

// CreateProfileRequest carries every profile field. Categorical fields must
// be present; unknown names are rejected while decoding.
type CreateProfileRequest struct {
	FName            string               `json:"fname"`
	MName            string               `json:"mname"`
	LName            string               `json:"lname"`
	MaritalStatus    models.MaritalStatus `json:"marital_status" validate:"required"`
	PicturePath      string               `json:"picture_path"`
	Gender           models.Gender        `json:"gender" validate:"required"`
	BloodGroup       models.BloodType     `json:"blood_group" validate:"required"`
	Nationality      string               `json:"nationality"`
	Religion         string               `json:"religion"`
	LiteracyLanguage string               `json:"literacy_language"`
	Province         models.Province      `json:"province" validate:"required"`
	District         models.District      `json:"district" validate:"required"`
	City             string               `json:"city"`
	Division         string               `json:"division"`
	PostalCode       uint32               `json:"postal_code"`
	BirthDate        string               `json:"birth_date" validate:"required"`
}

func (r *CreateProfileRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateProfileRequest) ToCommand() models.CreateCommand {
	return models.CreateCommand{
		FName:            r.FName,
		MName:            r.MName,
		LName:            r.LName,
		MaritalStatus:    r.MaritalStatus,
		PicturePath:      r.PicturePath,
		Gender:           r.Gender,
		BloodGroup:       r.BloodGroup,
		Nationality:      r.Nationality,
		Religion:         r.Religion,
		LiteracyLanguage: r.LiteracyLanguage,
		Province:         r.Province,
		District:         r.District,
		City:             r.City,
		Division:         r.Division,
		PostalCode:       r.PostalCode,
		BirthDate:        r.BirthDate,
	}
}

// UpdateProfileRequest is a partial field set; omitted keys stay unchanged.
type UpdateProfileRequest struct {
	FName            *string               `json:"fname"`
	MName            *string               `json:"mname"`
	LName            *string               `json:"lname"`
	MaritalStatus    *models.MaritalStatus `json:"marital_status"`
	PicturePath      *string               `json:"picture_path"`
	Gender           *models.Gender        `json:"gender"`
	BloodGroup       *models.BloodType     `json:"blood_group"`
	Nationality      *string               `json:"nationality"`
	Religion         *string               `json:"religion"`
	LiteracyLanguage *string               `json:"literacy_language"`
	Province         *models.Province      `json:"province"`
	District         *models.District      `json:"district"`
	City             *string               `json:"city"`
	Division         *string               `json:"division"`
	PostalCode       *uint32               `json:"postal_code"`
	BirthDate        *string               `json:"birth_date"`
}

func (r *UpdateProfileRequest) ToUpdate() models.Update {
	return models.Update{
		FName:            r.FName,
		MName:            r.MName,
		LName:            r.LName,
		MaritalStatus:    r.MaritalStatus,
		PicturePath:      r.PicturePath,
		Gender:           r.Gender,
		BloodGroup:       r.BloodGroup,
		Nationality:      r.Nationality,
		Religion:         r.Religion,
		LiteracyLanguage: r.LiteracyLanguage,
		Province:         r.Province,
		District:         r.District,
		City:             r.City,
		Division:         r.Division,
		PostalCode:       r.PostalCode,
		BirthDate:        r.BirthDate,
	}
}

type MutationResponse struct {
	AccountID string `json:"account_id"`
	Result    string `json:"result"`
}
