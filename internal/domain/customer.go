package domain

import "time"

// Customer is an enrolled learner. Enquiries holds enquiry ids only; deleting
// an enquiry leaves the id in place.
type Customer struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"firstName"`
	MiddleName          *string    `json:"middleName,omitempty"`
	PreferredName       string     `json:"preferredName"`
	LastName            string     `json:"lastName"`
	Mobile              string     `json:"mobile"`
	Email               string     `json:"email"`
	FirstLineOfAddress  string     `json:"firstLineOfAddress"`
	SecondLineOfAddress *string    `json:"secondLineOfAddress,omitempty"`
	Postcode            string     `json:"postcode"`
	DrivingLicenceNum   string     `json:"drivingLicenceNum"`
	TestPreparation     bool       `json:"testPreparation"`
	TestDate            *time.Time `json:"testDate,omitempty"`
	TestCentre          *string    `json:"testCentre,omitempty"`
	SkillsImprovement   bool       `json:"skillsImprovement"`
	DateAdded           time.Time  `json:"dateAdded"`
	Enquiries           []string   `json:"enquiries"`
}

// CustomerInput is the submitted payload for create and update. Optional
// fields sent as null are cleared on update; absent ones are left alone.
type CustomerInput struct {
	FirstName           string         `json:"firstName" validate:"required"`
	MiddleName          OptionalString `json:"middleName"`
	PreferredName       string         `json:"preferredName" validate:"required"`
	LastName            string         `json:"lastName" validate:"required"`
	Mobile              string         `json:"mobile" validate:"required"`
	Email               string         `json:"email" validate:"required,email"`
	FirstLineOfAddress  string         `json:"firstLineOfAddress" validate:"required"`
	SecondLineOfAddress OptionalString `json:"secondLineOfAddress"`
	Postcode            string         `json:"postcode" validate:"postcode"`
	DrivingLicenceNum   string         `json:"drivingLicenceNum" validate:"licence"`
	TestPreparation     *bool          `json:"testPreparation" validate:"required"`
	TestDate            OptionalTime   `json:"testDate"`
	TestCentre          OptionalString `json:"testCentre"`
	SkillsImprovement   *bool          `json:"skillsImprovement" validate:"required"`
	DateAdded           OptionalTime   `json:"dateAdded"`
	Enquiries           []string       `json:"enquiries" validate:"required,dive,uuid"`
}

// NewCustomer builds a record from a validated input, filling defaults.
func NewCustomer(id string, in CustomerInput, now time.Time) *Customer {
	cust := &Customer{
		ID:                  id,
		FirstName:           in.FirstName,
		MiddleName:          in.MiddleName.Ptr(),
		PreferredName:       in.PreferredName,
		LastName:            in.LastName,
		Mobile:              in.Mobile,
		Email:               in.Email,
		FirstLineOfAddress:  in.FirstLineOfAddress,
		SecondLineOfAddress: in.SecondLineOfAddress.Ptr(),
		Postcode:            in.Postcode,
		DrivingLicenceNum:   in.DrivingLicenceNum,
		TestPreparation:     deref(in.TestPreparation),
		TestDate:            in.TestDate.Ptr(),
		TestCentre:          in.TestCentre.Ptr(),
		SkillsImprovement:   deref(in.SkillsImprovement),
		DateAdded:           now.UTC(),
		Enquiries:           append([]string{}, in.Enquiries...),
	}
	if in.DateAdded.Valid {
		cust.DateAdded = in.DateAdded.Time
	}
	return cust
}
