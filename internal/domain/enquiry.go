package domain

import "time"

// Enquiry is a prospective customer's request for lessons.
type Enquiry struct {
	ID                string     `json:"id"`
	PreferredName     string     `json:"preferredName"`
	Mobile            string     `json:"mobile"`
	Email             string     `json:"email"`
	Postcode          string     `json:"postcode"`
	TestPreparation   bool       `json:"testPreparation"`
	SkillsImprovement bool       `json:"skillsImprovement"`
	EnqMessage        string     `json:"enqMessage"`
	EnqDate           time.Time  `json:"enqDate"`
	Replied           bool       `json:"replied"`
	ReplyDate         *time.Time `json:"replyDate"`
	ReplyMessage      string     `json:"replyMessage"`
}

// EnquiryInput is the submitted payload for create and update. Pointer and
// OptionalTime fields distinguish "absent" from the zero value. A null
// replyDate clears it on update.
type EnquiryInput struct {
	PreferredName     string       `json:"preferredName" validate:"required"`
	Mobile            string       `json:"mobile" validate:"required"`
	Email             string       `json:"email" validate:"required,email"`
	Postcode          string       `json:"postcode" validate:"postcode"`
	TestPreparation   *bool        `json:"testPreparation" validate:"required"`
	SkillsImprovement *bool        `json:"skillsImprovement" validate:"required"`
	EnqMessage        *string      `json:"enqMessage" validate:"required"`
	EnqDate           OptionalTime `json:"enqDate"`
	Replied           *bool        `json:"replied"`
	ReplyDate         OptionalTime `json:"replyDate"`
	ReplyMessage      *string      `json:"replyMessage"`
}

// NewEnquiry builds a record from a validated input, filling defaults.
func NewEnquiry(id string, in EnquiryInput, now time.Time) *Enquiry {
	enq := &Enquiry{
		ID:                id,
		PreferredName:     in.PreferredName,
		Mobile:            in.Mobile,
		Email:             in.Email,
		Postcode:          in.Postcode,
		TestPreparation:   deref(in.TestPreparation),
		SkillsImprovement: deref(in.SkillsImprovement),
		EnqMessage:        deref(in.EnqMessage),
		EnqDate:           now.UTC(),
		Replied:           deref(in.Replied),
		ReplyDate:         in.ReplyDate.Ptr(),
		ReplyMessage:      deref(in.ReplyMessage),
	}
	if in.EnqDate.Valid {
		enq.EnqDate = in.EnqDate.Time
	}
	return enq
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
