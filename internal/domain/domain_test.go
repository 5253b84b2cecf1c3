package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantErr   bool
	}{
		{name: "null", raw: `null`},
		{name: "empty string", raw: `""`},
		{name: "timestamp", raw: `"2024-06-21T20:42:56.922Z"`, wantValid: true},
		{name: "garbage", raw: `"tomorrow"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ot OptionalTime
			err := json.Unmarshal([]byte(tt.raw), &ot)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, ot.Valid)
			assert.True(t, ot.Set)
		})
	}
}

func TestCustomerInput_NullVersusAbsent(t *testing.T) {
	var in CustomerInput
	require.NoError(t, json.Unmarshal([]byte(`{"middleName":null,"testCentre":"Hendon","testDate":null}`), &in))

	assert.True(t, in.MiddleName.Set)
	assert.Nil(t, in.MiddleName.Ptr())
	assert.Equal(t, Text("Hendon"), in.TestCentre)
	assert.Equal(t, ClearedTime(), in.TestDate)
	assert.False(t, in.SecondLineOfAddress.Set)
	assert.False(t, in.DateAdded.Set)
}

func TestOptionalString_JSON(t *testing.T) {
	var s OptionalString
	require.NoError(t, json.Unmarshal([]byte(`""`), &s))
	assert.Equal(t, Text(""), s)

	require.Error(t, json.Unmarshal([]byte(`42`), &s))

	raw, err := json.Marshal(struct {
		A OptionalString `json:"a"`
		B OptionalString `json:"b"`
	}{A: Text("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(raw))
}

func TestNewEnquiry_AppliesDefaults(t *testing.T) {
	now := time.Date(2024, 6, 21, 20, 42, 56, 0, time.UTC)
	tp, si, msg := true, false, "testing"

	enq := NewEnquiry("id-1", EnquiryInput{
		PreferredName:     "testName",
		Mobile:            "07123456789",
		Email:             "test@email.com",
		Postcode:          "A12 3BC",
		TestPreparation:   &tp,
		SkillsImprovement: &si,
		EnqMessage:        &msg,
	}, now)

	assert.Equal(t, now, enq.EnqDate)
	assert.False(t, enq.Replied)
	assert.Nil(t, enq.ReplyDate)
	assert.Empty(t, enq.ReplyMessage)
	assert.True(t, enq.TestPreparation)
	assert.Equal(t, "testing", enq.EnqMessage)
}

func TestNewEnquiry_KeepsSuppliedDates(t *testing.T) {
	enqDate := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	replied := true

	enq := NewEnquiry("id-1", EnquiryInput{EnqDate: At(enqDate), Replied: &replied}, time.Now())

	assert.Equal(t, enqDate, enq.EnqDate)
	assert.True(t, enq.Replied)
}

func TestNewCustomer_CopiesEnquiryIDs(t *testing.T) {
	ids := []string{"5f0c7a3e-8d7c-4f6b-9a51-2d8c2b1f9e10"}

	cust := NewCustomer("cust-1", CustomerInput{Enquiries: ids}, time.Now())
	ids[0] = "changed"

	assert.Equal(t, []string{"5f0c7a3e-8d7c-4f6b-9a51-2d8c2b1f9e10"}, cust.Enquiries)
	assert.False(t, cust.DateAdded.IsZero())
}

func TestNewCustomer_EmptyEnquiriesMarshalAsArray(t *testing.T) {
	cust := NewCustomer("cust-1", CustomerInput{Enquiries: []string{}}, time.Now())

	raw, err := json.Marshal(cust)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"enquiries":[]`)
}
