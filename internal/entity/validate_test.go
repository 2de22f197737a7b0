package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReviewInsert(t *testing.T) {
	ok := ReviewInsert{Name: "  Ahmed ", Rating: 5, Comment: " fine "}
	assert.NoError(t, ValidateReviewInsert(&ok, ""))
	// trimmed in place
	assert.Equal(t, "Ahmed", ok.Name)
	assert.Equal(t, "fine", ok.Comment)

	bad := ReviewInsert{Name: "", Rating: 5, Comment: "fine"}
	assert.Error(t, ValidateReviewInsert(&bad, ""))

	bad = ReviewInsert{Name: "A", Rating: 0, Comment: "fine"}
	assert.Error(t, ValidateReviewInsert(&bad, ""))

	bad = ReviewInsert{Name: "A", Rating: 6, Comment: "fine"}
	assert.Error(t, ValidateReviewInsert(&bad, ""))

	bad = ReviewInsert{Name: strings.Repeat("x", 121), Rating: 3, Comment: "fine"}
	assert.Error(t, ValidateReviewInsert(&bad, ""))

	good := ReviewInsert{Name: "A", Rating: 3, Comment: "fine"}
	assert.Error(t, ValidateReviewInsert(&good, "not-an-email"))
	assert.NoError(t, ValidateReviewInsert(&good, "a@example.com"))
}

func TestValidModerationStatus(t *testing.T) {
	assert.True(t, ValidModerationStatus(ReviewStatusApproved))
	assert.True(t, ValidModerationStatus(ReviewStatusRejected))
	assert.False(t, ValidModerationStatus(ReviewStatusPending))
	assert.False(t, ValidModerationStatus("deleted"))
}

func TestValidateTeamUserInsert(t *testing.T) {
	u := TeamUserInsert{Name: "Sara", Email: "SARA@Example.COM", Active: true}
	assert.NoError(t, ValidateTeamUserInsert(&u))
	assert.Equal(t, "sara@example.com", u.Email)
	assert.Equal(t, RoleEditor, u.Role)

	bad := TeamUserInsert{Name: "", Email: "a@b.co"}
	assert.Error(t, ValidateTeamUserInsert(&bad))

	bad = TeamUserInsert{Name: "A", Email: "nope"}
	assert.Error(t, ValidateTeamUserInsert(&bad))

	bad = TeamUserInsert{Name: "A", Email: "a@b.co", Role: "root"}
	assert.Error(t, ValidateTeamUserInsert(&bad))
}

func TestValidateTeamUserPatch(t *testing.T) {
	empty := TeamUserPatch{}
	assert.Error(t, ValidateTeamUserPatch(&empty))

	name := "  Sara "
	p := TeamUserPatch{Name: &name}
	assert.NoError(t, ValidateTeamUserPatch(&p))
	assert.Equal(t, "Sara", *p.Name)

	blank := "   "
	p = TeamUserPatch{Name: &blank}
	assert.Error(t, ValidateTeamUserPatch(&p))

	role := UserRole("superuser")
	p = TeamUserPatch{Role: &role}
	assert.Error(t, ValidateTeamUserPatch(&p))
}

func TestValidatePublishRequest(t *testing.T) {
	ok := PublishRequest{
		Ar: json.RawMessage(`{"a":1}`),
		En: json.RawMessage(`{"b":2}`),
	}
	assert.NoError(t, ValidatePublishRequest(&ok))

	for _, bad := range []PublishRequest{
		{En: json.RawMessage(`{"b":2}`)},
		{Ar: json.RawMessage(`{"a":1}`)},
		{Ar: json.RawMessage(`null`), En: json.RawMessage(`{"b":2}`)},
		{},
	} {
		assert.Error(t, ValidatePublishRequest(&bad))
	}
}

func TestValidateContactRequest(t *testing.T) {
	ok := ContactRequest{Name: "Sara", Email: "sara@example.com", Message: "hello"}
	assert.NoError(t, ValidateContactRequest(&ok))

	bad := ContactRequest{Name: "Sara", Email: "nope", Message: "hello"}
	assert.Error(t, ValidateContactRequest(&bad))

	bad = ContactRequest{Name: "", Email: "sara@example.com", Message: "hello"}
	assert.Error(t, ValidateContactRequest(&bad))

	bad = ContactRequest{Name: "Sara", Email: "sara@example.com", Message: strings.Repeat("m", 5001)}
	assert.Error(t, ValidateContactRequest(&bad))
}
