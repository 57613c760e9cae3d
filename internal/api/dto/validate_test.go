package dto

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

func TestValidate_SignupFieldErrors(t *testing.T) {
	err := Validate(&SignupRequest{Name: "A", Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	de := apperrors.ToDomainError(err)
	require.Equal(t, apperrors.CodeValidation, de.Code)
	require.Equal(t, "Validation error", de.Message)
	require.ElementsMatch(t, []apperrors.FieldError{
		{Path: "name", Message: "must be at least 2 characters"},
		{Path: "email", Message: "must be a valid email"},
		{Path: "password", Message: "must be at least 6 characters"},
	}, de.Fields)
}

func TestValidate_Accepts(t *testing.T) {
	require.NoError(t, Validate(&SignupRequest{Name: "Ann", Email: "a@x.com", Password: "secret1"}))
	require.NoError(t, Validate(&SigninRequest{Email: "a@x.com", Password: "s"}))
	require.NoError(t, Validate(&UpdateCompanyRequest{}))
	require.NoError(t, Validate(&JobListQuery{}))
}

func TestValidate_PatchAndQuery(t *testing.T) {
	blank := "   "
	err := Validate(&UpdateCompanyRequest{Name: &blank})
	de := apperrors.ToDomainError(err)
	require.Equal(t, []apperrors.FieldError{{Path: "name", Message: "must not be blank"}}, de.Fields)

	empty := ""
	require.NoError(t, Validate(&UpdateCompanyRequest{Website: &empty}))
	site := "https://acme.example"
	require.NoError(t, Validate(&UpdateCompanyRequest{Website: &site}))

	notURL := "acme"
	err = Validate(&UpdateCompanyRequest{Website: &notURL})
	de = apperrors.ToDomainError(err)
	require.Equal(t, []apperrors.FieldError{{Path: "website", Message: "must be a valid URL"}}, de.Fields)

	err = Validate(&UpdateUserStatusRequest{})
	de = apperrors.ToDomainError(err)
	require.Equal(t, []apperrors.FieldError{{Path: "blocked", Message: "is required"}}, de.Fields)

	err = Validate(&JobListQuery{Status: "open", CompanyID: "42"})
	de = apperrors.ToDomainError(err)
	require.ElementsMatch(t, []apperrors.FieldError{
		{Path: "status", Message: "must be one of: active, paused, closed"},
		{Path: "companyId", Message: "must be a valid id"},
	}, de.Fields)
}
