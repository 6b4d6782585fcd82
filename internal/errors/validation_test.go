package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/realmforge/catalog-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorKeepsOrder() {
	ve := errors.NewValidationError()
	ve.Add("name", "is required")
	ve.Add("birth_date", "must be a valid date in YYYY-MM-DD format")
	ve.Addf("kingdom", "must be no more than %d characters", 100)

	s.Require().True(ve.HasViolations())
	s.Assert().Equal([]string{
		"name is required",
		"birth_date must be a valid date in YYYY-MM-DD format",
		"kingdom must be no more than 100 characters",
	}, ve.Messages())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().Equal(ve.Messages(), err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("equipment_id", "must be a positive integer").
		RequiredField("kingdom")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name is required")
	s.Assert().Contains(err.Error(), "kingdom is required")
}

func (s *ValidationTestSuite) TestValidationBuilderNoViolations() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Kingdom of Spain", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("kingdom", tc.value, vb)
			if tc.shouldErr {
				s.Assert().NotNil(vb.Build())
			} else {
				s.Assert().Nil(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"within limit", "Excalibur", false},
		{"at limit", string(long[:100]), false},
		{"over limit", string(long), true},
		{"empty never exceeds", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateMaxLength("name", tc.value, 100, vb)
			if tc.shouldErr {
				s.Assert().NotNil(vb.Build())
			} else {
				s.Assert().Nil(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidatePositive() {
	testCases := []struct {
		name      string
		value     int64
		shouldErr bool
	}{
		{"positive", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidatePositive("faction_id", tc.value, vb)
			if tc.shouldErr {
				s.Assert().NotNil(vb.Build())
			} else {
				s.Assert().Nil(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateDate() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid date", "1990-01-01", false},
		{"leap day", "2020-02-29", false},
		{"normalized by calendar", "2021-02-30", true},
		{"wrong separator", "1990/01/01", true},
		{"missing zero padding", "1990-1-1", true},
		{"not a date", "yesterday", true},
		{"empty reported by required check only", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateDate("birth_date", tc.value, vb)
			if tc.shouldErr {
				s.Assert().NotNil(vb.Build())
			} else {
				s.Assert().Nil(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestAllRulesRun() {
	// a single broken input reports every violated rule, not just the first
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "", vb)
	errors.ValidateDate("birth_date", "30-02-2021", vb)
	errors.ValidatePositive("equipment_id", 0, vb)

	err := vb.Build()
	s.Require().NotNil(err)

	var structured *errors.Error
	s.Require().True(errors.As(err, &structured))
	msgs, ok := structured.Meta["validation_errors"].([]string)
	s.Require().True(ok)
	s.Assert().Len(msgs, 3)
	s.Assert().Equal("name is required", msgs[0])
	s.Assert().Equal("birth_date must be a valid date in YYYY-MM-DD format", msgs[1])
	s.Assert().Equal("equipment_id must be a positive integer", msgs[2])
}
