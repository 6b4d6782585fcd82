package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	v1 "github.com/realmforge/catalog-api/internal/handlers/api/v1"
	charactersvc "github.com/realmforge/catalog-api/internal/orchestrators/character"
	charactersvcmock "github.com/realmforge/catalog-api/internal/orchestrators/character/mock"
	equipmentsvc "github.com/realmforge/catalog-api/internal/orchestrators/equipment"
	equipmentsvcmock "github.com/realmforge/catalog-api/internal/orchestrators/equipment/mock"
	factionsvc "github.com/realmforge/catalog-api/internal/orchestrators/faction"
	factionsvcmock "github.com/realmforge/catalog-api/internal/orchestrators/faction/mock"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

type RouterTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactersvcmock.MockService
	mockEquipment *equipmentsvcmock.MockService
	mockFaction   *factionsvcmock.MockService
	server        *httptest.Server
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactersvcmock.NewMockService(s.ctrl)
	s.mockEquipment = equipmentsvcmock.NewMockService(s.ctrl)
	s.mockFaction = factionsvcmock.NewMockService(s.ctrl)

	router, err := v1.NewRouter(&v1.RouterConfig{
		CharacterService: s.mockCharacter,
		EquipmentService: s.mockEquipment,
		FactionService:   s.mockFaction,
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(router)
}

func (s *RouterTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *RouterTestSuite) do(method, path string, body string) (*http.Response, envelope) {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func (s *RouterTestSuite) TestCreateCharacter() {
	stored := &entities.Character{
		ID:          1,
		Name:        "John Doe",
		BirthDate:   "1990-01-01",
		Kingdom:     "Kingdom of Spain",
		EquipmentID: 1,
		FactionID:   1,
	}

	s.mockCharacter.EXPECT().
		Create(gomock.Any(), &charactersvc.CreateInput{
			Name:        "John Doe",
			BirthDate:   "1990-01-01",
			Kingdom:     "Kingdom of Spain",
			EquipmentID: 1,
			FactionID:   1,
		}).
		Return(&charactersvc.CreateOutput{Character: stored}, nil)

	resp, env := s.do(http.MethodPost, "/v1/characters",
		`{"name":"John Doe","birth_date":"1990-01-01","kingdom":"Kingdom of Spain","equipment_id":1,"faction_id":1}`)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("character created", env.Message)

	var got entities.Character
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(*stored, got)
}

func (s *RouterTestSuite) TestCreateCharacter_MalformedJSON() {
	// no service expectation: the decode failure short-circuits
	resp, env := s.do(http.MethodPost, "/v1/characters", `{"name":`)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("request body must be valid JSON", env.Error)
}

func (s *RouterTestSuite) TestCreateCharacter_AllViolationsInOneResponse() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "", vb)
	errors.ValidateDate("birth_date", "01/01/1990", vb)
	validationErr := vb.Build()

	s.mockCharacter.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, validationErr)

	resp, env := s.do(http.MethodPost, "/v1/characters",
		`{"name":"","birth_date":"01/01/1990","kingdom":"Spain","equipment_id":1,"faction_id":1}`)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal([]string{
		"name is required",
		"birth_date must be a valid date in YYYY-MM-DD format",
	}, env.Errors)
}

func (s *RouterTestSuite) TestGetCharacter_NonNumericID() {
	resp, env := s.do(http.MethodGet, "/v1/characters/abc", "")

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(env.Error, "id must be a number")
}

func (s *RouterTestSuite) TestGetCharacter_NotFound() {
	s.mockCharacter.EXPECT().
		Get(gomock.Any(), &charactersvc.GetInput{ID: 99}).
		Return(nil, errors.NotFoundf("character with ID %d not found", 99))

	resp, env := s.do(http.MethodGet, "/v1/characters/99", "")

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("character with ID 99 not found", env.Error)
}

func (s *RouterTestSuite) TestListCharacters() {
	stored := []*entities.Character{
		{ID: 1, Name: "John Doe", BirthDate: "1990-01-01", Kingdom: "Kingdom of Spain", EquipmentID: 1, FactionID: 1},
		{ID: 2, Name: "Jane Roe", BirthDate: "1985-06-15", Kingdom: "Kingdom of France", EquipmentID: 2, FactionID: 1},
	}

	s.mockCharacter.EXPECT().
		List(gomock.Any(), &charactersvc.ListInput{}).
		Return(&charactersvc.ListOutput{Characters: stored}, nil)

	resp, env := s.do(http.MethodGet, "/v1/characters", "")

	s.Equal(http.StatusOK, resp.StatusCode)

	var got []*entities.Character
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(stored, got)
}

func (s *RouterTestSuite) TestUpdateEquipment() {
	updated := &entities.Equipment{ID: 1, Name: "New", Type: "New Type", MadeBy: "New Maker"}

	s.mockEquipment.EXPECT().
		Update(gomock.Any(), &equipmentsvc.UpdateInput{
			ID:     1,
			Name:   "New",
			Type:   "New Type",
			MadeBy: "New Maker",
		}).
		Return(&equipmentsvc.UpdateOutput{Equipment: updated}, nil)

	resp, env := s.do(http.MethodPut, "/v1/equipment/1",
		`{"name":"New","type":"New Type","made_by":"New Maker"}`)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("equipment updated", env.Message)

	var got entities.Equipment
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(*updated, got)
}

func (s *RouterTestSuite) TestDeleteFaction() {
	s.mockFaction.EXPECT().
		Delete(gomock.Any(), &factionsvc.DeleteInput{ID: 1}).
		Return(&factionsvc.DeleteOutput{}, nil)

	resp, env := s.do(http.MethodDelete, "/v1/factions/1", "")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("faction deleted", env.Message)
}

func (s *RouterTestSuite) TestDeleteFaction_NotFound() {
	s.mockFaction.EXPECT().
		Delete(gomock.Any(), &factionsvc.DeleteInput{ID: 99}).
		Return(nil, errors.NotFoundf("faction with ID %d not found", 99))

	resp, env := s.do(http.MethodDelete, "/v1/factions/99", "")

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("faction with ID 99 not found", env.Error)
}

func (s *RouterTestSuite) TestListFactions_InternalError() {
	s.mockFaction.EXPECT().
		List(gomock.Any(), &factionsvc.ListInput{}).
		Return(nil, errors.Internal("cache operation failed"))

	resp, env := s.do(http.MethodGet, "/v1/factions", "")

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("cache operation failed", env.Error)
}

func (s *RouterTestSuite) TestHealthz() {
	resp, env := s.do(http.MethodGet, "/healthz", "")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", env.Message)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
