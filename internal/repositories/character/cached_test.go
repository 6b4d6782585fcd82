package character_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	redisclient "github.com/realmforge/catalog-api/internal/redis"
	"github.com/realmforge/catalog-api/internal/repositories/character"
	charactermock "github.com/realmforge/catalog-api/internal/repositories/character/mock"
	"github.com/realmforge/catalog-api/internal/testutils"
)

const (
	testByIDKey = "character.Repository:1"
	testAllKey  = "character.Repository:all"
)

type CachedCharacterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockBase *charactermock.MockRepository
	client   redisclient.Client
	mr       *miniredis.Miniredis
	cleanup  func()
	repo     character.Repository
	ctx      context.Context
}

func (s *CachedCharacterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBase = charactermock.NewMockRepository(s.ctrl)
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := character.NewCached(&character.CachedConfig{
		Base:   s.mockBase,
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *CachedCharacterTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.cleanup()
}

func (s *CachedCharacterTestSuite) testCharacter() *entities.Character {
	return &entities.Character{
		ID:          1,
		Name:        "John Doe",
		BirthDate:   "1990-01-01",
		Kingdom:     "Kingdom of Spain",
		EquipmentID: 1,
		FactionID:   1,
	}
}

func (s *CachedCharacterTestSuite) TestNewCached() {
	testCases := []struct {
		name    string
		config  *character.CachedConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "success with valid config",
			config:  &character.CachedConfig{Base: s.mockBase, Client: s.client},
			wantErr: false,
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil base",
			config:  &character.CachedConfig{Client: s.client},
			wantErr: true,
			errMsg:  "base repository cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &character.CachedConfig{Base: s.mockBase},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := character.NewCached(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *CachedCharacterTestSuite) TestGetReadThroughPopulation() {
	char := s.testCharacter()

	// exactly one persistence fetch for two reads
	s.mockBase.EXPECT().
		Get(s.ctx, character.GetInput{ID: 1}).
		Return(&character.GetOutput{Character: char}, nil).
		Times(1)

	first, err := s.repo.Get(s.ctx, character.GetInput{ID: 1})
	s.Require().NoError(err)
	s.Equal(char, first.Character)

	s.True(s.mr.Exists(testByIDKey))

	second, err := s.repo.Get(s.ctx, character.GetInput{ID: 1})
	s.Require().NoError(err)
	s.Equal(first.Character, second.Character)
}

func (s *CachedCharacterTestSuite) TestGetNotFoundDoesNotPopulate() {
	s.mockBase.EXPECT().
		Get(s.ctx, character.GetInput{ID: 99}).
		Return(nil, errors.NotFoundf("character with ID %d not found", 99))

	output, err := s.repo.Get(s.ctx, character.GetInput{ID: 99})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
	s.False(s.mr.Exists("character.Repository:99"))
}

func (s *CachedCharacterTestSuite) TestGetBaseFailureWrapped() {
	s.mockBase.EXPECT().
		Get(s.ctx, character.GetInput{ID: 1}).
		Return(nil, errors.Internal("connection pool exhausted"))

	output, err := s.repo.Get(s.ctx, character.GetInput{ID: 1})

	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "cache operation failed")
	s.Nil(output)
}

func (s *CachedCharacterTestSuite) TestGetCacheFailureWrapped() {
	s.mr.SetError("simulated cache outage")
	defer s.mr.SetError("")

	output, err := s.repo.Get(s.ctx, character.GetInput{ID: 1})

	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "cache operation failed")
	s.Nil(output)
}

func (s *CachedCharacterTestSuite) TestListReadThrough() {
	chars := []*entities.Character{
		s.testCharacter(),
		{ID: 2, Name: "Jane Roe", BirthDate: "1985-06-15", Kingdom: "Northern Reach", EquipmentID: 2, FactionID: 1},
	}

	s.mockBase.EXPECT().
		List(s.ctx, character.ListInput{}).
		Return(&character.ListOutput{Characters: chars}, nil).
		Times(1)

	first, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(first.Characters, 2)

	s.True(s.mr.Exists(testAllKey))

	second, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Equal(first.Characters, second.Characters)
}

func (s *CachedCharacterTestSuite) TestSaveWritesCacheAndInvalidatesCollection() {
	s.Require().NoError(s.mr.Set(testAllKey, "[]"))

	unsaved := &entities.Character{Name: "John Doe", BirthDate: "1990-01-01", Kingdom: "Kingdom of Spain", EquipmentID: 1, FactionID: 1}
	saved := s.testCharacter()

	s.mockBase.EXPECT().
		Save(s.ctx, character.SaveInput{Character: unsaved}).
		Return(&character.SaveOutput{Character: saved}, nil)

	output, err := s.repo.Save(s.ctx, character.SaveInput{Character: unsaved})

	s.Require().NoError(err)
	s.Equal(saved, output.Character)

	raw, err := s.mr.Get(testByIDKey)
	s.Require().NoError(err)
	var cached entities.Character
	s.Require().NoError(json.Unmarshal([]byte(raw), &cached))
	s.Equal(*saved, cached)

	s.False(s.mr.Exists(testAllKey))
}

func (s *CachedCharacterTestSuite) TestSaveThenGetServesFreshValue() {
	unsaved := &entities.Character{Name: "John Doe", BirthDate: "1990-01-01", Kingdom: "Kingdom of Spain", EquipmentID: 1, FactionID: 1}
	saved := s.testCharacter()

	s.mockBase.EXPECT().
		Save(s.ctx, character.SaveInput{Character: unsaved}).
		Return(&character.SaveOutput{Character: saved}, nil)
	// no base Get expectation: the read must come from the cache

	savedOut, err := s.repo.Save(s.ctx, character.SaveInput{Character: unsaved})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: savedOut.Character.ID})
	s.Require().NoError(err)
	s.Equal(savedOut.Character, got.Character)
}

func (s *CachedCharacterTestSuite) TestSaveNotFoundPropagates() {
	stale := &entities.Character{ID: 42, Name: "Ghost", BirthDate: "1990-01-01", Kingdom: "Nowhere", EquipmentID: 1, FactionID: 1}

	s.mockBase.EXPECT().
		Save(s.ctx, character.SaveInput{Character: stale}).
		Return(nil, errors.NotFoundf("character with ID %d not found", 42))

	output, err := s.repo.Save(s.ctx, character.SaveInput{Character: stale})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *CachedCharacterTestSuite) TestDeleteRemovesCacheKeys() {
	char := s.testCharacter()
	payload, err := json.Marshal(char)
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set(testByIDKey, string(payload)))
	s.Require().NoError(s.mr.Set(testAllKey, "[]"))

	s.mockBase.EXPECT().
		Delete(s.ctx, character.DeleteInput{Character: char}).
		Return(&character.DeleteOutput{}, nil)

	output, err := s.repo.Delete(s.ctx, character.DeleteInput{Character: char})

	s.Require().NoError(err)
	s.NotNil(output)
	s.False(s.mr.Exists(testByIDKey))
	s.False(s.mr.Exists(testAllKey))
}

func (s *CachedCharacterTestSuite) TestDeleteNotFoundPropagates() {
	char := s.testCharacter()

	s.mockBase.EXPECT().
		Delete(s.ctx, character.DeleteInput{Character: char}).
		Return(nil, errors.NotFoundf("character with ID %d not found", 1))

	output, err := s.repo.Delete(s.ctx, character.DeleteInput{Character: char})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *CachedCharacterTestSuite) TestKeySchemeIsIdempotentAndDistinct() {
	first := s.testCharacter()
	second := &entities.Character{ID: 2, Name: "Jane Roe", BirthDate: "1985-06-15", Kingdom: "Northern Reach", EquipmentID: 2, FactionID: 1}

	s.mockBase.EXPECT().
		Get(s.ctx, character.GetInput{ID: 1}).
		Return(&character.GetOutput{Character: first}, nil).
		Times(1)
	s.mockBase.EXPECT().
		Get(s.ctx, character.GetInput{ID: 2}).
		Return(&character.GetOutput{Character: second}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: 1})
		s.Require().NoError(err)
		_, err = s.repo.Get(s.ctx, character.GetInput{ID: 2})
		s.Require().NoError(err)
	}

	s.True(s.mr.Exists("character.Repository:1"))
	s.True(s.mr.Exists("character.Repository:2"))
}

func TestCachedCharacterTestSuite(t *testing.T) {
	suite.Run(t, new(CachedCharacterTestSuite))
}
