package equipment_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	"github.com/realmforge/catalog-api/internal/repositories/equipment"
)

var equipmentColumns = []string{"id", "name", "type", "made_by"}

type PostgresEquipmentTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo equipment.Repository
	ctx  context.Context
}

func (s *PostgresEquipmentTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.db = db
	s.mock = mock
	s.ctx = context.Background()

	repo, err := equipment.NewPostgres(&equipment.PostgresConfig{DB: db})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *PostgresEquipmentTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *PostgresEquipmentTestSuite) TestGet() {
	s.Run("success", func() {
		s.mock.ExpectQuery("SELECT id, name, type, made_by").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(equipmentColumns).
				AddRow(int64(1), "Excalibur", "sword", "Avalon Forge"))

		output, err := s.repo.Get(s.ctx, equipment.GetInput{ID: 1})

		s.Require().NoError(err)
		s.Equal(&entities.Equipment{ID: 1, Name: "Excalibur", Type: "sword", MadeBy: "Avalon Forge"}, output.Equipment)
	})

	s.Run("not found on empty store", func() {
		s.mock.ExpectQuery("SELECT id, name, type, made_by").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		output, err := s.repo.Get(s.ctx, equipment.GetInput{ID: 99})

		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Nil(output)
	})
}

func (s *PostgresEquipmentTestSuite) TestList() {
	s.mock.ExpectQuery("SELECT id, name, type, made_by").
		WillReturnRows(sqlmock.NewRows(equipmentColumns).
			AddRow(int64(1), "Excalibur", "sword", "Avalon Forge").
			AddRow(int64(2), "Aegis", "shield", "Olympus Smithy"))

	output, err := s.repo.List(s.ctx, equipment.ListInput{})

	s.Require().NoError(err)
	s.Require().Len(output.Equipment, 2)
	s.Equal("Excalibur", output.Equipment[0].Name)
	s.Equal("Aegis", output.Equipment[1].Name)
}

func (s *PostgresEquipmentTestSuite) TestSaveInsertAssignsID() {
	input := &entities.Equipment{Name: "Excalibur", Type: "sword", MadeBy: "Avalon Forge"}

	s.mock.ExpectQuery("INSERT INTO equipment").
		WithArgs("Excalibur", "sword", "Avalon Forge").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	output, err := s.repo.Save(s.ctx, equipment.SaveInput{Equipment: input})

	s.Require().NoError(err)
	s.Equal(int64(1), output.Equipment.ID)
	s.Equal(int64(0), input.ID)
}

func (s *PostgresEquipmentTestSuite) TestSaveUpdatePreservesIdentity() {
	input := &entities.Equipment{ID: 1, Name: "New", Type: "New Type", MadeBy: "New Maker"}

	s.mock.ExpectExec("UPDATE equipment").
		WithArgs(int64(1), "New", "New Type", "New Maker").
		WillReturnResult(sqlmock.NewResult(0, 1))

	output, err := s.repo.Save(s.ctx, equipment.SaveInput{Equipment: input})

	s.Require().NoError(err)
	s.Equal(int64(1), output.Equipment.ID)
	s.Equal("New", output.Equipment.Name)
	s.Equal("New Type", output.Equipment.Type)
	s.Equal("New Maker", output.Equipment.MadeBy)
}

func (s *PostgresEquipmentTestSuite) TestSaveUpdateNotFound() {
	input := &entities.Equipment{ID: 42, Name: "Ghost", Type: "none", MadeBy: "nobody"}

	s.mock.ExpectExec("UPDATE equipment").
		WithArgs(int64(42), "Ghost", "none", "nobody").
		WillReturnResult(sqlmock.NewResult(0, 0))

	output, err := s.repo.Save(s.ctx, equipment.SaveInput{Equipment: input})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *PostgresEquipmentTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mock.ExpectExec("DELETE FROM equipment").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		output, err := s.repo.Delete(s.ctx, equipment.DeleteInput{Equipment: &entities.Equipment{ID: 1}})

		s.Require().NoError(err)
		s.NotNil(output)
	})

	s.Run("never persisted means nothing to delete", func() {
		output, err := s.repo.Delete(s.ctx, equipment.DeleteInput{Equipment: &entities.Equipment{Name: "transient"}})

		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Nil(output)
	})
}

func TestPostgresEquipmentTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresEquipmentTestSuite))
}
