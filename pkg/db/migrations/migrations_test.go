package migrations

import (
	"database/sql"
	"io"
	"testing"
	"testing/fstest"

	"github.com/fadedpez/blackjack/internal/logging"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type MigrationsTestSuite struct {
	suite.Suite
	db     *sql.DB
	logger *logging.Logger
}

func TestMigrationsSuite(t *testing.T) {
	suite.Run(t, new(MigrationsTestSuite))
}

func (s *MigrationsTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	db.SetMaxOpenConns(1)
	s.db = db
	s.logger = logging.NewLoggerWithWriter(logging.ERROR, io.Discard)
}

func (s *MigrationsTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigrationsTestSuite) TestEmbeddedSchemaApplies() {
	migrator := NewMigrator(s.db, s.logger)

	s.Require().NoError(migrator.MigrateUp())

	for _, table := range []string{"round_results", "participant_results"} {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		s.NoError(err, "Table %s should exist", table)
	}

	applied, err := migrator.GetAppliedMigrations()
	s.Require().NoError(err)
	s.Equal(map[string]bool{"001": true, "002": true}, applied)
}

func (s *MigrationsTestSuite) TestMigrateUpIsIdempotent() {
	migrator := NewMigrator(s.db, s.logger)
	s.Require().NoError(migrator.MigrateUp())

	s.Require().NoError(migrator.MigrateUp())

	var count int
	s.Require().NoError(s.db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	s.Equal(2, count)
}

func (s *MigrationsTestSuite) TestLoadMigrations() {
	testCases := []struct {
		name     string
		files    fstest.MapFS
		versions []string
		wantErr  bool
	}{
		{
			name: "sorted by version and skips other files",
			files: fstest.MapFS{
				"db/002_second_step.sql": {Data: []byte("SELECT 2;")},
				"db/001_first.sql":       {Data: []byte("SELECT 1;")},
				"db/README.md":           {Data: []byte("notes")},
			},
			versions: []string{"001", "002"},
		},
		{
			name: "bad filename",
			files: fstest.MapFS{
				"db/initial.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			migrator := NewMigratorFromFS(s.db, tc.files, "db", s.logger)

			migrations, err := migrator.LoadMigrations()

			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			versions := make([]string, 0, len(migrations))
			for _, m := range migrations {
				versions = append(versions, m.Version)
			}
			s.Equal(tc.versions, versions)
			s.Equal("second step", migrations[1].Description)
		})
	}
}

func (s *MigrationsTestSuite) TestFailedMigrationRollsBack() {
	files := fstest.MapFS{
		"db/001_broken.sql": {Data: []byte("CREATE TABLE nope (")},
	}
	migrator := NewMigratorFromFS(s.db, files, "db", s.logger)

	err := migrator.MigrateUp()

	s.Error(err)
	applied, err := migrator.GetAppliedMigrations()
	s.Require().NoError(err)
	s.Empty(applied)
}
