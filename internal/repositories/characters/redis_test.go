package characters_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/testutils"
	mockuuid "github.com/KirkDiggler/naruto2d6-discord/internal/uuid/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	mockCtrl   *gomock.Controller
	uuidGen    *mockuuid.MockGenerator
	now        time.Time
	repo       characters.Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.uuidGen = mockuuid.NewMockGenerator(s.mockCtrl)
	s.now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.repo = characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client:        s.mockClient,
		UUIDGenerator: s.uuidGen,
		Now:           func() time.Time { return s.now },
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encoded(char *character.Character) string {
	data, err := characters.Encode(char)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("", "user-1", "guild-1", "Naruto")
	s.uuidGen.EXPECT().New().Return("char-1")

	expected := char.Clone()
	expected.ID = "char-1"
	expected.UpdatedAt = s.now

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:char-1", s.encoded(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("guild:guild-1:owner:user-1:characters", "char-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Create(ctx, char)
	s.Require().NoError(err)
	s.Equal("char-1", char.ID)
	s.Equal(s.now, char.UpdatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")

	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(ctx, char)
	s.True(apperr.Is(err, apperr.CodeAlreadyExists))
}

func (s *RedisRepoTestSuite) TestCreate_NilCharacter() {
	err := s.repo.Create(context.Background(), nil)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")

	// Happy path
	s.mock.ExpectGet("character:char-1").SetVal(s.encoded(char))

	got, err := s.repo.Get(ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(char.Name, got.Name)
	s.Equal(char.Attributes, got.Attributes)
	s.Require().Len(got.Abilities, 1)
	s.Equal(char.Abilities[0].Resources, got.Abilities[0].Resources)

	// Missing key
	s.mock.ExpectGet("character:char-2").RedisNil()

	_, err = s.repo.Get(ctx, "char-2")
	s.True(apperr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("character:char-1").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "char-1")
	s.Error(err)
	s.False(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_CoercesStringNumbers() {
	ctx := context.Background()
	legacy := `{"id":"char-1","name":"Sakura","abilities":[{"id":"a-1","name":"Cura","level":2,` +
		`"resources":[{"id":"abcdefg","name":"Ervas","value":"3","maxValue":"5","valuePerLevel":"2","defaultValue":"1","show":true}]}]}`
	s.mock.ExpectGet("character:char-1").SetVal(legacy)

	got, err := s.repo.Get(ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(3, int(got.Abilities[0].Resources[0].Value))
	s.Equal(5, int(got.Abilities[0].Resources[0].MaxValue))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")

	s.mock.ExpectSMembers("guild:guild-1:owner:user-1:characters").SetVal([]string{"char-1"})
	s.mock.ExpectGet("character:char-1").SetVal(s.encoded(char))

	chars, err := s.repo.ListByOwner(ctx, "guild-1", "user-1")
	s.Require().NoError(err)
	s.Require().Len(chars, 1)
	s.Equal("Naruto", chars[0].Name)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")
	char.Momentum.Set(4)

	expected := char.Clone()
	expected.UpdatedAt = s.now

	s.mock.ExpectExists("character:char-1").SetVal(1)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:char-1", s.encoded(expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("guild:guild-1:owner:user-1:characters", "char-1").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	s.Require().NoError(s.repo.Update(ctx, char))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")

	s.mock.ExpectExists("character:char-1").SetVal(0)

	err := s.repo.Update(ctx, char)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")

	s.mock.ExpectGet("character:char-1").SetVal(s.encoded(char))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("guild:guild-1:owner:user-1:characters", "char-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.Require().NoError(s.repo.Delete(ctx, "char-1"))
}
