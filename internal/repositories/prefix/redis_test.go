package prefix

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGetPrefix() {
	err := s.repo.SetPrefix(context.Background(), &SetPrefixInput{
		GuildID: "test-guild-id",
		Prefix:  "?",
	})
	s.Require().NoError(err)

	output, err := s.repo.GetPrefix(context.Background(), &GetPrefixInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Equal("?", output.Prefix)
}

func (s *RedisRepositoryTestSuite) TestGetPrefixNotFound() {
	_, err := s.repo.GetPrefix(context.Background(), &GetPrefixInput{
		GuildID: "unknown-guild-id",
	})
	s.Require().ErrorIs(err, ErrPrefixNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetPrefixOverwrites() {
	err := s.repo.SetPrefix(context.Background(), &SetPrefixInput{
		GuildID: "test-guild-id",
		Prefix:  "!",
	})
	s.Require().NoError(err)

	err = s.repo.SetPrefix(context.Background(), &SetPrefixInput{
		GuildID: "test-guild-id",
		Prefix:  "$",
	})
	s.Require().NoError(err)

	output, err := s.repo.GetPrefix(context.Background(), &GetPrefixInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Equal("$", output.Prefix)
}

func (s *RedisRepositoryTestSuite) TestDeletePrefix() {
	err := s.repo.SetPrefix(context.Background(), &SetPrefixInput{
		GuildID: "test-guild-id",
		Prefix:  "!",
	})
	s.Require().NoError(err)

	err = s.repo.DeletePrefix(context.Background(), &DeletePrefixInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPrefix(context.Background(), &GetPrefixInput{
		GuildID: "test-guild-id",
	})
	s.Require().ErrorIs(err, ErrPrefixNotFound)

	// Deleting again is not an error
	err = s.repo.DeletePrefix(context.Background(), &DeletePrefixInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetAllPrefixes() {
	guilds := map[string]string{
		"guild-a": "!",
		"guild-b": "?",
		"guild-c": "$",
	}
	for guildID, p := range guilds {
		err := s.repo.SetPrefix(context.Background(), &SetPrefixInput{
			GuildID: guildID,
			Prefix:  p,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetAllPrefixes(context.Background())
	s.Require().NoError(err)
	s.Equal(guilds, output.Prefixes)
}

func (s *RedisRepositoryTestSuite) TestGetAllPrefixesEmpty() {
	output, err := s.repo.GetAllPrefixes(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Prefixes)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.GetPrefix(context.Background(), nil)
	s.Require().Error(err)

	err = s.repo.SetPrefix(context.Background(), &SetPrefixInput{GuildID: "g"})
	s.Require().Error(err)

	err = s.repo.DeletePrefix(context.Background(), &DeletePrefixInput{})
	s.Require().Error(err)
}
