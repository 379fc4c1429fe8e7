package services

import (
	"testing"

	"salesboard/internal/models"

	"github.com/stretchr/testify/suite"
)

type SessionRegistryTestSuite struct {
	suite.Suite
	registry *SessionRegistry
}

func TestSessionRegistrySuite(t *testing.T) {
	suite.Run(t, new(SessionRegistryTestSuite))
}

func (s *SessionRegistryTestSuite) SetupTest() {
	s.registry = NewSessionRegistry()
}

func (s *SessionRegistryTestSuite) TestCreate_StartsAtDefaultState() {
	id, session := s.registry.Create()

	s.NotEmpty(id)
	s.Require().NotNil(session.State)

	filters, sort, cursor := session.State.Snapshot()
	s.True(filters.IsZero())
	s.Equal(models.DefaultSort(), sort)
	s.True(cursor.IsZero())
	s.Nil(session.LastPage())
}

func (s *SessionRegistryTestSuite) TestCreate_IssuesDistinctIDs() {
	firstID, first := s.registry.Create()
	secondID, second := s.registry.Create()

	s.NotEqual(firstID, secondID)

	first.State.SetFilter(FilterMinPrice, "1000")
	filters, _, _ := second.State.Snapshot()
	s.True(filters.IsZero(), "Sessions must not share state")
}

func (s *SessionRegistryTestSuite) TestGet_ReturnsCreatedSession() {
	id, created := s.registry.Create()

	found, ok := s.registry.Get(id)
	s.True(ok)
	s.Same(created, found)
}

func (s *SessionRegistryTestSuite) TestGet_UnknownID() {
	_, ok := s.registry.Get("missing")
	s.False(ok)
}

func (s *SessionRegistryTestSuite) TestRememberPage_FeedsCursorTransitions() {
	_, session := s.registry.Create()

	session.RememberPage(resultWithCursors("", "page-2"))

	s.True(session.State.NextPage(session.LastPage()))
	_, _, cursor := session.State.Snapshot()
	s.Equal("page-2", cursor.After)
}
