package simulation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wavebattle/internal/domain/shared"
	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
	"github.com/KirkDiggler/wavebattle/internal/events"
	"github.com/KirkDiggler/wavebattle/internal/repositories/reports"
	"github.com/KirkDiggler/wavebattle/internal/repositories/reports/mocks"
	"github.com/KirkDiggler/wavebattle/internal/roster"
	"github.com/KirkDiggler/wavebattle/internal/services/simulation"
	"github.com/KirkDiggler/wavebattle/internal/uuid"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *roster.Catalog
	repo    reports.Repository
	service simulation.Service
}

func (s *ServiceTestSuite) SetupTest() {
	catalog, err := roster.LoadCatalog()
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.catalog = catalog
	s.repo = reports.NewInMemoryRepository(nil)
	s.service = simulation.NewService(&simulation.ServiceConfig{
		Catalog:       catalog,
		Repository:    s.repo,
		UUIDGenerator: uuid.NewSequenceGenerator("report"),
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSimulate() {
	var turns []*events.TurnEvent
	result, err := s.service.Simulate(s.ctx, &simulation.SimulateInput{
		Seed: 1234,
		Wave: 1,
		Sink: func(e *events.TurnEvent) { turns = append(turns, e) },
	})
	s.Require().NoError(err)

	report := result.Report
	s.Equal(uint64(1234), report.Seed)
	s.Equal(1, report.Wave)
	s.Equal(simulation.DefaultParty, report.Party)
	s.Contains([]shared.Side{shared.SidePlayer, shared.SideEnemy}, report.Winner)
	s.GreaterOrEqual(report.Rounds, 1)
	s.Equal(len(turns), report.Turns)
	s.Equal("=== Battle Start ===", report.Log[0])
	s.Equal("=== Battle End ===", report.Log[len(report.Log)-2])
	if report.PlayersWon() {
		s.NotEmpty(report.Survivors)
	} else {
		s.Empty(report.Survivors)
	}

	s.Require().NotEmpty(result.Events)
	s.Equal(events.EventTypeRoundStarted, result.Events[0].GetType())
	s.Equal(events.EventTypeBattleEnded, result.Events[len(result.Events)-1].GetType())

	stored, err := s.repo.Get(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Equal(report.Log, stored.Log)
	s.False(stored.CreatedAt.IsZero())
}

func (s *ServiceTestSuite) TestSimulate_SeedReproducesBattle() {
	input := &simulation.SimulateInput{Seed: 99, Party: []string{"Paladin", "Battlemage", "Rogue"}, Wave: 2}

	first, err := s.service.Simulate(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.service.Simulate(s.ctx, input)
	s.Require().NoError(err)

	s.NotEqual(first.Report.ID, second.Report.ID)
	s.Equal(first.Report.Log, second.Report.Log)
	s.Equal(first.Report.Winner, second.Report.Winner)
	s.Equal(first.Report.Rounds, second.Report.Rounds)
	s.Equal(first.Report.Survivors, second.Report.Survivors)
}

func (s *ServiceTestSuite) TestSimulate_RandomSeedIsRecorded() {
	result, err := s.service.Simulate(s.ctx, &simulation.SimulateInput{Wave: 1})
	s.Require().NoError(err)
	s.NotZero(result.Report.Seed)
}

func (s *ServiceTestSuite) TestSimulate_Errors() {
	_, err := s.service.Simulate(s.ctx, nil)
	s.True(apperr.IsInvalidArgument(err))

	_, err = s.service.Simulate(s.ctx, &simulation.SimulateInput{Seed: 1, Wave: 1, Party: []string{"Warrior", "Mage", "Bard"}})
	s.True(apperr.IsNotFound(err))

	_, err = s.service.Simulate(s.ctx, &simulation.SimulateInput{Seed: 1, Wave: 0})
	s.True(apperr.IsInvalidArgument(err))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = s.service.Simulate(ctx, &simulation.SimulateInput{Seed: 1, Wave: 1})
	s.ErrorIs(err, context.Canceled)
}

func (s *ServiceTestSuite) TestRunCampaign() {
	result, err := s.service.RunCampaign(s.ctx, &simulation.CampaignInput{Seed: 7, Waves: 4})
	s.Require().NoError(err)

	s.Require().NotEmpty(result.Reports)
	s.LessOrEqual(len(result.Reports), 4)
	for i, report := range result.Reports {
		s.Equal(i+1, report.Wave)
		s.Equal(result.ID, report.CampaignID)
	}

	last := result.Reports[len(result.Reports)-1]
	if last.PlayersWon() {
		s.Equal(4, result.WavesCleared)
		s.True(result.Victory(4))
	} else {
		s.Equal(len(result.Reports)-1, result.WavesCleared)
		s.False(result.Victory(4))
	}

	// survivors can only shrink as the campaign goes on
	for i := 1; i < len(result.Reports); i++ {
		prev := result.Reports[i-1].Survivors
		for _, name := range result.Reports[i].Survivors {
			s.Contains(prev, name)
		}
	}

	archived, err := s.service.ListReports(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(archived, len(result.Reports))
}

func (s *ServiceTestSuite) TestRunCampaign_InvalidWaves() {
	_, err := s.service.RunCampaign(s.ctx, &simulation.CampaignInput{Seed: 7})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestBatch() {
	stats, err := s.service.Batch(s.ctx, &simulation.BatchInput{BaseSeed: 500, Count: 8, Wave: 1, Persist: true})
	s.Require().NoError(err)

	s.Equal(8, stats.Battles)
	s.Len(stats.Reports, 8)
	s.InDelta(float64(stats.PlayerWins)/8, stats.WinRate, 1e-9)
	s.GreaterOrEqual(stats.MeanRounds, 1.0)
	s.LessOrEqual(stats.MeanSurvivors, float64(len(simulation.DefaultParty)))

	for i, report := range stats.Reports {
		s.Equal(uint64(500+i), report.Seed)
		s.Nil(report.Log)
	}

	archived, err := s.service.ListReports(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(archived, 8)

	again, err := s.service.Batch(s.ctx, &simulation.BatchInput{BaseSeed: 500, Count: 8, Wave: 1})
	s.Require().NoError(err)
	s.Equal(stats.PlayerWins, again.PlayerWins)
	s.InDelta(stats.MeanRounds, again.MeanRounds, 1e-9)
}

func (s *ServiceTestSuite) TestBatch_InvalidCount() {
	_, err := s.service.Batch(s.ctx, &simulation.BatchInput{Count: 0, Wave: 1})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGetReport_NotFound() {
	_, err := s.service.GetReport(s.ctx, "missing")
	s.True(apperr.IsNotFound(err))
}

func TestNewService_RequiresDependencies(t *testing.T) {
	catalog, err := roster.LoadCatalog()
	require.NoError(t, err)

	assert.PanicsWithValue(t, "catalog is required", func() {
		simulation.NewService(&simulation.ServiceConfig{Repository: reports.NewInMemoryRepository(nil)})
	})
	assert.PanicsWithValue(t, "repository is required", func() {
		simulation.NewService(&simulation.ServiceConfig{Catalog: catalog})
	})
}

func TestSimulate_ArchiveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	catalog, err := roster.LoadCatalog()
	require.NoError(t, err)

	svc := simulation.NewService(&simulation.ServiceConfig{Catalog: catalog, Repository: repo})

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(apperr.WrapWithCode(errors.New("connection refused"), apperr.CodeUnavailable, "failed to store report in Redis"))

	_, err = svc.Simulate(context.Background(), &simulation.SimulateInput{Seed: 3, Wave: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsUnavailable(err))
	assert.Contains(t, err.Error(), "failed to archive report")
}

func TestBatch_StopsOnArchiveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	catalog, err := roster.LoadCatalog()
	require.NoError(t, err)

	svc := simulation.NewService(&simulation.ServiceConfig{Catalog: catalog, Repository: repo, Concurrency: 1})

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("boom")).Times(1)

	_, err = svc.Batch(context.Background(), &simulation.BatchInput{BaseSeed: 1, Count: 3, Wave: 1, Persist: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
