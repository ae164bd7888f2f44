package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"lottopay/internal/models/db_models"
)

func TestRewardService_CheckReward(t *testing.T) {
	ctx := context.Background()
	store, tickets, draws := newDrawFixture(NewSeededSource(21))
	service := NewRewardService(store, testConfig(), zap.NewNop())

	subscribe(store, "winner-user", db_models.PlanBasic)
	if _, err := tickets.IssueTicket(ctx, "winner-user", "r1", 1); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	winner, err := draws.SelectWinner(ctx)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	t.Run("first check pays out", func(t *testing.T) {
		reward, err := service.CheckReward(ctx, "winner-user")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reward.IsWinner {
			t.Fatal("expected is_winner true")
		}
		if reward.WinningNumber != winner.WinningNumber {
			t.Errorf("expected number %s, got %s", winner.WinningNumber, reward.WinningNumber)
		}
		if reward.RewardAmount != 100000 {
			t.Errorf("expected reward 100000, got %d", reward.RewardAmount)
		}
		if reward.ClaimedAt == 0 {
			t.Error("expected a claim timestamp")
		}
	})

	t.Run("second check reports not a winner", func(t *testing.T) {
		reward, err := service.CheckReward(ctx, "winner-user")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reward.IsWinner {
			t.Fatal("reward paid twice")
		}
	})

	t.Run("non-winner reports not a winner", func(t *testing.T) {
		reward, err := service.CheckReward(ctx, "bystander")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reward.IsWinner {
			t.Fatal("bystander marked as winner")
		}
	})
}
