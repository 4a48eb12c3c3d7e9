package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	usecasemocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminID      = uint64(1)
	scale        = int32(2)
	defaultLimit = 50
)

type stubChecker struct {
	report database.HealthReport
}

func (s stubChecker) Check(context.Context) database.HealthReport {
	return s.report
}

type fixture struct {
	router    *gin.Engine
	club      *usecasemocks.MockClubUseCase
	ledger    *usecasemocks.MockLedgerUseCase
	challenge *usecasemocks.MockChallengeUseCase
	lottery   *usecasemocks.MockLotteryUseCase
	payout    *usecasemocks.MockPayoutUseCase
}

func newFixture(t *testing.T, health database.HealthReport) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		club:      usecasemocks.NewMockClubUseCase(t),
		ledger:    usecasemocks.NewMockLedgerUseCase(t),
		challenge: usecasemocks.NewMockChallengeUseCase(t),
		lottery:   usecasemocks.NewMockLotteryUseCase(t),
		payout:    usecasemocks.NewMockPayoutUseCase(t),
	}
	f.club.EXPECT().Scale().Return(scale).Maybe()
	f.ledger.EXPECT().Scale().Return(scale).Maybe()

	f.router = routes.NewRouter(routes.Handlers{
		Club:      handler.NewClubHandler(f.club),
		Account:   handler.NewAccountHandler(f.ledger),
		Challenge: handler.NewChallengeHandler(f.challenge, f.payout, scale),
		Lottery:   handler.NewLotteryHandler(f.lottery, f.payout, scale),
		Payout:    handler.NewPayoutHandler(f.payout),
		Health:    handler.NewHealthHandler(stubChecker{report: health}),
	}, func(id uint64) bool { return id == adminID }, testutil.NewLogger(t), testutil.NewClock(time.Now()))
	return f
}

func (f *fixture) do(t *testing.T, method, path string, caller uint64, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if caller != 0 {
		req.Header.Set("X-User-ID", strconv.FormatUint(caller, 10))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	return w, decoded
}

func ptr(v uint64) *uint64 { return &v }

func TestJoin(t *testing.T) {
	f := newFixture(t, database.HealthReport{})

	membership := &entity.Membership{
		UserID:       10,
		Program:      entity.ProgramGS1,
		ReferralCode: "AVL-7K2Q9XZD",
		ReferrerID:   ptr(9),
		AmountPaid:   decimal.NewFromInt(5),
	}
	plan := &entity.DistributionPlan{
		Program: entity.ProgramGS1,
		Price:   decimal.NewFromInt(5),
		Allocations: []entity.Allocation{
			{Type: entity.TypeLevelCommission, ToUserID: 9, Amount: decimal.RequireFromString("1.23"), Level: 1},
			{Type: entity.TypeGasFee, ToUserID: 2, Amount: decimal.RequireFromString("0.02"), Level: 1},
		},
	}
	f.club.EXPECT().Join(mock.Anything, usecase.JoinRequest{
		UserID: 10, Program: "GS-I", ReferralCode: "AVL-ROOT0000",
	}).Return(&usecase.JoinResult{Membership: membership, Plan: plan}, nil).Once()

	w, body := f.do(t, http.MethodPost, "/club-avalanche/join", 10, `{"program":"GS-I","referralCode":"AVL-ROOT0000"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "GS-I", data["program"])
	assert.Equal(t, "5.00", data["amountPaid"])
	assert.EqualValues(t, 9, data["referrerId"])
	allocations := data["allocations"].([]any)
	require.Len(t, allocations, 2)
	assert.Equal(t, "1.23", allocations[0].(map[string]any)["amount"])
}

func TestJoin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		caller   uint64
		body     string
		err      error
		wantCode int
	}{
		{"missing caller", 0, `{"program":"GS-I"}`, nil, http.StatusBadRequest},
		{"missing program", 10, `{}`, nil, http.StatusBadRequest},
		{"unknown program", 10, `{"program":"GS-IX"}`, errs.ErrUnknownProgram, http.StatusBadRequest},
		{"already member", 10, `{"program":"GS-I"}`, errs.ErrAlreadyMember, http.StatusConflict},
		{"cannot pay", 10, `{"program":"GS-I"}`, errs.NewInsufficientFundsError(10, "BRT", "5.00", "1.00"), http.StatusPaymentRequired},
		{"disabled payer", 10, `{"program":"GS-I"}`, errs.ErrAccountDisabled, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, database.HealthReport{})
			if tt.err != nil {
				f.club.EXPECT().Join(mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			}

			w, body := f.do(t, http.MethodPost, "/club-avalanche/join", tt.caller, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestPrograms(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.club.EXPECT().Programs().Return(entity.DefaultPrograms()).Once()

	w, body := f.do(t, http.MethodGet, "/club-avalanche/programs", 0, "")

	assert.Equal(t, http.StatusOK, w.Code)
	programs := body["data"].([]any)
	require.Len(t, programs, len(entity.DefaultPrograms()))
	first := programs[0].(map[string]any)
	assert.Equal(t, "GS-I", first["id"])
	assert.Len(t, first["levelShares"], 4)
}

func TestMemberships(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.club.EXPECT().ListMemberships(mock.Anything, uint64(10)).Return([]*entity.Membership{
		{UserID: 10, Program: entity.ProgramGS2, ReferralCode: "AVL-AAAA0000", AmountPaid: decimal.NewFromInt(10)},
	}, nil).Once()

	w, body := f.do(t, http.MethodGet, "/club-avalanche/memberships", 10, "")

	assert.Equal(t, http.StatusOK, w.Code)
	memberships := body["data"].([]any)
	require.Len(t, memberships, 1)
	assert.Equal(t, "10.00", memberships[0].(map[string]any)["amountPaid"])
}

func TestRegisterAndDeposit(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.ledger.EXPECT().RegisterAccount(mock.Anything, uint64(20)).
		Return(&entity.Account{ID: 20, Status: entity.AccountActive}, nil).Once()
	f.ledger.EXPECT().Deposit(mock.Anything, usecase.DepositRequest{
		UserID: 20, Amount: "50", Reference: "psp-1",
	}).Return(&entity.Transaction{
		ID: 1, Reference: "psp-1", ToUserID: ptr(20), Currency: "BRT",
		Amount: decimal.NewFromInt(50), Type: entity.TypeDeposit, Status: entity.StatusCompleted,
	}, nil).Once()

	w, body := f.do(t, http.MethodPost, "/accounts", adminID, `{"userId":20}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "active", body["data"].(map[string]any)["status"])

	w, body = f.do(t, http.MethodPost, "/accounts/20/deposits", adminID, `{"amount":"50","reference":"psp-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "50.00", body["data"].(map[string]any)["amount"])
}

func TestAccounts_Authorization(t *testing.T) {
	f := newFixture(t, database.HealthReport{})

	w, _ := f.do(t, http.MethodPost, "/accounts", 20, `{"userId":21}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = f.do(t, http.MethodGet, "/accounts/21/balances", 20, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = f.do(t, http.MethodGet, "/accounts/21/reconciliation", 20, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBalancesAndTransactions(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	clock := testutil.NewClock(time.Now())
	balance, err := entity.NewBalance(20, "BRT", decimal.RequireFromString("12.5"), clock)
	require.NoError(t, err)

	f.ledger.EXPECT().GetBalances(mock.Anything, uint64(20)).Return([]*entity.Balance{balance}, nil).Once()
	f.ledger.EXPECT().ListTransactions(mock.Anything, uint64(20), 200, 5).Return(nil, nil).Once()

	w, body := f.do(t, http.MethodGet, "/accounts/20/balances", 20, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12.50", body["data"].([]any)[0].(map[string]any)["amount"])

	// limit is capped
	w, body = f.do(t, http.MethodGet, "/accounts/20/transactions?limit=1000&offset=5", 20, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["data"])

	w, _ = f.do(t, http.MethodGet, "/accounts/20/transactions?limit=-1", 20, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReconciliation(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.ledger.EXPECT().Reconcile(mock.Anything, uint64(20)).Return([]usecase.ReconciliationResult{
		{UserID: 20, Currency: "BRT", Balance: "5.00", Expected: "5.00", Balanced: true},
	}, nil).Once()

	w, body := f.do(t, http.MethodGet, "/accounts/20/reconciliation", adminID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["data"].([]any)[0].(map[string]any)["balanced"])
}

func TestChallenge_CreateDefaultsCreator(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.challenge.EXPECT().CreateChallenge(mock.Anything, usecase.CreateChallengeRequest{
		Title: "Derby", CreatorID: adminID, FeePercent: "5",
	}).Return(&entity.Challenge{ID: 3, Title: "Derby", CreatorID: adminID, FeePercent: decimal.NewFromInt(5), Status: entity.ChallengeOpen}, nil).Once()

	w, body := f.do(t, http.MethodPost, "/challenge", adminID, `{"title":"Derby","feePercent":"5"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 3, body["data"].(map[string]any)["id"])
}

func TestChallenge_ProcessPayouts(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.payout.EXPECT().ProcessTarget(mock.Anything, entity.PayoutTargetChallenge, uint64(3)).Return(&entity.PayoutPlan{
		TargetType: entity.PayoutTargetChallenge,
		TargetID:   3,
		Pool:       decimal.NewFromInt(30),
		Lines: []entity.PayoutLine{
			{Type: entity.TypeHouseCut, ToUserID: 1, Amount: decimal.RequireFromString("1.5"), Reason: "challenge_fee"},
			{Type: entity.TypeChallengePayout, ToUserID: 11, Amount: decimal.RequireFromString("28.5"), SourceID: 4},
		},
	}, nil).Once()

	w, body := f.do(t, http.MethodPost, "/challenge/3/process-payouts", adminID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "30.00", data["pool"])
	assert.Len(t, data["lines"], 2)
}

func TestChallenge_AlreadyPaid(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.payout.EXPECT().ProcessTarget(mock.Anything, entity.PayoutTargetChallenge, uint64(3)).
		Return(nil, errs.ErrAlreadyPaidOut).Once()

	w, body := f.do(t, http.MethodPost, "/challenge/3/process-payouts", adminID, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.EqualValues(t, errs.CodeAlreadyPaidOut, body["code"])
}

func TestChallenge_InvalidPathID(t *testing.T) {
	f := newFixture(t, database.HealthReport{})

	w, _ := f.do(t, http.MethodPost, "/challenge/abc/bets", 10, `{"outcome":"home","amount":"1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLottery_RecordResult(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.lottery.EXPECT().RecordResult(mock.Anything, uint64(8), []uint64{2, 5}).
		Return(&entity.LotteryDraw{ID: 8, TicketPrice: decimal.NewFromInt(2), Status: entity.DrawDrawn}, nil).Once()

	w, body := f.do(t, http.MethodPost, "/lottery/draws/8/result", adminID, `{"winningTicketIds":[2,5]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 8, body["data"].(map[string]any)["id"])
}

func TestPayoutJobs(t *testing.T) {
	f := newFixture(t, database.HealthReport{})
	f.payout.EXPECT().ListJobs(mock.Anything, "failed", defaultLimit).Return([]*entity.PayoutJob{
		{ID: 1, TargetType: entity.PayoutTargetLotteryDraw, TargetID: 8, Status: entity.PayoutJobFailed, AttemptCount: 5},
	}, nil).Once()

	w, body := f.do(t, http.MethodGet, "/payout-jobs?status=failed", adminID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	jobs := body["data"].([]any)
	require.Len(t, jobs, 1)
	assert.Equal(t, "failed", jobs[0].(map[string]any)["status"])

	w, _ = f.do(t, http.MethodGet, "/payout-jobs", 20, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, database.HealthReport{Status: "up"})
	w, body := f.do(t, http.MethodGet, "/health", 0, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	f = newFixture(t, database.HealthReport{Status: "down", Error: "connection refused"})
	w, body = f.do(t, http.MethodGet, "/health", 0, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", body["status"])
}
