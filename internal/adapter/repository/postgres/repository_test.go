package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

var billColumns = []string{"id", "bill_no", "party_id", "bill_date", "total", "outstanding", "payment_status", "updated_at"}

func TestAccountRepositoryListAccounts(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery("name: ListAccounts ").
		WithArgs([]string{}, []string{"BANK", "CASH"}, "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "currency_id", "classification_group", "created_at"}).
			AddRow("bank", "1010", "Main bank", "GHS", "BANK", pgTime(postedAt)).
			AddRow("cash", "1000", "Petty cash", "GHS", "CASH", pgTime(postedAt)))

	accounts, err := NewAccountRepository(pool).ListAccounts(context.Background(), domain.AccountFilter{
		Groups: []domain.ClassificationGroup{domain.GroupBank, domain.GroupCash},
	})
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].IsLiquid())
	assert.Equal(t, domain.GroupCash, accounts[1].Group)

	assertExpectations(t, pool)
}

func TestRateRepositoryGetRates(t *testing.T) {
	pool := newMockPool(t)
	asOf := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	pool.ExpectQuery("name: GetCurrencyRates ").
		WithArgs("USD", "GHS", pgDate(2024, time.June, 30)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "from_currency_id", "to_currency_id", "rate_date", "rate"}).
			AddRow("r-2", "USD", "GHS", pgDate(2024, time.June, 28), num("12.1")).
			AddRow("r-1", "USD", "GHS", pgDate(2024, time.May, 31), num("11.8")))

	rates, err := NewRateRepository(pool).GetRates(context.Background(), "USD", "GHS", asOf)
	require.NoError(t, err)
	require.Len(t, rates, 2)

	latest, ok := domain.PickLatestRate(rates, asOf)
	require.True(t, ok)
	assert.True(t, latest.Rate.Equal(decimal.RequireFromString("12.1")))

	assertExpectations(t, pool)
}

func TestTaxRepository(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery("name: GetTaxCode ").
		WithArgs("std").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "account_id"}).
			AddRow("std", "STD", "Standard", "250"))
	pool.ExpectQuery("name: GetTaxComponents ").
		WithArgs("std").
		WillReturnRows(pgxmock.NewRows([]string{"id", "tax_code_id", "name", "rate_percent", "sort_order"}).
			AddRow("c1", "std", "VAT", num("15"), int32(1)).
			AddRow("c2", "std", "NHIL", num("2.5"), int32(2)))
	pool.ExpectQuery("name: GetTaxCode ").
		WithArgs("none").
		WillReturnError(pgx.ErrNoRows)

	repo := NewTaxRepository(pool)

	code, err := repo.GetTaxCode(context.Background(), "std")
	require.NoError(t, err)
	assert.Equal(t, "250", code.AccountID)

	components, err := repo.GetTaxComponents(context.Background(), "std")
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.True(t, components[1].RatePercent.Equal(decimal.RequireFromString("2.5")))

	_, err = repo.GetTaxCode(context.Background(), "none")
	assert.ErrorIs(t, err, domain.ErrTaxCodeNotFound)

	assertExpectations(t, pool)
}

func TestBillRepositoryKnockOff(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)

	pool.ExpectQuery("name: GetBillsByIDsForUpdate ").
		WithArgs([]string{"b1", "b2"}).
		WillReturnRows(pgxmock.NewRows(billColumns).
			AddRow("b1", "INV-001", "party-1", pgDate(2024, time.January, 3), num("500"), num("500"), "UNPAID", pgTime(postedAt)).
			AddRow("b2", "INV-002", "party-1", pgDate(2024, time.January, 9), num("300"), num("120"), "PARTIAL", pgTime(postedAt)))
	pool.ExpectExec("name: UpdateBillOutstanding ").
		WithArgs("b1", pgxmock.AnyArg(), "PARTIAL", pgTime(postedAt)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectExec("name: CreateBillApplication ").
		WithArgs("v-1", "b1", pgxmock.AnyArg(), pgTime(postedAt)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectExec("name: UpdateBillOutstanding ").
		WithArgs("b9", pgxmock.AnyArg(), "PAID", pgTime(postedAt)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewBillRepository(pool)
	ctx := context.Background()

	bills, err := repo.GetByIDsForUpdate(ctx, tx, []string{"b1", "b2"})
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, domain.PaymentStatusPartial, bills[1].PaymentStatus)
	assert.True(t, bills[1].Outstanding.Equal(decimal.NewFromInt(120)))

	remaining, status, err := bills[0].ApplyPayment(decimal.NewFromInt(200))
	require.NoError(t, err)
	require.NoError(t, repo.ApplyPayment(ctx, tx, "b1", remaining, status, postedAt))
	require.NoError(t, repo.RecordApplication(ctx, tx, "v-1", domain.Allocation{BillID: "b1", BillNo: "INV-001", Amount: decimal.NewFromInt(200)}, postedAt))

	err = repo.ApplyPayment(ctx, tx, "b9", decimal.Zero, domain.PaymentStatusPaid, postedAt)
	assert.ErrorIs(t, err, domain.ErrBillNotFound)

	assertExpectations(t, pool)
}

func TestBillRepositoryListOutstanding(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery("name: ListOutstandingBills ").
		WithArgs("party-1").
		WillReturnRows(pgxmock.NewRows(billColumns).
			AddRow("b1", "INV-001", "party-1", pgDate(2024, time.January, 3), num("500"), num("500"), "UNPAID", pgTime(postedAt)))

	bills, err := NewBillRepository(pool).ListOutstanding(context.Background(), "party-1")
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), bills[0].BillDate)

	assertExpectations(t, pool)
}

func TestWorkflowRepositoryDetail(t *testing.T) {
	pool := newMockPool(t)
	workflowColumns := []string{"id", "name", "document_route", "document_type", "min_amount", "max_amount", "is_active", "created_at"}

	pool.ExpectQuery("name: ListWorkflows ").
		WithArgs("", true).
		WillReturnRows(pgxmock.NewRows(workflowColumns).
			AddRow("wf-small", "Small payments", "", "Payment Voucher", pgtype.Numeric{}, num("5000"), true, pgTime(postedAt)))
	pool.ExpectQuery("name: GetWorkflow ").
		WithArgs("wf-small").
		WillReturnRows(pgxmock.NewRows(workflowColumns).
			AddRow("wf-small", "Small payments", "", "Payment Voucher", pgtype.Numeric{}, num("5000"), true, pgTime(postedAt)))
	pool.ExpectQuery("name: GetWorkflowSteps ").
		WithArgs("wf-small").
		WillReturnRows(pgxmock.NewRows([]string{"workflow_id", "step_order", "approver_user_ids", "approval_limit"}).
			AddRow("wf-small", int32(1), []string{"u-1", "u-2"}, num("1000")).
			AddRow("wf-small", int32(2), []string{"u-9"}, pgtype.Numeric{}))
	pool.ExpectQuery("name: GetWorkflow ").
		WithArgs("gone").
		WillReturnError(pgx.ErrNoRows)

	repo := NewWorkflowRepository(pool)
	ctx := context.Background()

	defs, err := repo.ListWorkflows(ctx, usecase.WorkflowFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Nil(t, defs[0].MinAmount)
	require.NotNil(t, defs[0].MaxAmount)
	assert.True(t, defs[0].ResolveDocumentType())
	assert.Equal(t, domain.VoucherTypePayment, defs[0].DocumentType)

	detail, err := repo.GetWorkflowDetail(ctx, "wf-small")
	require.NoError(t, err)
	require.Len(t, detail.Steps, 2)
	first, ok := detail.FirstStep()
	require.True(t, ok)
	assert.True(t, first.Contains("u-2"))
	assert.True(t, first.CanFinalize(decimal.NewFromInt(800)))
	last, ok := detail.NextStep(1)
	require.True(t, ok)
	assert.Nil(t, last.ApprovalLimit)

	_, err = repo.GetWorkflowDetail(ctx, "gone")
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)

	assertExpectations(t, pool)
}

func TestWorkflowInstanceRepository(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)
	instanceColumns := []string{"id", "document_id", "workflow_id", "current_step_order", "status", "assigned_approver_id", "created_at", "updated_at"}

	instance := &domain.DocumentWorkflowInstance{
		ID:                 "wi-1",
		DocumentID:         "v-1",
		WorkflowID:         "wf-small",
		CurrentStepOrder:   1,
		Status:             domain.InstanceStatusPending,
		AssignedApproverID: "u-1",
		CreatedAt:          postedAt,
		UpdatedAt:          postedAt,
	}

	pool.ExpectExec("name: CreateWorkflowInstance ").
		WithArgs("wi-1", "v-1", "wf-small", int32(1), "PENDING", "u-1", pgTime(postedAt), pgTime(postedAt)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectQuery("name: GetOpenWorkflowInstanceForUpdate ").
		WithArgs("v-1").
		WillReturnRows(pgxmock.NewRows(instanceColumns).
			AddRow("wi-1", "v-1", "wf-small", int32(1), "PENDING", "u-1", pgTime(postedAt), pgTime(postedAt)))
	pool.ExpectExec("name: UpdateWorkflowInstance ").
		WithArgs("wi-1", int32(2), "PENDING", "u-9", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectQuery("name: GetOpenWorkflowInstanceForUpdate ").
		WithArgs("v-2").
		WillReturnError(pgx.ErrNoRows)

	repo := NewWorkflowInstanceRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, tx, instance))

	open, err := repo.GetOpenByDocumentForUpdate(ctx, tx, "v-1")
	require.NoError(t, err)
	assert.True(t, open.IsOpen())

	open.CurrentStepOrder = 2
	open.AssignedApproverID = "u-9"
	open.UpdatedAt = postedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, tx, open))

	_, err = repo.GetOpenByDocumentForUpdate(ctx, tx, "v-2")
	assert.ErrorIs(t, err, domain.ErrInstanceNotFound)

	assertExpectations(t, pool)
}

func TestOutboxRepository(t *testing.T) {
	pool := newMockPool(t)
	tx := beginTx(t, pool)

	pool.ExpectExec("name: CreateOutboxEvent ").
		WithArgs("evt-1", "v-1", "voucher", "voucher.posted", []byte(`{"voucher_no":"PV-000007"}`), pgTime(postedAt), false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectQuery("name: GetUnpublishedEvents ").
		WithArgs(int32(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "aggregate_id", "aggregate_type", "event_type", "payload", "created_at", "published_at", "published"}).
			AddRow("evt-1", "v-1", "voucher", "voucher.posted", []byte(`{"voucher_no":"PV-000007"}`), pgTime(postedAt), pgtype.Timestamptz{}, false))
	pool.ExpectExec("name: MarkEventPublished ").
		WithArgs("evt-1", pgTime(postedAt)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewOutboxRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            "evt-1",
		AggregateID:   "v-1",
		AggregateType: domain.AggregateTypeVoucher,
		EventType:     domain.EventTypeVoucherPosted,
		Payload:       map[string]any{"voucher_no": "PV-000007"},
		CreatedAt:     postedAt,
	}))

	events, err := repo.GetUnpublished(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "PV-000007", events[0].Payload["voucher_no"])
	assert.Nil(t, events[0].PublishedAt)

	require.NoError(t, repo.MarkPublished(ctx, "evt-1", postedAt))

	assertExpectations(t, pool)
}

func TestOutboxRepositoryRejectsCorruptPayload(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery("name: GetUnpublishedEvents ").
		WithArgs(int32(maxOutboxBatch)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "aggregate_id", "aggregate_type", "event_type", "payload", "created_at", "published_at", "published"}).
			AddRow("evt-9", "v-1", "voucher", "voucher.posted", []byte(`{not json`), pgTime(postedAt), pgtype.Timestamptz{}, false))

	_, err := NewOutboxRepository(pool).GetUnpublished(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evt-9")

	assertExpectations(t, pool)
}
