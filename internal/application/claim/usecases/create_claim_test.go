package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantly/internal/application/claim/services"
	"warrantly/internal/domain/category"
	"warrantly/internal/domain/claim"
	"warrantly/internal/domain/notification"
	"warrantly/internal/domain/user"
	"warrantly/internal/domain/warranty"
	apperrors "warrantly/internal/shared/errors"
)

type createClaimDeps struct {
	claimRepo    *mockClaimRepository
	categoryRepo *mockCategoryRepository
	userRepo     *mockUserRepository
	ruleRepo     *mockRuleRepository
	dispatcher   *mockDispatcher
	txManager    *mockTxManager
}

func testCategory(t *testing.T, approverRole string) *category.Category {
	t.Helper()
	return testCategoryWithID(t, 1, "Car Mats", approverRole)
}

func testCategoryWithID(t *testing.T, id uint, name, approverRole string) *category.Category {
	t.Helper()
	cat, err := category.ReconstructCategory(id, name, approverRole, 5, "", time.Now(), time.Now())
	require.NoError(t, err)
	return cat
}

func testApprover(t *testing.T, id uint, email string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Approver", email, "Finance", false, "active", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func newCreateClaimUseCase(t *testing.T, deps *createClaimDeps) *CreateClaimUseCase {
	t.Helper()
	if deps.claimRepo == nil {
		deps.claimRepo = &mockClaimRepository{}
	}
	if deps.categoryRepo == nil {
		deps.categoryRepo = &mockCategoryRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
				return testCategory(t, "Finance"), nil
			},
		}
	}
	if deps.userRepo == nil {
		deps.userRepo = &mockUserRepository{
			FindActiveByApproverRoleFunc: func(ctx context.Context, role string) ([]*user.User, error) {
				return []*user.User{testApprover(t, 10, "approver@example.com")}, nil
			},
		}
	}
	if deps.ruleRepo == nil {
		rule, err := warranty.NewRule("TRAPO CLASSIC", 12, "manufacturing defects", "")
		require.NoError(t, err)
		deps.ruleRepo = &mockRuleRepository{
			FindByProductTypeFunc: func(ctx context.Context, productType string) (*warranty.Rule, error) {
				if productType == "TRAPO CLASSIC" {
					return rule, nil
				}
				return nil, warranty.ErrRuleNotFound
			},
		}
	}
	if deps.dispatcher == nil {
		deps.dispatcher = &mockDispatcher{}
	}
	if deps.txManager == nil {
		deps.txManager = &mockTxManager{}
	}

	resolver := warranty.NewResolverWithClock(deps.ruleRepo, func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	})
	approverResolver := services.NewApproverResolver(deps.userRepo, nopLogger{})
	router := notification.NewRouter(notification.Flags{NotifyCustomer: true, NotifyStaffCreator: true})

	return NewCreateClaimUseCase(
		deps.claimRepo,
		deps.categoryRepo,
		deps.userRepo,
		resolver,
		approverResolver,
		router,
		deps.dispatcher,
		deps.txManager,
		nopLogger{},
	)
}

func validCreateCommand() CreateClaimCommand {
	return CreateClaimCommand{
		OrderID:       "TMR-O100",
		OrderDate:     time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Items: []CreateClaimItemInput{
			{SKU: "TRC-SEDAN", CategoryID: 1, Quantity: 1, Issue: "worn edges"},
		},
	}
}

func TestCreateClaimUseCase_Execute_Success(t *testing.T) {
	deps := &createClaimDeps{}
	uc := newCreateClaimUseCase(t, deps)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.ClaimID)
	assert.Equal(t, "CLAIM-100", result.ClaimNumber)
	assert.Equal(t, "new", result.Status)

	require.Len(t, result.Warranty, 1)
	assert.Equal(t, "TRAPO CLASSIC", result.Warranty[0].ProductType)
	assert.Equal(t, 12, result.Warranty[0].DurationMonths)
	assert.True(t, result.Warranty[0].IsValid)
}

func TestCreateClaimUseCase_Execute_SavesInitialNote(t *testing.T) {
	var saved *claim.Claim
	deps := &createClaimDeps{
		claimRepo: &mockClaimRepository{
			SaveFunc: func(ctx context.Context, c *claim.Claim) error {
				saved = c
				return c.SetID(1)
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.Len(t, saved.Notes(), 1)
	assert.Equal(t, "Claim created", saved.Notes()[0].Body())
}

func TestCreateClaimUseCase_Execute_ValidationCollectsAllFields(t *testing.T) {
	uc := newCreateClaimUseCase(t, &createClaimDeps{})

	_, err := uc.Execute(context.Background(), CreateClaimCommand{
		Items: []CreateClaimItemInput{
			{SKU: "", Quantity: 0},
			{SKU: "TRC-1", Quantity: -1},
			{SKU: "TRC-1", CategoryID: 1, Quantity: 1, Issue: "worn"},
		},
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	// order_id, order_date, customer_name, empty sku, missing item
	// category, non-positive quantity, missing issue and duplicate sku
	// all reported together.
	assert.GreaterOrEqual(t, len(appErr.Fields), 7)
}

func TestCreateClaimUseCase_Execute_EmptyIssueRejected(t *testing.T) {
	uc := newCreateClaimUseCase(t, &createClaimDeps{})

	cmd := validCreateCommand()
	cmd.Items[0].Issue = ""

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Fields, "items[0].issue is required")
}

func TestCreateClaimUseCase_Execute_MediaMustReferenceClaimedItem(t *testing.T) {
	uc := newCreateClaimUseCase(t, &createClaimDeps{})

	cmd := validCreateCommand()
	cmd.Media = []CreateClaimMediaInput{
		{Type: "photo", URL: "https://cdn.example.com/p.jpg", SizeBytes: 1024, ItemSKU: "TRC-UNKNOWN"},
	}

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateClaimUseCase_Execute_DuplicateClaim(t *testing.T) {
	deps := &createClaimDeps{
		claimRepo: &mockClaimRepository{
			ExistsByOrderAndSKUFunc: func(ctx context.Context, orderID, sku string) (bool, error) {
				return true, nil
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateClaimError(err))
}

func TestCreateClaimUseCase_Execute_DuplicateKeyOnSave(t *testing.T) {
	deps := &createClaimDeps{
		claimRepo: &mockClaimRepository{
			SaveFunc: func(ctx context.Context, c *claim.Claim) error {
				return errors.New("Error 1062: Duplicate entry 'TMR-O100-TRC-SEDAN'")
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateClaimError(err))
}

func TestCreateClaimUseCase_Execute_CategoryNotFound(t *testing.T) {
	deps := &createClaimDeps{
		categoryRepo: &mockCategoryRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
				return nil, errors.New("record not found")
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateClaimUseCase_Execute_RuleLookupFailure(t *testing.T) {
	deps := &createClaimDeps{
		ruleRepo: &mockRuleRepository{
			FindByProductTypeFunc: func(ctx context.Context, productType string) (*warranty.Rule, error) {
				return nil, errors.New("connection refused")
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.True(t, apperrors.IsRuleLookupError(err))
}

func TestCreateClaimUseCase_Execute_NotificationsDispatched(t *testing.T) {
	deps := &createClaimDeps{}
	uc := newCreateClaimUseCase(t, deps)

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)

	require.Len(t, deps.dispatcher.dispatched, 1)
	intents := deps.dispatcher.dispatched[0]
	require.Len(t, intents, 2)

	templates := []string{intents[0].TemplateID, intents[1].TemplateID}
	assert.Contains(t, templates, notification.TemplateClaimCreatedCustomer)
	assert.Contains(t, templates, notification.TemplateClaimCreatedInternal)
}

func TestCreateClaimUseCase_Execute_UnionsApproversAcrossCategories(t *testing.T) {
	deps := &createClaimDeps{
		categoryRepo: &mockCategoryRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
				if id == 2 {
					return testCategoryWithID(t, 2, "Coil Mats", "Operations"), nil
				}
				return testCategoryWithID(t, 1, "Car Mats", "Finance"), nil
			},
		},
		userRepo: &mockUserRepository{
			FindActiveByApproverRoleFunc: func(ctx context.Context, role string) ([]*user.User, error) {
				if role == "Operations" {
					return []*user.User{testApprover(t, 11, "ops@example.com")}, nil
				}
				return []*user.User{testApprover(t, 10, "finance@example.com")}, nil
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	cmd := validCreateCommand()
	cmd.Items = append(cmd.Items, CreateClaimItemInput{
		SKU: "TRH-COIL", CategoryID: 2, Quantity: 1, Issue: "flattened coils",
	})

	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	require.Len(t, deps.dispatcher.dispatched, 1)
	var internal *notification.Intent
	for i := range deps.dispatcher.dispatched[0] {
		if deps.dispatcher.dispatched[0][i].TemplateID == notification.TemplateClaimCreatedInternal {
			internal = &deps.dispatcher.dispatched[0][i]
		}
	}
	require.NotNil(t, internal)
	assert.ElementsMatch(t, []string{"finance@example.com", "ops@example.com"}, internal.Recipients)
	assert.Equal(t, "Car Mats, Coil Mats", internal.Payload["category_name"])
}

func TestCreateClaimUseCase_Execute_DispatchFailureDoesNotFail(t *testing.T) {
	deps := &createClaimDeps{
		dispatcher: &mockDispatcher{
			DispatchFunc: func(ctx context.Context, intents []notification.Intent) error {
				return errors.New("smtp unreachable")
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)
	assert.NotZero(t, result.ClaimID)
}

func TestCreateClaimUseCase_Execute_NoApproversStillCreates(t *testing.T) {
	deps := &createClaimDeps{
		userRepo: &mockUserRepository{
			FindActiveByApproverRoleFunc: func(ctx context.Context, role string) ([]*user.User, error) {
				return nil, nil
			},
		},
	}
	uc := newCreateClaimUseCase(t, deps)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)
	assert.NotZero(t, result.ClaimID)
}

func TestCreateClaimUseCase_Execute_RandomNumberForForeignOrder(t *testing.T) {
	uc := newCreateClaimUseCase(t, &createClaimDeps{})

	cmd := validCreateCommand()
	cmd.OrderID = "SHOP-555"

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Contains(t, result.ClaimNumber, "CLAIM-X")
}
