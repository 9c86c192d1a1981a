package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	stripesub "github.com/stripe/stripe-go/v82/subscription"
	"github.com/stripe/stripe-go/v82/webhook"

	dbm "redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/request_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string // e.g. https://app.example.com/welcome?fresh_signup=1
	CancelURL     string
	ProviderName  string // "stripe" (stored on Transaction.Provider)
}

type PaymentService interface {
	CreatePlanCheckout(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error)
	CreateMerchCheckout(ctx context.Context, accountID uuid.UUID, items []request_models.MerchItem) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	planRepo        repositories.IPlanRepository
	productRepo     repositories.IProductRepository
	txnRepo         repositories.TransactionRepository
	accountRepo     repositories.AccountRepository
	subscriptionRepo repositories.SubscriptionRepository
	subscriptionSvc SubscriptionServiceInterface
	mailService     IMailService
	cfg             StripeConfig
}

func NewPaymentService(
	planRepo repositories.IPlanRepository,
	productRepo repositories.IProductRepository,
	txnRepo repositories.TransactionRepository,
	accountRepo repositories.AccountRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	subscriptionSvc SubscriptionServiceInterface,
	mailService IMailService,
	cfg StripeConfig,
) (PaymentService, error) {
	if cfg.SecretKey == "" || cfg.WebhookSecret == "" {
		return nil, errors.New("missing stripe credentials")
	}
	stripe.Key = cfg.SecretKey
	if cfg.ProviderName == "" {
		cfg.ProviderName = "stripe"
	}
	return &paymentService{
		planRepo:         planRepo,
		productRepo:      productRepo,
		txnRepo:          txnRepo,
		accountRepo:      accountRepo,
		subscriptionRepo: subscriptionRepo,
		subscriptionSvc:  subscriptionSvc,
		mailService:      mailService,
		cfg:              cfg,
	}, nil
}

func (p *paymentService) CreatePlanCheckout(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error) {
	plan, err := p.planRepo.FindByCode(ctx, planCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if plan.PriceMinor <= 0 || plan.StripePriceID == "" {
		return nil, fmt.Errorf("plan %s is not billable", planCode)
	}

	account, err := p.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	// Transformation is a fixed-length program sold as a one-time payment;
	// membership and coaching bill as recurring subscriptions.
	mode := stripe.CheckoutSessionModeSubscription
	if plan.Tier == dbm.TierTransformation {
		mode = stripe.CheckoutSessionModePayment
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(plan.StripePriceID), Quantity: stripe.Int64(1)},
		},
		CustomerEmail: stripe.String(account.Email),
		SuccessURL:    stripe.String(p.cfg.SuccessURL),
		CancelURL:     stripe.String(p.cfg.CancelURL),
	}
	params.AddMetadata("account_id", accountID.String())
	params.AddMetadata("plan_code", plan.Code)
	params.AddMetadata("plan_tier", string(plan.Tier))
	params.AddMetadata("kind", "plan")

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}

	txn := &dbm.Transaction{
		AccountID:     accountID,
		AmountMinor:   plan.PriceMinor,
		Currency:      plan.Currency,
		Status:        dbm.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: sess.ID,
	}
	if meta := jsonRaw(map[string]any{"plan_code": plan.Code, "plan_tier": plan.Tier}); meta != nil {
		txn.Metadata = meta
	}
	if err := p.txnRepo.InsertTx(txn, ctx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		SessionID:    sess.ID,
		Amount:       plan.PriceMinor,
		Currency:     plan.Currency,
		PaymentURL:   sess.URL,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) CreateMerchCheckout(ctx context.Context, accountID uuid.UUID, items []request_models.MerchItem) (*response_models.CreateCheckoutResponse, error) {
	if len(items) == 0 {
		return nil, utils.ErrInvalidInput
	}

	account, err := p.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams
	var total int64
	currency := "USD"
	lines := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, utils.ErrInvalidInput
		}
		product, err := p.productRepo.FindBySlug(ctx, item.Slug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if product == nil {
			return nil, utils.ErrProductNotFound
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(product.StripePriceID),
			Quantity: stripe.Int64(item.Quantity),
		})
		total += product.PriceMinor * item.Quantity
		currency = product.Currency
		lines = append(lines, map[string]any{
			"slug": product.Slug, "size": item.Size, "qty": item.Quantity,
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		CustomerEmail: stripe.String(account.Email),
		SuccessURL:    stripe.String(p.cfg.SuccessURL),
		CancelURL:     stripe.String(p.cfg.CancelURL),
	}
	params.AddMetadata("account_id", accountID.String())
	params.AddMetadata("kind", "merch")

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}

	txn := &dbm.Transaction{
		AccountID:     accountID,
		AmountMinor:   total,
		Currency:      currency,
		Status:        dbm.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: sess.ID,
	}
	if meta := jsonRaw(map[string]any{"kind": "merch", "items": lines}); meta != nil {
		txn.Metadata = meta
	}
	if err := p.txnRepo.InsertTx(txn, ctx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		SessionID:    sess.ID,
		Amount:       total,
		Currency:     currency,
		PaymentURL:   sess.URL,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("webhook: reading body failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), p.cfg.WebhookSecret)
	if err != nil {
		log.Printf("webhook: signature verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	ctx := c.Request.Context()

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("webhook: parsing session failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
			return
		}
		if err := p.handleCheckoutCompleted(ctx, &sess); err != nil {
			log.Printf("webhook: processing session %s failed: %v", sess.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			log.Printf("webhook: parsing subscription failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
			return
		}
		if err := p.subscriptionEnded(ctx, sub.ID); err != nil {
			log.Printf("webhook: expiring subscription %s failed: %v", sub.ID, err)
		}
	default:
		// Unhandled event types are acked so Stripe stops redelivering them.
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (p *paymentService) handleCheckoutCompleted(ctx context.Context, sess *stripe.CheckoutSession) error {
	txn, err := p.txnRepo.FindByProviderTxnID(ctx, sess.ID)
	if err != nil {
		return err
	}
	if txn == nil {
		// Ack and log rather than erroring, to avoid a redelivery storm.
		log.Printf("webhook: transaction not found for session %s", sess.ID)
		return nil
	}

	// Idempotency: redelivered events for an already-paid transaction no-op.
	if txn.Status == dbm.TxnStatusPaid {
		return nil
	}
	if err := p.txnRepo.MarkPaid(ctx, txn.ID.String(), utils.NowUnixSeconds()); err != nil {
		return err
	}

	if sess.Metadata["kind"] != "plan" {
		return nil
	}

	tier := dbm.PlanTier(sess.Metadata["plan_tier"])
	accountID, err := uuid.Parse(sess.Metadata["account_id"])
	if err != nil {
		return fmt.Errorf("missing account info in session metadata")
	}

	var customerID, providerSubID string
	if sess.Customer != nil {
		customerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		providerSubID = sess.Subscription.ID
	}

	email := sess.CustomerEmail
	sub, err := p.subscriptionSvc.Provision(ctx, accountID, email, tier, customerID, providerSubID)
	if err != nil {
		return err
	}

	if meta := jsonRaw(map[string]any{"subscription_id": sub.ID, "plan_tier": tier}); meta != nil {
		_ = p.txnRepo.UpdateMetadata(ctx, txn.ID.String(), meta)
	}

	if email != "" {
		if mailErr := p.mailService.SendWelcome(email, string(tier)); mailErr != nil {
			log.Printf("webhook: welcome mail failed for %s: %v", accountID, mailErr)
		}
	}
	return nil
}

func (p *paymentService) subscriptionEnded(ctx context.Context, providerSubID string) error {
	return p.subscriptionRepo.MarkExpired(ctx, providerSubID)
}

func jsonRaw(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

// StripeBillingClient implements BillingClient against the live Stripe API.
type StripeBillingClient struct{}

func NewStripeBillingClient(secretKey string) *StripeBillingClient {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &StripeBillingClient{}
}

func (s *StripeBillingClient) CancelAtPeriodEnd(_ context.Context, providerSubID string, reason string) error {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	if reason != "" {
		params.AddMetadata("cancel_reason", reason)
	}
	_, err := stripesub.Update(providerSubID, params)
	if err != nil {
		return fmt.Errorf("stripe cancel at period end: %w", err)
	}
	return nil
}
