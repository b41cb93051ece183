// Package service implements the authentication gate: registration,
// credential login, and authenticated self-lookup. It is the sole consumer
// of the account store and the token service.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AdminStore,TokenIssuer

import (
	"context"
	"log/slog"
	"time"

	"admingate/internal/admin/device"
	"admingate/internal/admin/metrics"
	"admingate/internal/admin/models"
	"admingate/internal/admin/tracer"
	dErrors "admingate/pkg/domain-errors"
	"admingate/pkg/secrets"
	"admingate/pkg/validation"
)

// AdminStore defines the persistence interface for admin accounts.
// Error Contract: Find methods return store.ErrNotFound when the admin
// doesn't exist; Create returns store.ErrDuplicate on email collisions.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// TokenIssuer mints signed bearer tokens for authenticated admins.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// CredentialMode selects how passwords are stored and compared.
type CredentialMode string

const (
	// CredentialPlaintext stores passwords as received and compares them in
	// constant time. This preserves the legacy system's observable behavior
	// and is the default.
	CredentialPlaintext CredentialMode = "plaintext"

	// CredentialBcrypt hashes passwords at registration and verifies with
	// bcrypt at login. Accounts registered under plaintext mode will not
	// verify once this is enabled.
	CredentialBcrypt CredentialMode = "bcrypt"
)

func (m CredentialMode) IsValid() bool {
	return m == CredentialPlaintext || m == CredentialBcrypt
}

// Service orchestrates registration, login, and authenticated self-lookup.
// It is stateless per request; every operation is a single store call plus
// pure computation.
type Service struct {
	store       AdminStore
	tokens      TokenIssuer
	credentials CredentialMode
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      tracer.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithCredentialMode selects the password comparison strategy.
// Invalid modes are ignored and the default (plaintext parity) kept.
func WithCredentialMode(mode CredentialMode) Option {
	return func(s *Service) {
		if mode.IsValid() {
			s.credentials = mode
		}
	}
}

func New(store AdminStore, tokens TokenIssuer, opts ...Option) *Service {
	svc := &Service{
		store:       store,
		tokens:      tokens,
		credentials: CredentialPlaintext,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = tracer.NewNoop()
	}
	return svc
}

// Register creates a new admin account. Status is always forced to Active;
// there is no duplicate-email pre-check here - the store enforces uniqueness.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminView, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanRegister)
	var err error
	defer func() { span.End(err) }()

	req.Sanitize()
	if err = validation.Validate(req); err != nil {
		return nil, err
	}

	password := req.Password
	if s.credentials == CredentialBcrypt {
		password, err = secrets.Hash(req.Password)
		if err != nil {
			return nil, err
		}
	}

	admin, err := models.NewAdmin(req.Name, req.Email, password)
	if err != nil {
		return nil, err
	}

	if err = s.store.Create(ctx, admin); err != nil {
		err = s.translateStoreError(ctx, err, "register")
		return nil, err
	}

	s.metrics.IncrementAdminsRegistered()
	s.logger.InfoContext(ctx, "admin registered",
		"admin_id", admin.ID.String(),
		"email", admin.Email,
	)
	return models.NewAdminView(admin), nil
}

// Login validates credentials and issues a bearer token.
// The order is fixed: lookup, then password comparison, then status check.
// An absent account never falls through to a password comparison.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest, userAgent string) (*models.LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanLogin)
	var err error
	defer func() { span.End(err) }()

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.LoginDurationMs.Observe(float64(time.Since(start).Milliseconds()))
		}
	}()

	req.Sanitize()
	if err = validation.Validate(req); err != nil {
		return nil, err
	}

	admin, findErr := s.store.FindByEmail(ctx, req.Email)
	if findErr != nil {
		err = s.translateLoginError(ctx, findErr, req.Email)
		return nil, err
	}

	if !s.compareCredentials(req.Password, admin.Password) {
		s.metrics.ObserveLogin(metrics.OutcomeInvalidCredentials)
		s.logger.WarnContext(ctx, "login rejected - invalid password",
			"email", req.Email,
		)
		err = dErrors.New(dErrors.CodeInvalidCredentials, "invalid password")
		return nil, err
	}

	// Checked after the password match, per the documented contract.
	if admin.Status == models.StatusInactive {
		s.metrics.ObserveLogin(metrics.OutcomeAccountInactive)
		s.logger.WarnContext(ctx, "login rejected - inactive account",
			"email", req.Email,
		)
		err = dErrors.New(dErrors.CodeAccountInactive, "your status is inactive")
		return nil, err
	}

	// The token is keyed on the submitted email, which at this point equals
	// the stored one.
	token, issueErr := s.tokens.Issue(req.Email)
	if issueErr != nil {
		s.metrics.ObserveLogin(metrics.OutcomeError)
		err = dErrors.Wrap(issueErr, dErrors.CodeInternal, "could not issue token")
		return nil, err
	}

	s.metrics.ObserveLogin(metrics.OutcomeSuccess)
	s.metrics.IncrementTokensIssued()

	displayName := device.ParseUserAgent(userAgent)
	span.SetAttributes(tracer.String(tracer.AttrDevice, displayName))
	s.logger.InfoContext(ctx, "admin logged in",
		"email", req.Email,
		"device", displayName,
	)

	return &models.LoginResult{Token: token}, nil
}

// Details returns the account for an already-verified identity claim.
// The authorization filter verifies the token and binds the email; here the
// account may legitimately have vanished since the token was issued.
func (s *Service) Details(ctx context.Context, email string) (*models.AdminView, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanDetails)
	var err error
	defer func() { span.End(err) }()

	if email == "" {
		err = dErrors.New(dErrors.CodeInvalidInput, "email cannot be empty")
		return nil, err
	}

	admin, findErr := s.store.FindByEmail(ctx, email)
	if findErr != nil {
		err = s.translateDetailsError(ctx, findErr, email)
		return nil, err
	}

	return models.NewAdminView(admin), nil
}

func (s *Service) compareCredentials(submitted, stored string) bool {
	if s.credentials == CredentialBcrypt {
		return secrets.Verify(submitted, stored) == nil
	}
	return secrets.Equal(submitted, stored)
}
