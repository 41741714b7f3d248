// Package stubapi is an in-memory implementation of the remote finance API.
// It serves every endpoint the client consumes so the client can be run
// locally and exercised end to end in tests.
package stubapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/validator"
)

// PriceFunc returns the refreshed price for a holding. last is the current
// price, or the purchase price when the holding has never been priced.
type PriceFunc func(symbol string, last decimal.Decimal) decimal.Decimal

// Options configures a Server.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	// RateLimit is the sustained request rate per second; 0 disables
	// limiting.
	RateLimit float64
	Origins   []string
	Prices    PriceFunc
	Now       func() time.Time
	// HashCost overrides the bcrypt cost; 0 uses the default.
	HashCost int
}

// Server wires the store to a gin router.
type Server struct {
	store    *Store
	issuer   *middleware.TokenIssuer
	sanitize *bluemonday.Policy
	prices   PriceFunc
	engine   *gin.Engine
}

// New creates a stub API server.
func New(opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 7 * 24 * time.Hour
	}
	if opts.Prices == nil {
		opts.Prices = func(_ string, last decimal.Decimal) decimal.Decimal { return last }
	}
	validator.Register()

	store := NewStore(opts.Now)
	if opts.HashCost > 0 {
		store.hashCost = opts.HashCost
	}
	s := &Server{
		store:    store,
		issuer:   middleware.NewTokenIssuer(opts.JWTSecret, opts.TokenTTL),
		sanitize: bluemonday.StrictPolicy(),
		prices:   opts.Prices,
	}
	s.engine = s.routes(opts)
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler { return s.engine }

// Store exposes the backing store.
func (s *Server) Store() *Store { return s.store }

func (s *Server) routes(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(opts.Origins))
	if opts.RateLimit > 0 {
		router.Use(middleware.RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), int(opts.RateLimit)+1)))
	}
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RequirePlatform())

	auth := api.Group("/auth")
	auth.POST("/sign-up/email", s.signUp)
	auth.POST("/sign-in/email", s.signIn)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(s.issuer, s.store))

	protected.POST("/auth/sign-out", s.signOut)
	protected.GET("/auth/session", s.getSession)

	protected.GET("/accounts", s.listAccounts)
	protected.POST("/accounts", s.createAccount)
	protected.GET("/accounts/:id", s.getAccount)
	protected.PUT("/accounts/:id", s.updateAccount)
	protected.DELETE("/accounts/:id", s.deleteAccount)

	protected.GET("/categories", s.listCategories)
	protected.POST("/categories", s.createCategory)
	protected.GET("/categories/:id", s.getCategory)
	protected.PUT("/categories/:id", s.updateCategory)
	protected.DELETE("/categories/:id", s.deleteCategory)

	protected.GET("/transactions", s.listTransactions)
	protected.POST("/transactions", s.createTransaction)
	protected.POST("/transfers", s.createTransfer)

	// Static segments take precedence over :id in gin's router.
	protected.GET("/subscriptions", s.listSubscriptions)
	protected.POST("/subscriptions", s.createSubscription)
	protected.GET("/subscriptions/summary", s.subscriptionSummary)
	protected.POST("/subscriptions/process-due", s.processDueSubscriptions)
	protected.GET("/subscriptions/:id", s.getSubscription)
	protected.PUT("/subscriptions/:id", s.updateSubscription)
	protected.DELETE("/subscriptions/:id", s.deleteSubscription)
	protected.POST("/subscriptions/:id/process", s.processSubscription)

	protected.GET("/debts", s.listDebts)
	protected.POST("/debts", s.createDebt)
	protected.GET("/debts/summary", s.debtSummary)
	protected.GET("/debts/:id", s.getDebt)
	protected.PUT("/debts/:id", s.updateDebt)
	protected.DELETE("/debts/:id", s.deleteDebt)
	protected.POST("/debts/:id/pay", s.payDebt)

	protected.GET("/crypto", s.getPortfolio)
	protected.POST("/crypto", s.createHolding)
	protected.POST("/crypto/update-prices", s.updatePrices)
	protected.POST("/crypto/:id/sell", s.sellHolding)

	protected.GET("/statistics", s.getStatistics)
	protected.GET("/export", s.export)

	return router
}

// userID returns the authenticated user's ID set by AuthMiddleware.
func userID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// bind decodes the JSON body into req, reporting failures as INVALID_INPUT.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.RespondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

// clean strips HTML from user-supplied free text.
func (s *Server) clean(v string) string {
	return s.sanitize.Sanitize(v)
}

func (s *Server) cleanPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := s.clean(*v)
	return &out
}

func fail(c *gin.Context, err error) {
	middleware.RespondWithError(c, err)
}

func respond(c *gin.Context, status int, body any, err error) {
	if err != nil {
		middleware.RespondWithError(c, err)
		return
	}
	if body == nil {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}

func requirePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be greater than zero")
	}
	return nil
}
