package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/skillsenselab/authkit/auth"
	"github.com/skillsenselab/authkit/errors"
	"github.com/skillsenselab/authkit/observability"
	"github.com/skillsenselab/authkit/server/middleware"
	"github.com/skillsenselab/authkit/version"
)

// Handlers carries the HTTP handlers for the account routes.
type Handlers struct {
	auth   *auth.Service
	health *healthReporter
}

// NewHandlers creates the handler set. The health checkers are probed by
// GET /health; pass the database here so readiness reflects it.
func NewHandlers(authSvc *auth.Service, serviceName, version string, checkers ...observability.HealthChecker) *Handlers {
	return &Handlers{
		auth: authSvc,
		health: &healthReporter{
			service:  serviceName,
			version:  version,
			checkers: checkers,
		},
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, bindingError(err))
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanRegister)
	defer span.End()

	sess, err := h.auth.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		observability.SetSpanError(ctx, err)
		RespondWithError(c, err)
		return
	}
	RespondCreated(c, sess)
}

// Login handles POST /api/auth/login.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, bindingError(err))
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanLogin)
	defer span.End()

	sess, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		observability.SetSpanError(ctx, err)
		RespondWithError(c, err)
		return
	}
	RespondOK(c, sess)
}

// Refresh handles POST /api/auth/refresh.
func (h *Handlers) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, bindingError(err))
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanRefresh)
	defer span.End()

	pair, err := h.auth.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		observability.SetSpanError(ctx, err)
		RespondWithError(c, err)
		return
	}
	RespondOK(c, pair)
}

// Profile handles GET /api/auth/profile. The route is gated by the
// authentication middleware, so an identity is always attached.
func (h *Handlers) Profile(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		RespondWithError(c, errors.Unauthenticated())
		return
	}
	userID, err := uuid.Parse(id.ID)
	if err != nil {
		RespondWithError(c, errors.InvalidToken("access"))
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanProfile)
	defer span.End()

	profile, err := h.auth.Profile(ctx, userID)
	if err != nil {
		observability.SetSpanError(ctx, err)
		RespondWithError(c, err)
		return
	}
	RespondOK(c, profile)
}

// AdminPing handles GET /api/admin/ping, the admin-only probe.
func (h *Handlers) AdminPing(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	RespondOK(c, gin.H{"message": "pong", "role": id.Role})
}

type healthReporter struct {
	service  string
	version  string
	checkers []observability.HealthChecker
}

// Health handles GET /health. A down component turns the report into a
// 503 so load balancers stop routing here.
func (h *Handlers) Health(c *gin.Context) {
	report := observability.NewServiceHealth(h.health.service, h.health.version)
	for _, checker := range h.health.checkers {
		report.AddComponent(checker.CheckHealth(c.Request.Context()))
	}

	status := http.StatusOK
	if report.Status == observability.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// Info handles GET /info with build identity and uptime.
func (h *Handlers) Info(c *gin.Context) {
	v := version.Get()
	c.JSON(http.StatusOK, gin.H{
		"service":    h.health.service,
		"version":    v.Version,
		"git_commit": v.GitCommit,
		"build_time": v.BuildTime,
		"go_version": v.GoVersion,
		"uptime":     time.Since(startTime).String(),
	})
}

// startTime records when the process started for uptime reporting.
var startTime = time.Now()

// bindingError translates gin/validator binding failures into the
// client-facing taxonomy: a missing field names the field, everything
// else is a generic validation error.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return errors.MissingField(fieldName(fe))
		}
		return errors.Validation("Invalid value for field: " + fieldName(fe))
	}
	return errors.Validation("Request body is malformed.")
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "FullName":
		return "full_name"
	case "RefreshToken":
		return "refresh_token"
	}
	return fe.Field()
}
