package router

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DjordjeVuckovic/rule-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/rule-hunter/internal/atoms"
	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/metrics"
	"github.com/DjordjeVuckovic/rule-hunter/internal/planner"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
	"github.com/DjordjeVuckovic/rule-hunter/internal/skiprule"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage"
	"github.com/labstack/echo/v4"
)

// maxBodySize bounds YAML uploads.
const maxBodySize = 4 << 20

type RuleRouter struct {
	e       *echo.Echo
	store   storage.Store
	planner *planner.Planner
}

type RuleRouterOption func(*RuleRouter)

// WithPlanner replaces the planner used by the plan endpoint.
func WithPlanner(p *planner.Planner) RuleRouterOption {
	return func(r *RuleRouter) {
		r.planner = p
	}
}

// NewRuleRouter serves the rule endpoints. Without a planner every entity
// is planned for renaming.
func NewRuleRouter(e *echo.Echo, store storage.Store, opts ...RuleRouterOption) *RuleRouter {
	r := &RuleRouter{
		e:       e,
		store:   store,
		planner: planner.New(&skiprule.RuleSet{}, planner.DefaultHashLen),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RuleRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
	r.e.POST("/rules/validate", r.validateRulesHandler)
	r.e.POST("/catalogs", r.saveCatalogHandler)
	r.e.GET("/catalogs/:name/plan", r.planHandler)
}

type EvaluateRequest struct {
	Expression string          `json:"expression" example:"public and !type.sealed"`
	Atoms      map[string]bool `json:"atoms"`
}

type EvaluateResponse struct {
	Result bool `json:"result"`
}

// evaluateHandler godoc
// @Summary Evaluate a rule expression
// @Description Evaluates a boolean expression against the given atom values. Unknown atoms are rejected.
// @Tags rules
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Expression and atom values"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]interface{}
// @Router /evaluate [post]
func (r *RuleRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Expression == "" {
		return apperr.NewValidation("expression is required")
	}

	result, err := rule.Evaluate(req.Expression, rule.ResolverFunc(func(name string) (bool, error) {
		v, ok := req.Atoms[name]
		if !ok {
			return false, &atoms.UnknownAtomError{Name: name}
		}
		return v, nil
	}))
	metrics.RecordEvaluation(result, err)
	if err != nil {
		return apperr.NewValidationWrap("invalid expression", err)
	}

	return c.JSON(http.StatusOK, EvaluateResponse{Result: result})
}

type RuleSetResponse struct {
	Name  string `json:"name"`
	Rules int    `json:"rules"`
}

// validateRulesHandler godoc
// @Summary Validate a rule set
// @Description Parses a YAML rule set and checks every pattern and expression.
// @Tags rules
// @Accept application/x-yaml
// @Produce json
// @Success 200 {object} RuleSetResponse
// @Failure 400 {object} map[string]interface{}
// @Router /rules/validate [post]
func (r *RuleRouter) validateRulesHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	s, err := skiprule.Parse(body)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RuleSetResponse{Name: s.Name, Rules: len(s.Rules)})
}

type CatalogResponse struct {
	Name  string `json:"name"`
	Types int    `json:"types"`
}

// saveCatalogHandler godoc
// @Summary Store a catalog
// @Description Parses a YAML catalog and replaces the stored catalog of the same name.
// @Tags catalogs
// @Accept application/x-yaml
// @Produce json
// @Success 201 {object} CatalogResponse
// @Failure 400 {object} map[string]interface{}
// @Router /catalogs [post]
func (r *RuleRouter) saveCatalogHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	cat, err := catalog.Parse(body)
	if err != nil {
		return apperr.NewValidationWrap("invalid catalog", err)
	}

	if err := r.store.SaveCatalog(c.Request().Context(), cat); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return c.JSON(http.StatusCreated, CatalogResponse{Name: cat.Name, Types: len(cat.Types)})
}

// planHandler godoc
// @Summary Plan renames for a catalog
// @Description Decides for every type and member of a stored catalog whether it keeps its name.
// @Tags catalogs
// @Produce json
// @Param name path string true "Catalog name"
// @Success 200 {object} planner.Plan
// @Failure 404 {object} map[string]interface{}
// @Router /catalogs/{name}/plan [get]
func (r *RuleRouter) planHandler(c echo.Context) error {
	name := c.Param("name")

	cat, err := r.store.ListCatalog(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrCatalogNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("catalog %q not found", name))
		}
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	plan, err := r.planner.Plan(c.Request().Context(), cat)
	if err != nil {
		return fmt.Errorf("failed to plan catalog %q: %w", name, err)
	}

	return c.JSON(http.StatusOK, plan)
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
	}
	if len(body) == 0 {
		return nil, apperr.NewValidation("request body is required")
	}
	return body, nil
}
