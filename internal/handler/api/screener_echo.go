package api

import (
	"errors"

	models "Screener/internal/domain/models"
	"Screener/internal/service/params"
	"Screener/internal/service/schema"
	"Screener/internal/usecase"
	xhttp "Screener/pkg/http"
	xlogger "Screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScreenerEchoHandler implements Echo-based HTTP handlers for the
// screening API.
type ScreenerEchoHandler struct {
	logger   *xlogger.Logger
	screener *usecase.Screener
}

func NewScreenerEchoHandler(logger *xlogger.Logger, screener *usecase.Screener) *ScreenerEchoHandler {
	return &ScreenerEchoHandler{logger: logger, screener: screener}
}

func (h *ScreenerEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/providers", h.Providers)
	g.GET("/providers/:provider/configs", h.Configs)
	g.GET("/providers/:provider/fields", h.Fields)
	g.GET("/configs/:provider/:config", h.ConfigInfo)
	g.POST("/screen", h.Screen)
}

var providerInfo = map[models.Provider]models.ProviderInfo{
	models.ProviderTradingView: {
		ID: "tv", Name: "TradingView",
		Description:     "Traditional stock screening via TradingView",
		SupportsMarkets: true, AssetTypes: "Stocks",
	},
	models.ProviderTradingViewCrypto: {
		ID: "tv_crypto", Name: "TradingView Crypto",
		Description:     "Cryptocurrency screening via TradingView",
		SupportsMarkets: false, AssetTypes: "Cryptocurrencies",
	},
	models.ProviderFinviz: {
		ID: "finviz", Name: "Finviz",
		Description:     "Stock screening via Finviz platform",
		SupportsMarkets: true, AssetTypes: "US Stocks",
	},
}

func (h *ScreenerEchoHandler) Providers(c echo.Context) error {
	out := make([]models.ProviderInfo, 0, len(providerInfo))
	for _, p := range models.Providers() {
		out = append(out, providerInfo[p])
	}
	return xhttp.SuccessResponse(c, out)
}

func (h *ScreenerEchoHandler) Configs(c echo.Context) error {
	req := &models.ProviderRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	names := h.screener.ListConfigs(models.Provider(req.Provider))
	return xhttp.SuccessResponse(c, names)
}

func (h *ScreenerEchoHandler) Fields(c echo.Context) error {
	req := &models.ProviderRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	sch, ok := schema.ForProvider(models.Provider(req.Provider))
	if !ok {
		return xhttp.NotFoundResponse(c, "unknown provider")
	}
	out := make([]models.FieldInfo, 0, len(sch.Fields))
	for _, name := range sch.FieldNames() {
		fi := sch.Fields[name]
		out = append(out, models.FieldInfo{
			Name:        name,
			Kind:        fi.Kind.String(),
			Description: fi.Description,
		})
	}
	return xhttp.SuccessResponse(c, out)
}

func (h *ScreenerEchoHandler) ConfigInfo(c echo.Context) error {
	req := &models.ConfigInfoRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	cfg, err := h.screener.ConfigInfo(models.Provider(req.Provider), req.Config)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, cfg)
}

func (h *ScreenerEchoHandler) Screen(c echo.Context) error {
	req := &models.ScreenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.screener.Run(c.Request().Context(), usecase.ScreenRequest{
		Provider:      models.Provider(req.Provider),
		Config:        req.Config,
		ExternalPath:  req.ConfigFile,
		Params:        req.Params,
		DisplayFields: params.SplitFields(req.Fields),
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		Limit:         xhttp.ParseIntDefault(c.QueryParam("limit"), 0),
	})
	if err != nil {
		h.logger.Error("screening failed",
			xlogger.String("provider", req.Provider),
			xlogger.String("config", req.Config),
			xlogger.Error(err))
		return h.errorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// errorResponse maps the domain error taxonomy onto HTTP statuses. All of
// these are raised before the provider call, so a 4xx means the request
// itself was structurally wrong.
func (h *ScreenerEchoHandler) errorResponse(c echo.Context, err error) error {
	var (
		notFound  *models.ConfigNotFoundError
		malformed *models.MalformedConfigError
		override  *models.InvalidOverrideSyntaxError
		unknown   *models.UnknownParameterError
		field     *models.UnknownFieldError
		rng       *models.InvalidRangeError
		filter    *models.InvalidFilterError
		ambiguous *models.AmbiguousConfigError
	)
	switch {
	case errors.As(err, &notFound):
		return xhttp.NotFoundResponse(c, err.Error())
	case errors.As(err, &malformed),
		errors.As(err, &override),
		errors.As(err, &unknown),
		errors.As(err, &field),
		errors.As(err, &rng),
		errors.As(err, &filter),
		errors.As(err, &ambiguous):
		return xhttp.BadRequestResponse(c, err.Error())
	default:
		return xhttp.InternalServerErrorResponse(c)
	}
}
