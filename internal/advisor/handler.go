package advisor

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"greenplot/internal/catalog"
)

type Handler struct {
	Engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assess", h.meta)    // GET /assess
	rg.POST("/assess", h.assess) // POST /assess
	rg.POST("/compare", h.compare)
}

// knownSoils mirrors the soil options the plot form offers. The catalog may
// know more soils per region; these are the ones callers are asked about.
var knownSoils = []string{"clayey", "sandy", "loamy"}

func (h *Handler) meta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions": h.Engine.Catalog.RegionNames(),
		"soils":   knownSoils,
	})
}

// plotForm is the common submission shape for assess and compare. Region,
// soil and area travel verbatim; nothing here rejects a request.
type plotForm struct {
	Region     string
	Soil       string
	WantsFruit bool
	AreaRaw    string
}

func bindPlotForm(c *gin.Context) plotForm {
	return plotForm{
		Region:     c.PostForm("region"),
		Soil:       c.PostForm("soil"),
		WantsFruit: parseCheckbox(c.PostForm("wants_fruit")),
		AreaRaw:    c.PostForm("area_sqm"),
	}
}

func (h *Handler) assess(c *gin.Context) {
	form := bindPlotForm(c)

	rec := h.Engine.Recommend(form.Region, form.Soil, form.WantsFruit)
	count := EstimateIntensive(ParseArea(form.AreaRaw))
	impact := h.Engine.Rates.Impact(count, rec.CostPerTree)

	resp := gin.H{
		"region":         form.Region,
		"soil":           form.Soil,
		"area_sqm":       form.AreaRaw,
		"recommendation": rec,
		"tree_count":     count,
		"impact":         impact,
	}
	if s := h.suggestions(form.Region); len(s) > 0 {
		resp["did_you_mean"] = s
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) compare(c *gin.Context) {
	form := bindPlotForm(c)

	cmp := h.Engine.Compare(form.Region, form.Soil, form.WantsFruit, ParseArea(form.AreaRaw))

	resp := gin.H{
		"region":     form.Region,
		"soil":       form.Soil,
		"area_sqm":   form.AreaRaw,
		"comparison": cmp,
	}
	if s := h.suggestions(form.Region); len(s) > 0 {
		resp["did_you_mean"] = s
	}
	c.JSON(http.StatusOK, resp)
}

// suggestions offers close region names when the exact lookup will miss.
// Advisory only: the response body still carries the fallback
// recommendation either way.
func (h *Handler) suggestions(region string) []string {
	if h.Engine.Catalog.HasRegion(region) {
		return nil
	}
	return catalog.SuggestRegions(h.Engine.Catalog, region, 3)
}

// parseCheckbox accepts the HTML checkbox value plus the spellings API
// clients tend to send.
func parseCheckbox(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
