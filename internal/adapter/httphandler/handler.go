package httphandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/recommender/internal/core/port"
)

// Default list sizes, matching the interactive client.
const (
	defaultCount         = 5
	defaultCategoryCount = 3
	defaultExtraCount    = 2
)

// GET /v1/recommendations?age_range&gender&count (200 OK, 400 Bad request)

type RecommendationsHandler struct {
	recommender port.DemographicRecommender
}

func RegisterRecommendations(
	mux *http.ServeMux, r port.DemographicRecommender,
) {
	h := RecommendationsHandler{r}
	mux.HandleFunc("GET /v1/recommendations", h.GetRecommendations)
}

func (h RecommendationsHandler) GetRecommendations(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "RecommendationsHandler.GetRecommendations"
	log := slog.With("op", op)

	count, err := queryInt(r, "count", defaultCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	ps := h.recommender.RecommendByDemographics(
		q.Get("age_range"), q.Get("gender"), count,
	)

	writeJSON(w, log, RecommendationsResponse{Products: toProducts(ps)})
}

// GET /v1/categories (200 OK)
// GET /v1/categories/{category}/recommendations?age_range&gender&count&extra_count (200 OK, 400 Bad request)

type CategoriesHandler struct {
	recommender port.CategoryRecommender
}

func RegisterCategories(mux *http.ServeMux, r port.CategoryRecommender) {
	h := CategoriesHandler{r}
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc(
		"GET /v1/categories/{category}/recommendations",
		h.GetCategoryRecommendations,
	)
}

func (h CategoriesHandler) GetCategories(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CategoriesHandler.GetCategories"
	log := slog.With("op", op)

	cs := h.recommender.Categories()
	if cs == nil {
		cs = []string{}
	}
	writeJSON(w, log, CategoriesResponse{Categories: cs})
}

func (h CategoriesHandler) GetCategoryRecommendations(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "CategoriesHandler.GetCategoryRecommendations"
	log := slog.With("op", op)

	count, err := queryInt(r, "count", defaultCategoryCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	extraCount, err := queryInt(r, "extra_count", defaultExtraCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category := r.PathValue("category")
	q := r.URL.Query()
	inCategory, extra := h.recommender.RecommendByCategory(
		category, q.Get("age_range"), q.Get("gender"), count, extraCount,
	)

	writeJSON(w, log, CategoryRecommendationsResponse{
		Category: category,
		Products: toProducts(inCategory),
		Extra:    toProducts(extra),
	})
}

// GET /v1/search?keyword&age_range&gender&count&extra_count (200 OK, 400 Bad request)
// GET /v1/suggestions?query (200 OK)

type SearchHandler struct {
	recommender port.KeywordRecommender
	suggester   port.ProductSuggester
}

func RegisterSearch(
	mux *http.ServeMux,
	r port.KeywordRecommender,
	s port.ProductSuggester,
) {
	h := SearchHandler{r, s}
	mux.HandleFunc("GET /v1/search", h.GetSearch)
	mux.HandleFunc("GET /v1/suggestions", h.GetSuggestions)
}

func (h SearchHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.GetSearch"
	log := slog.With("op", op)

	count, err := queryInt(r, "count", defaultCategoryCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	extraCount, err := queryInt(r, "extra_count", defaultExtraCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	keyword := q.Get("keyword")
	matched, extra := h.recommender.RecommendByKeyword(
		keyword, q.Get("age_range"), q.Get("gender"), count, extraCount,
	)

	writeJSON(w, log, SearchResponse{
		Keyword:  keyword,
		Products: toProducts(matched),
		Extra:    toProducts(extra),
	})
}

func (h SearchHandler) GetSuggestions(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "SearchHandler.GetSuggestions"
	log := slog.With("op", op)

	query := r.URL.Query().Get("query")
	matches, suggestions := h.suggester.SearchWithSuggestions(query)

	writeJSON(w, log, SuggestionsResponse{
		Query:       query,
		Matches:     toProducts(matches),
		Suggestions: toProducts(suggestions),
	})
}

// GET /v1/products/top?count (200 OK, 400 Bad request)
// GET /v1/products?min_price&max_price (200 OK, 400 Bad request)

type ProductsHandler struct {
	lister port.ProductLister
}

func RegisterProducts(mux *http.ServeMux, l port.ProductLister) {
	h := ProductsHandler{l}
	mux.HandleFunc("GET /v1/products/top", h.GetTopRated)
	mux.HandleFunc("GET /v1/products", h.GetByPriceRange)
}

func (h ProductsHandler) GetTopRated(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetTopRated"
	log := slog.With("op", op)

	count, err := queryInt(r, "count", defaultCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ps := h.lister.TopRated(count)
	writeJSON(w, log, RecommendationsResponse{Products: toProducts(ps)})
}

func (h ProductsHandler) GetByPriceRange(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "ProductsHandler.GetByPriceRange"
	log := slog.With("op", op)

	minPrice, err := queryFloat(r, "min_price", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxPrice, err := queryFloat(r, "max_price", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ps := h.lister.FilterByPrice(minPrice, maxPrice)
	writeJSON(w, log, RecommendationsResponse{Products: toProducts(ps)})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid query param %q", name)
	}
	return n, nil
}

func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid query param %q", name)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
