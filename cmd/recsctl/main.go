package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/niksmo/recommender/config"
	"github.com/niksmo/recommender/internal/adapter/loader"
	"github.com/niksmo/recommender/internal/core/domain"
	"github.com/niksmo/recommender/internal/core/service"
)

const (
	recommendCount = 5
	categoryCount  = 3
	extraCount     = 2
	topRatedCount  = 5

	nameWidth = 22
	tagsWidth = 12
)

func main() {
	cfg := config.Load()
	initLogger()

	catalog := loadCatalog(cfg)
	svc := service.New(catalog, cfg.Recommend.MaxSuggestions)

	cli := newCLI(os.Stdin, os.Stdout, svc)
	cli.Run()
}

func initLogger() {
	// Keep stderr quiet, the client talks through stdout.
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func loadCatalog(cfg config.Config) domain.Catalog {
	catalog, err := loader.NewFileLoader(cfg.Catalog.File).Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoData) && cfg.Catalog.FallbackSample {
			fmt.Println("Catalog source unavailable, using built-in sample data.")
			return loader.Sample()
		}
		fmt.Printf("Unable to load catalog: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

type cli struct {
	in  *bufio.Scanner
	out io.Writer
	svc service.Service

	ageRange string
	gender   string
}

func newCLI(in io.Reader, out io.Writer, svc service.Service) *cli {
	return &cli{in: bufio.NewScanner(in), out: out, svc: svc}
}

func (c *cli) Run() {
	fmt.Fprintln(c.out, "=== Product Recommendation System ===")

	c.askDemographics()

	for {
		fmt.Fprintln(c.out, "\nPlease select recommendation mode:")
		fmt.Fprintln(c.out, "1. Direct recommendation")
		fmt.Fprintln(c.out, "2. Browse categories")
		fmt.Fprintln(c.out, "3. Search products")
		fmt.Fprintln(c.out, "4. Top rated products")
		fmt.Fprintln(c.out, "5. Filter by price range")
		fmt.Fprintln(c.out, "6. Exit")

		switch c.prompt("Enter choice: ") {
		case "1":
			c.recommendDirect()
		case "2":
			c.browseCategories()
		case "3":
			c.searchProducts()
		case "4":
			c.topRated()
		case "5":
			c.filterByPrice()
		case "6":
			fmt.Fprintln(c.out, "Exiting... Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice!")
		}
	}
}

func (c *cli) askDemographics() {
	age, err := strconv.Atoi(c.prompt("\nPlease enter your age: "))
	if err != nil || age < 18 {
		fmt.Fprintf(c.out, "Invalid age, using default %s\n", domain.AgeRange18to24)
		age = 18
	}
	c.ageRange = domain.AgeRangeForAge(age)

	g := c.prompt("Please select gender (M/F): ")
	c.gender = domain.NormalizeGender(g)
	if !strings.EqualFold(g, c.gender) {
		fmt.Fprintf(c.out, "Invalid selection, using default value %s\n", c.gender)
	}
}

func (c *cli) recommendDirect() {
	ps := c.svc.RecommendByDemographics(c.ageRange, c.gender, recommendCount)
	c.printProducts(ps, "Recommendations Based on Demographics")
}

func (c *cli) browseCategories() {
	categories := c.svc.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(c.out, "No categories available.")
		return
	}

	fmt.Fprintln(c.out, "\nAvailable categories:")
	for i, cat := range categories {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, cat)
	}

	raw := c.prompt(fmt.Sprintf("Please select category (1-%d): ", len(categories)))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(categories) {
		fmt.Fprintln(c.out, "Invalid selection!")
		return
	}

	selected := categories[n-1]
	inCategory, extra := c.svc.RecommendByCategory(
		selected, c.ageRange, c.gender, categoryCount, extraCount,
	)
	c.printProducts(inCategory, selected+" Category Recommendations")
	c.printProducts(extra, "Additional Recommendations for You")
}

func (c *cli) searchProducts() {
	keyword := c.prompt("Please enter keyword: ")
	matched, extra := c.svc.RecommendByKeyword(
		keyword, c.ageRange, c.gender, categoryCount, extraCount,
	)
	if len(matched) == 0 {
		fmt.Fprintf(c.out, "No products found matching %q\n", keyword)
	} else {
		c.printProducts(matched, fmt.Sprintf("Keyword %q Search Results", keyword))
	}
	c.printProducts(extra, "Additional Recommendations for You")
}

func (c *cli) topRated() {
	ps := c.svc.TopRated(topRatedCount)
	c.printProducts(ps, "Top Rated Products")
}

func (c *cli) filterByPrice() {
	minPrice, err := strconv.ParseFloat(c.prompt("Enter minimum price: "), 64)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid price!")
		return
	}
	maxPrice, err := strconv.ParseFloat(c.prompt("Enter maximum price: "), 64)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid price!")
		return
	}

	ps := c.svc.FilterByPrice(minPrice, maxPrice)
	if len(ps) == 0 {
		fmt.Fprintln(c.out, "No products found in this price range.")
		return
	}
	c.printProducts(ps, "Products in Price Range")
}

func (c *cli) printProducts(ps []domain.Product, title string) {
	fmt.Fprintf(c.out, "\n=== %s ===\n", title)
	fmt.Fprintf(c.out, "%-6s %-24s %-14s %9s %7s  %s\n",
		"ID", "Product Name", "Category", "Price", "Rating", "Tags",
	)
	fmt.Fprintln(c.out, strings.Repeat("-", 76))

	for _, p := range ps {
		fmt.Fprintf(c.out, "%-6s %-24s %-14s %9.2f %7.1f  %s\n",
			p.ID,
			truncate(p.Name, nameWidth),
			p.Category,
			p.Price,
			p.Rating,
			truncate(strings.Join(p.Tags, ","), tagsWidth),
		)
	}
}

func (c *cli) prompt(text string) string {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}
