package loader

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/niksmo/recommender/internal/core/domain"
)

// Catalog source format: comma-delimited rows grouped into
// [PREFERENCES] and [PRODUCTS] sections. The row right after a
// section marker is a header and is skipped. Blank lines and
// lines starting with '#' are ignored.
const (
	preferencesMarker = "[PREFERENCES]"
	productsMarker    = "[PRODUCTS]"
	commentPrefix     = "#"
	fieldSep          = ","
)

const (
	minPreferenceFields = 4
	minProductFields    = 5
)

type section int

const (
	sectionNone section = iota
	sectionPreferences
	sectionProducts
)

type FileLoader struct {
	path string
}

func NewFileLoader(path string) FileLoader {
	return FileLoader{path}
}

// Load reads the catalog source. Malformed rows are dropped and
// counted, never failing the whole load. An unreadable source
// maps to [domain.ErrNoData] so the caller can decide between
// aborting and a fallback dataset.
func (l FileLoader) Load() (domain.Catalog, error) {
	const op = "FileLoader.Load"
	log := slog.With("op", op)

	f, err := os.Open(l.path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf(
			"%s: %q: %w", op, l.path, domain.ErrNoData,
		)
	}
	defer f.Close()

	var (
		products   []domain.Product
		prefs      []domain.Preference
		cur        section
		skipHeader bool
		dropped    int
	)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		switch line {
		case preferencesMarker:
			cur = sectionPreferences
			skipHeader = true
			continue
		case productsMarker:
			cur = sectionProducts
			skipHeader = true
			continue
		}

		if skipHeader {
			skipHeader = false
			continue
		}

		switch cur {
		case sectionPreferences:
			pref, err := parsePreference(line)
			if err != nil {
				dropped++
				log.Warn("dropped preference row", "err", err)
				continue
			}
			prefs = append(prefs, pref)
		case sectionProducts:
			p, err := parseProduct(line)
			if err != nil {
				dropped++
				log.Warn("dropped product row", "err", err)
				continue
			}
			products = append(products, p)
		default:
			dropped++
			log.Warn("dropped row outside any section")
		}
	}
	if err := sc.Err(); err != nil {
		return domain.Catalog{}, fmt.Errorf(
			"%s: %q: %w", op, l.path, domain.ErrNoData,
		)
	}

	catalog, duplicates := domain.NewCatalog(products, prefs)
	log.Info("catalog loaded",
		"products", catalog.Len(),
		"preferences", len(prefs),
		"droppedRows", dropped,
		"duplicateIDs", duplicates,
	)
	return catalog, nil
}

func parsePreference(line string) (domain.Preference, error) {
	fields := splitFields(line)
	if len(fields) < minPreferenceFields {
		return domain.Preference{}, fmt.Errorf(
			"want at least %d fields, got %d",
			minPreferenceFields, len(fields),
		)
	}

	weight, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("weight: %w", err)
	}

	return domain.Preference{
		AgeRange: fields[0],
		Gender:   fields[1],
		Category: fields[2],
		Weight:   weight,
	}, nil
}

// parseProduct expects id, name, category, price, rating and
// zero or more tags. A bad price maps to 0.0 and keeps the row;
// a bad rating drops it.
func parseProduct(line string) (domain.Product, error) {
	fields := splitFields(line)
	if len(fields) < minProductFields {
		return domain.Product{}, fmt.Errorf(
			"want at least %d fields, got %d",
			minProductFields, len(fields),
		)
	}

	if fields[0] == "" || fields[1] == "" {
		return domain.Product{}, fmt.Errorf("empty id or name")
	}

	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		price = 0.0
	}

	rating, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("rating: %w", err)
	}

	var tags []string
	for _, t := range fields[minProductFields:] {
		if t != "" {
			tags = append(tags, t)
		}
	}

	return domain.Product{
		ID:       fields[0],
		Name:     fields[1],
		Category: fields[2],
		Price:    price,
		Rating:   rating,
		Tags:     tags,
	}, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, fieldSep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
