package services

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// reserved query keys never become store filters
var reservedKeys = map[string]bool{
	"sort":   true,
	"page":   true,
	"limit":  true,
	"fields": true,
	"search": true,
}

// storeOps maps query operator tokens onto store operators. Anything not
// in this table is discarded, never passed through to the store.
var storeOps = map[string]string{
	"gt":  "$gt",
	"gte": "$gte",
	"lt":  "$lt",
	"lte": "$lte",
	"eq":  "$eq",
	"neq": "$ne",
}

var (
	opKeyRe      = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)\[([a-z]+)\]$`)
	plainFieldRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
)

// ListQuery is the parsed, bounded form of an untrusted query string.
type ListQuery struct {
	Filter     domain.Filter
	Page       int64
	Limit      int64
	Skip       int64
	Sort       []domain.SortField
	Projection []string
}

// Options converts the query into record-store list options.
func (q ListQuery) Options() domain.ListOptions {
	return domain.ListOptions{
		Skip:       q.Skip,
		Limit:      q.Limit,
		Sort:       q.Sort,
		Projection: q.Projection,
	}
}

// BuildListQuery translates raw query parameters into a safe structured
// filter plus paging, sorting, and projection. searchFields is the
// caller-declared allowlist for the free-text search clause.
func BuildListQuery(values url.Values, searchFields []string) ListQuery {
	filter := domain.Filter{}

	for key, vals := range values {
		if reservedKeys[key] || len(vals) == 0 {
			continue
		}

		if m := opKeyRe.FindStringSubmatch(key); m != nil {
			field, token := m[1], m[2]
			op, known := storeOps[token]
			if !known {
				continue
			}
			clause, _ := filter[field].(domain.Filter)
			if clause == nil {
				clause = domain.Filter{}
			}
			clause[op] = coerceValue(vals[0])
			filter[field] = clause
			continue
		}

		// plain equality; field names with store markers are rejected
		if plainFieldRe.MatchString(key) {
			filter[key] = coerceValue(vals[0])
		}
	}

	if search := values.Get("search"); search != "" && len(searchFields) > 0 {
		if or := searchClause(search, searchFields); len(or) > 0 {
			filter["$or"] = or
		}
	}

	page := positiveInt(values.Get("page"), defaultPage)
	limit := positiveInt(values.Get("limit"), defaultLimit)

	return ListQuery{
		Filter:     filter,
		Page:       page,
		Limit:      limit,
		Skip:       (page - 1) * limit,
		Sort:       parseSort(values.Get("sort")),
		Projection: parseFields(values.Get("fields")),
	}
}

// searchClause builds a case-insensitive substring match across every
// allowlisted field. Identifier fields cannot be substring-matched and
// are skipped.
func searchClause(search string, searchFields []string) []domain.Filter {
	pattern := regexp.QuoteMeta(search)
	var or []domain.Filter
	for _, field := range searchFields {
		if field == "_id" {
			continue
		}
		or = append(or, domain.Filter{
			field: domain.Filter{"$regex": pattern, "$options": "i"},
		})
	}
	return or
}

func parseSort(raw string) []domain.SortField {
	if raw == "" {
		return nil
	}
	var sort []domain.SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		key := strings.TrimPrefix(part, "-")
		if !plainFieldRe.MatchString(key) {
			continue
		}
		sort = append(sort, domain.SortField{Key: key, Desc: desc})
	}
	return sort
}

func parseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	var fields []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		// the password hash is never projectable
		if part == "password" || !plainFieldRe.MatchString(part) {
			continue
		}
		fields = append(fields, part)
	}
	return fields
}

func positiveInt(raw string, def int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// coerceValue turns a query value into the type the store compares with:
// integers and floats stay numeric so range operators work.
func coerceValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
