package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strings"

	"robles/shared/cache"
	"robles/shared/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NewID builds a synthetic identifier as "{prefix}-{hex}", where hex is the
// first hexLen characters of a random uuid.
func NewID(prefix string, hexLen int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if hexLen > 0 && hexLen < len(hex) {
		hex = hex[:hexLen]
	}

	return prefix + "-" + hex
}

// SplitList splits a comma-joined list field, trimming whitespace and
// dropping empty segments. Order is preserved.
func SplitList(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}

	items := []string{}
	for _, part := range strings.Split(joined, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, ",")
}

// RemoveURL removes target from urls, treating a single trailing slash as
// insignificant. The second return reports whether anything was removed.
func RemoveURL(urls []string, target string) ([]string, bool) {
	trimmed := strings.TrimRight(target, "/")

	remaining := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == target || strings.TrimRight(u, "/") == trimmed {
			continue
		}

		remaining = append(remaining, u)
	}

	return remaining, len(remaining) != len(urls)
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
}

// TransformFields converts a partial-update request into a map of columns to
// write. Only fields carrying a db tag are considered; nil pointers mean the
// field was not provided and are skipped.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		field := val.Field(index)

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

// BuildCacheKey joins key parts with ":".
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from pagination and filters so
// distinct listings never collide.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("l%d", params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		fmt.Sprintf("%v", args),
	)
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
