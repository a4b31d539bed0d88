// internal/utils/pagination.go
package utils

import (
	"strconv"
	"strings"

	"github.com/atelier-gestor/atelier/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type PaginationParams struct {
	Search string `json:"q"`
	Skip   int    `json:"skip"`
	Limit  int    `json:"limit"`
}

// GetPaginationParams reads q, skip and limit. Limit is capped at MaxLimit.
func GetPaginationParams(c *gin.Context) (PaginationParams, []ValidationError) {
	var errs []ValidationError

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		errs = append(errs, queryError("skip", "int_parsing", "Input should be a valid integer"))
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		errs = append(errs, queryError("limit", "int_parsing", "Input should be a valid integer"))
	}

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PaginationParams{
		Search: strings.TrimSpace(c.Query("q")),
		Skip:   skip,
		Limit:  limit,
	}, errs
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset(params.Skip).Limit(params.Limit)
}

// ApplySearch ORs a case-insensitive LIKE over the given columns.
func ApplySearch(db *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return db
	}

	pattern := "%" + search + "%"
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		clauses[i] = column + " ILIKE ?"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// QueryDecimal parses an optional decimal query parameter. A pt-BR comma is
// accepted as decimal separator.
func QueryDecimal(c *gin.Context, key string) (*decimal.Decimal, *ValidationError) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		verr := queryError(key, "decimal_parsing", "Input should be a valid decimal")
		return nil, &verr
	}
	return &value, nil
}

func QueryDate(c *gin.Context, key string) (*models.Date, *ValidationError) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	value, err := models.ParseDate(raw)
	if err != nil {
		verr := queryError(key, "date_from_datetime_parsing", "Input should be a valid date")
		return nil, &verr
	}
	return &value, nil
}

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, key string) (uint, *ValidationError) {
	id, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || id == 0 {
		verr := ValidationError{
			Loc:  []string{"path", key},
			Msg:  "Input should be a valid integer",
			Type: "int_parsing",
		}
		return 0, &verr
	}
	return uint(id), nil
}

func SetPaginationHeaders(c *gin.Context, total int64) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
}

func queryError(key, typ, msg string) ValidationError {
	return ValidationError{
		Loc:  []string{"query", key},
		Msg:  msg,
		Type: typ,
	}
}
