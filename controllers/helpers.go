package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	gomysql "github.com/go-sql-driver/mysql"
)

// parseIDParam reads the :id route segment as a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id64 == 0 {
		return 0, false
	}
	return uint(id64), true
}

// pageParams reads ?pageNumber=&pageSize= with the defaults the API has
// always used (page 1, 10 items).
func pageParams(c *gin.Context) (offset, limit int) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil || pageNumber < 1 {
		pageNumber = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	return (pageNumber - 1) * pageSize, pageSize
}

// parseDate accepts the wire formats the frontend sends: plain dates or
// full RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", value)
}

// bindingErrorMessage turns a ShouldBindJSON failure into a message that
// names the offending fields instead of dumping the validator internals.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return "invalid request payload: " + strings.Join(fields, ", ")
	}
	return "invalid request payload: " + err.Error()
}

// isDuplicateKeyErr detects unique-index violations from MySQL (1062) or
// from the SQLite driver used in tests.
func isDuplicateKeyErr(err error) bool {
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyErr detects referential-integrity violations (MySQL 1451 on
// delete, 1452 on insert/update) or the SQLite equivalent.
func isForeignKeyErr(err error) bool {
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1451 || myErr.Number == 1452
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
