package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// pathID parses the :id route parameter.
func pathID(c *fiber.Ctx) (int64, map[string]string) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, map[string]string{"id": "must be an integer"}
	}
	return id, nil
}

// queryReader collects typed query values and the problems found while
// parsing them, so one response can report every bad parameter.
type queryReader struct {
	c       *fiber.Ctx
	details map[string]string
}

func newQueryReader(c *fiber.Ctx) *queryReader {
	return &queryReader{c: c}
}

func (q *queryReader) fail(key, msg string) {
	if q.details == nil {
		q.details = make(map[string]string)
	}
	q.details[key] = msg
}

func (q *queryReader) raw(key string) (string, bool) {
	v := q.c.Query(key)
	return v, v != ""
}

func (q *queryReader) integer(key string, def int) int {
	v, ok := q.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(key, "must be an integer")
		return def
	}
	return n
}

// id returns 0 when key is absent or malformed.
func (q *queryReader) id(key string) int64 {
	v, ok := q.raw(key)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.fail(key, "must be an integer")
		return 0
	}
	return n
}

func (q *queryReader) float(key string) (float64, bool) {
	v, ok := q.raw(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.fail(key, "must be a number")
		return 0, false
	}
	return f, true
}

// date returns the zero Date when key is absent or malformed.
func (q *queryReader) date(key string) model.Date {
	v, ok := q.raw(key)
	if !ok {
		return model.Date{}
	}
	d, err := model.ParseDate(v)
	if err != nil {
		q.fail(key, msgDate)
		return model.Date{}
	}
	return d
}

func (q *queryReader) page() repository.Page {
	p := repository.Page{
		Skip:  q.integer("skip", 0),
		Limit: q.integer("limit", repository.DefaultLimit),
	}
	if p.Skip < 0 {
		q.fail("skip", "must be greater than or equal to 0")
	}
	if p.Limit < 0 {
		q.fail("limit", "must be greater than or equal to 0")
	}
	return p
}

// dateRange reads start_date and end_date; ok is false unless both are set.
func (q *queryReader) dateRange() (start, end model.Date, ok bool) {
	start = q.date("start_date")
	end = q.date("end_date")
	return start, end, !start.IsZero() && !end.IsZero()
}
