package remote

import (
	"net/url"
	"strconv"
	"strings"
)

// joinedDeviceSelect embeds the manufacturer and category of each device.
const joinedDeviceSelect = "*,manufacturer:manufacturers(*),category:device_categories(*)"

// query accumulates PostgREST query parameters.
type query struct {
	params url.Values
}

func newQuery(selectExpr string) query {
	q := query{params: url.Values{}}
	q.params.Set("select", selectExpr)

	return q
}

func (q query) eq(column, value string) query {
	q.params.Add(column, "eq."+value)

	return q
}

func (q query) eqInt(column string, value int64) query {
	return q.eq(column, strconv.FormatInt(value, 10))
}

// ilike adds a case-insensitive substring filter on column.
func (q query) ilike(column, substring string) query {
	q.params.Add(column, "ilike.*"+escapeLike(substring)+"*")

	return q
}

func (q query) order(expr string) query {
	q.params.Set("order", expr)

	return q
}

func (q query) values() url.Values {
	return q.params
}

// escapeLike neutralises the SQL LIKE metacharacters so the substring is
// matched literally. PostgREST rewrites every * to % and offers no escape,
// so a literal * becomes _ and matches exactly one character.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`, `*`, `_`)

	return r.Replace(s)
}
