package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/entity/expense"
	"max.ks1230/spend-easy/internal/logger"
)

//go:generate minimock -i max.ks1230/spend-easy/internal/model/analytics.expensesStorage -o ./mock/expenses_storage_mock.go -n ExpensesStorageMock -p mock
type expensesStorage interface {
	QueryExpenses(ctx context.Context, from, to time.Time) ([]expense.Expense, error)
}

//go:generate minimock -i max.ks1230/spend-easy/internal/model/analytics.reportCache -o ./mock/report_cache_mock.go -n ReportCacheMock -p mock
type reportCache interface {
	GetReport(key string) ([]byte, error)
	CacheReport(key string, report []byte) error
	InvalidateReports(keys []string) error
}

type ReportRecord struct {
	CategoryTotal
	Percentage int `json:"percentage"`
}

type Report struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Granularity Granularity     `json:"granularity"`
	Records     []ReportRecord  `json:"records"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Totals returns the category totals of the report in report order.
func (r *Report) Totals() []CategoryTotal {
	res := make([]CategoryTotal, 0, len(r.Records))
	for _, rec := range r.Records {
		res = append(res, rec.CategoryTotal)
	}
	return res
}

type Generator struct {
	storage  expensesStorage
	cache    reportCache
	location *time.Location
}

type Option func(*Generator)

// WithLocation sets the zone whose calendar defines report periods and cache keys.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		g.location = loc
	}
}

// NewGenerator builds a report generator. cache may be nil.
func NewGenerator(storage expensesStorage, cache reportCache, opts ...Option) *Generator {
	g := &Generator{
		storage:  storage,
		cache:    cache,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) GenerateReport(ctx context.Context, ref time.Time, granularity Granularity) (*Report, error) {
	logger.Info("GenerateReport - start", zap.Time("ref", ref), zap.String("granularity", string(granularity)))
	defer logger.Info("GenerateReport - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	if _, err := ParseGranularity(string(granularity)); err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	from, to := PeriodRange(ref.In(g.location), granularity)
	key := cacheKey(granularity, from)
	if report, ok := g.cached(key); ok {
		return report, nil
	}

	expenses, err := g.storage.QueryExpenses(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	report := buildReport(expenses)
	report.From, report.To, report.Granularity = from, to, granularity
	g.store(key, report)
	return report, nil
}

// Invalidate drops the cached day and month reports containing date.
// The periods are resolved in the generator's zone whatever zone date carries.
func (g *Generator) Invalidate(date time.Time) error {
	if g.cache == nil {
		return nil
	}
	local := date.In(g.location)
	keys := make([]string, 0, 2)
	for _, gr := range []Granularity{Day, Month} {
		from, _ := PeriodRange(local, gr)
		keys = append(keys, cacheKey(gr, from))
	}
	return errors.Wrap(g.cache.InvalidateReports(keys), "invalidate reports")
}

func (g *Generator) cached(key string) (*Report, bool) {
	if g.cache == nil {
		return nil, false
	}
	raw, err := g.cache.GetReport(key)
	if err != nil {
		return nil, false
	}
	var report Report
	if err = json.Unmarshal(raw, &report); err != nil {
		logger.Error("cannot decode cached report", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &report, true
}

func (g *Generator) store(key string, report *Report) {
	if g.cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err == nil {
		err = g.cache.CacheReport(key, raw)
	}
	if err != nil {
		logger.Error("cannot cache report", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(granularity Granularity, from time.Time) string {
	return "report:" + string(granularity) + ":" + strconv.FormatInt(from.Unix(), 10)
}

func buildReport(exps []expense.Expense) *Report {
	totals := GroupByCategory(exps)
	grand := GrandTotal(totals)
	records := make([]ReportRecord, 0, len(totals))
	for _, t := range totals {
		records = append(records, ReportRecord{CategoryTotal: t, Percentage: PercentageOf(t, grand)})
	}
	return &Report{
		Records:     records,
		TotalAmount: grand,
	}
}

// Format renders the report as one line per category followed by the total.
func (r *Report) Format() string {
	res := make([]string, 0, len(r.Records)+2)
	for _, rec := range r.Records {
		res = append(res, fmt.Sprintf("%s: %s (%d%%)", rec.Category, rec.TotalAmount.StringFixed(2), rec.Percentage))
	}
	res = append(res, "", fmt.Sprintf("Total: %s", r.TotalAmount.StringFixed(2)))
	return strings.Join(res, "\n")
}
