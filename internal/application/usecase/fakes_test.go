package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

type fakeAWS struct {
	accountID    string
	accountErr   error
	param        string
	paramErr     error
	paramCalls   int
	resp         entity.BillingResponse
	billingErr   error
	lastQuery    entity.BillingQuery
	billingCalls int
}

func (f *fakeAWS) GetAccountID(ctx context.Context) (string, error) {
	return f.accountID, f.accountErr
}

func (f *fakeAWS) GetRegion() string { return "us-east-1" }

func (f *fakeAWS) GetCostAndUsage(ctx context.Context, q entity.BillingQuery) (entity.BillingResponse, error) {
	f.billingCalls++
	f.lastQuery = q
	return f.resp, f.billingErr
}

func (f *fakeAWS) GetParameter(ctx context.Context, name string, decrypt bool) (string, error) {
	f.paramCalls++
	return f.param, f.paramErr
}

// fakeStore keeps indexed documents in memory and records the call order.
type fakeStore struct {
	calls   []string
	docs    map[string]map[string]interface{}
	failOn  string
	failErr error
	mutate  func(map[string]interface{})
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]map[string]interface{}{}}
}

func (s *fakeStore) step(name string) error {
	s.calls = append(s.calls, name)
	if s.failOn == name {
		if s.failErr != nil {
			return s.failErr
		}
		return fmt.Errorf("%s: connection refused", name)
	}
	return nil
}

func (s *fakeStore) IndexDocument(ctx context.Context, index, id string, doc interface{}) (string, error) {
	if err := s.step("index"); err != nil {
		return "", err
	}
	report := doc.(entity.CostReport)
	key := index + "/" + id
	result := "created"
	if _, ok := s.docs[key]; ok {
		result = "updated"
	}
	s.docs[key] = map[string]interface{}{
		"AccountID": report.AccountID,
		"title":     report.Title,
		"TotalCost": report.TotalCost,
		"timestamp": report.Timestamp.Format(time.RFC3339),
	}
	return result, nil
}

func (s *fakeStore) GetDocument(ctx context.Context, index, id string) (map[string]interface{}, error) {
	if err := s.step("fetch"); err != nil {
		return nil, err
	}
	doc, ok := s.docs[index+"/"+id]
	if !ok {
		return nil, types.ErrDocumentNotFound
	}
	if s.mutate != nil {
		s.mutate(doc)
	}
	return doc, nil
}

func (s *fakeStore) Refresh(ctx context.Context, index string) error {
	return s.step("refresh")
}

func (s *fakeStore) SearchAll(ctx context.Context, index string) (int, []entity.SearchHit, error) {
	if err := s.step("search"); err != nil {
		return 0, nil, err
	}
	var hits []entity.SearchHit
	for key, doc := range s.docs {
		if strings.HasPrefix(key, index+"/") {
			hits = append(hits, entity.SearchHit{ID: strings.TrimPrefix(key, index+"/"), Source: doc})
		}
	}
	return len(hits), hits, nil
}

type fakeArchive struct {
	puts int
	err  error
}

func (a *fakeArchive) PutLatest(ctx context.Context, report entity.CostReport) (string, error) {
	a.puts++
	if a.err != nil {
		return "", a.err
	}
	return "s3://reports/cost-report/latest.json", nil
}

type recordingConsole struct {
	lines  []string
	errors []string
}

func (c *recordingConsole) Print(a ...interface{}) { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *recordingConsole) Printf(format string, a ...interface{}) {
	c.lines = append(c.lines, strings.TrimSuffix(fmt.Sprintf(format, a...), "\n"))
}
func (c *recordingConsole) Println(a ...interface{})                   { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *recordingConsole) LogInfo(format string, a ...interface{})    {}
func (c *recordingConsole) LogWarning(format string, a ...interface{}) {}
func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {}
func (c *recordingConsole) Status(message string) types.StatusHandle  { return noopStatus{} }
func (c *recordingConsole) CreateTable() types.TableInterface          { return &recordingTable{} }

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type recordingTable struct {
	rows [][]interface{}
}

func (t *recordingTable) AddColumn(name string, options ...interface{}) {}
func (t *recordingTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *recordingTable) Render() string                                { return fmt.Sprint(t.rows) }

func storeFactory(store repository.SearchRepository, hosts *[]string) SearchRepositoryFactory {
	return func(ctx context.Context, host string) (repository.SearchRepository, error) {
		if hosts != nil {
			*hosts = append(*hosts, host)
		}
		return store, nil
	}
}
