package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
)

type invocation struct {
	Service domain.Service
	Op      domain.Operation
	Args    domain.Arguments
	Token   string
}

func ok(doc domain.Document) *domain.Page {
	return &domain.Page{Document: doc, Envelope: domain.Envelope{StatusCode: 200, RequestID: "req"}}
}

func okWithToken(doc domain.Document, token string) *domain.Page {
	p := ok(doc)
	p.NextToken = token
	return p
}

// fakeClient answers every operation with respond, or an empty 200 page.
type fakeClient struct {
	service domain.Service
	respond func(inv invocation) (*domain.Page, error)

	mu    sync.Mutex
	calls []invocation
}

func (f *fakeClient) Service() domain.Service { return f.service }

func (f *fakeClient) Invoke(_ context.Context, op domain.Operation, args domain.Arguments, token string) (*domain.Page, error) {
	inv := invocation{Service: f.service, Op: op, Args: args, Token: token}
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	f.mu.Unlock()
	if f.respond == nil {
		return ok(domain.Document{}), nil
	}
	return f.respond(inv)
}

func (f *fakeClient) ops() []domain.Operation {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Operation, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Op)
	}
	return out
}

// fakeFactory hands out the same client set for every region it knows.
type fakeFactory struct {
	clients map[string][]ports.ServiceClient
}

func (f *fakeFactory) Clients(region string) ([]ports.ServiceClient, error) {
	c, ok := f.clients[region]
	if !ok {
		return nil, fmt.Errorf("no clients for %s", region)
	}
	return c, nil
}

type fetchCall struct {
	Service domain.Service
	Op      domain.Operation
	Args    domain.Arguments
}

// fakeFetcher stands in for an Executor.
type fakeFetcher struct {
	respond func(c fetchCall) (domain.Document, error)

	mu    sync.Mutex
	calls []fetchCall
}

func (f *fakeFetcher) Execute(_ context.Context, service domain.Service, op domain.Operation, args domain.Arguments) (domain.Document, error) {
	c := fetchCall{Service: service, Op: op, Args: args}
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
	if f.respond == nil {
		return domain.Document{}, nil
	}
	return f.respond(c)
}

func (f *fakeFetcher) ops() []domain.Operation {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Operation, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Op)
	}
	return out
}

type memoryPersister struct {
	mu    sync.Mutex
	files map[string]domain.Document
	fail  map[domain.Category]error
}

func newMemoryPersister() *memoryPersister {
	return &memoryPersister{files: map[string]domain.Document{}, fail: map[domain.Category]error{}}
}

func (m *memoryPersister) Persist(_ context.Context, region string, category domain.Category, doc domain.Document) error {
	if err := m.fail[category]; err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[region+"/"+category.String()] = doc
	return nil
}

type captureReporter struct {
	runs []domain.RunReport
}

func (c *captureReporter) Report(_ context.Context, run domain.RunReport) error {
	c.runs = append(c.runs, run)
	return nil
}
