package service

import (
	"fmt"
	"sync"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// ClientSet holds the service clients of one region, keyed by service.
type ClientSet struct {
	mu      sync.RWMutex
	region  string
	clients map[domain.Service]ports.ServiceClient
}

func NewClientSet(region string) *ClientSet {
	return &ClientSet{
		region:  region,
		clients: make(map[domain.Service]ports.ServiceClient),
	}
}

// ClientSetFor asks factory for the clients of region and registers them.
func ClientSetFor(factory ports.ClientFactory, region string) (*ClientSet, error) {
	clients, err := factory.Clients(region)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSessionError, fmt.Sprintf("failed to create clients for region '%s'", region))
	}
	set := NewClientSet(region)
	for _, c := range clients {
		if err := set.Register(c); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (s *ClientSet) Region() string {
	return s.region
}

func (s *ClientSet) Register(client ports.ServiceClient) error {
	if client == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil service client")
	}
	service := client.Service()
	if service == "" {
		return errors.New(errors.CodeInternal, "service client name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[service]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("service client '%s' already registered for region '%s'", service, s.region))
	}
	s.clients[service] = client
	return nil
}

func (s *ClientSet) Get(service domain.Service) (ports.ServiceClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, exists := s.clients[service]
	if !exists {
		return nil, errors.New(errors.CodeNotImplemented, fmt.Sprintf("service client '%s' not available in region '%s'", service, s.region))
	}
	return client, nil
}
