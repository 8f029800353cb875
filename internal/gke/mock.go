package gke

import (
	"context"

	"cloud.google.com/go/container/apiv1/containerpb"
)

// CreateCall records one CreateCluster invocation on the mock.
type CreateCall struct {
	Location string
	Cluster  *containerpb.Cluster
}

// DeleteCall records one DeleteCluster invocation on the mock.
type DeleteCall struct {
	Location string
	Name     string
}

// MockClient is a mock implementation of Client. Every invocation is
// recorded; behavior can be overridden per method via the Func fields.
// With no overrides, mutations succeed and ServerConfig returns a canned
// configuration with a stable channel default.
type MockClient struct {
	CreateClusterFunc func(ctx context.Context, location string, cluster *containerpb.Cluster) error
	DeleteClusterFunc func(ctx context.Context, location, name string) error
	ServerConfigFunc  func(ctx context.Context, location string) (*containerpb.ServerConfig, error)
	EnableServiceFunc func(ctx context.Context, service string) error

	CreateCalls       []CreateCall
	DeleteCalls       []DeleteCall
	ServerConfigCalls []string
	EnabledServices   []string
}

// Canned defaults returned by the mock's ServerConfig when no override is set.
const (
	MockDefaultImageType     = "COS_CONTAINERD"
	MockDefaultStableVersion = "1.32.4-gke.1106006"
)

func (m *MockClient) CreateCluster(ctx context.Context, location string, cluster *containerpb.Cluster) error {
	m.CreateCalls = append(m.CreateCalls, CreateCall{Location: location, Cluster: cluster})
	if m.CreateClusterFunc != nil {
		return m.CreateClusterFunc(ctx, location, cluster)
	}
	return nil
}

func (m *MockClient) DeleteCluster(ctx context.Context, location, name string) error {
	m.DeleteCalls = append(m.DeleteCalls, DeleteCall{Location: location, Name: name})
	if m.DeleteClusterFunc != nil {
		return m.DeleteClusterFunc(ctx, location, name)
	}
	return nil
}

func (m *MockClient) ServerConfig(ctx context.Context, location string) (*containerpb.ServerConfig, error) {
	m.ServerConfigCalls = append(m.ServerConfigCalls, location)
	if m.ServerConfigFunc != nil {
		return m.ServerConfigFunc(ctx, location)
	}
	return &containerpb.ServerConfig{
		DefaultImageType: MockDefaultImageType,
		Channels: []*containerpb.ServerConfig_ReleaseChannelConfig{
			{
				Channel:        containerpb.ReleaseChannel_REGULAR,
				DefaultVersion: "1.33.1-gke.100",
			},
			{
				Channel:        containerpb.ReleaseChannel_STABLE,
				DefaultVersion: MockDefaultStableVersion,
			},
		},
	}, nil
}

func (m *MockClient) EnableService(ctx context.Context, service string) error {
	m.EnabledServices = append(m.EnabledServices, service)
	if m.EnableServiceFunc != nil {
		return m.EnableServiceFunc(ctx, service)
	}
	return nil
}

func (m *MockClient) Close() error { return nil }
