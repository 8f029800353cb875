package handlers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/day0ops/gkectl/internal/config"
)

// fakeHelm records helm operations.
type fakeHelm struct {
	namespace string

	installs   []fakeInstall
	uninstalls []string
	err        error
}

type fakeInstall struct {
	release string
	repoURL string
	chart   string
	version string
}

func (f *fakeHelm) InstallOrUpgrade(_ context.Context, releaseName, repoURL, chartName, version string, _ map[string]interface{}) error {
	f.installs = append(f.installs, fakeInstall{releaseName, repoURL, chartName, version})
	return f.err
}

func (f *fakeHelm) Uninstall(releaseName string) error {
	f.uninstalls = append(f.uninstalls, releaseName)
	return f.err
}

// fakeApplier records applied manifests.
type fakeApplier struct {
	manifests [][]byte
	err       error
}

func (f *fakeApplier) Apply(_ context.Context, manifest []byte) error {
	f.manifests = append(f.manifests, manifest)
	return f.err
}

// fakeWaiter records readiness waits as namespace/name pairs.
type fakeWaiter struct {
	waits []string
	err   error
}

func (f *fakeWaiter) WaitForDeployment(_ context.Context, namespace, name string, _ time.Duration) error {
	f.waits = append(f.waits, namespace+"/"+name)
	return f.err
}

func withFakeWaiter(t *testing.T) *fakeWaiter {
	t.Helper()
	fake := &fakeWaiter{}

	orig := newDeploymentWaiter
	newDeploymentWaiter = func([]byte) (deploymentWaiter, error) {
		return fake, nil
	}
	t.Cleanup(func() { newDeploymentWaiter = orig })

	return fake
}

func withFakeHelm(t *testing.T) *fakeHelm {
	t.Helper()
	fake := &fakeHelm{}

	orig := newHelmClient
	newHelmClient = func(_ []byte, namespace string) (helmInstaller, error) {
		fake.namespace = namespace
		return fake, nil
	}
	t.Cleanup(func() { newHelmClient = orig })

	return fake
}

func withFakeFiles(t *testing.T, files map[string][]byte) {
	t.Helper()
	orig := readFile
	readFile = func(path string) ([]byte, error) {
		if data, ok := files[path]; ok {
			return data, nil
		}
		return nil, os.ErrNotExist
	}
	t.Cleanup(func() { readFile = orig })
}

func TestGatewayInstall(t *testing.T) {
	fake := withFakeHelm(t)
	waiter := withFakeWaiter(t)
	withConfig(t, testConfig(""), nil)
	withFakeFiles(t, map[string][]byte{"kubeconfig": []byte("kc")})

	opts := GatewayInstallOptions{KubeconfigPath: "kubeconfig", Version: "1.14.2"}
	require.NoError(t, GatewayInstall(context.Background(), "", opts))

	assert.Equal(t, config.DefaultGatewayNamespace, fake.namespace)
	require.Len(t, fake.installs, 1)
	assert.Equal(t, fakeInstall{
		release: config.DefaultGatewayRelease,
		repoURL: config.DefaultGatewayRepoURL,
		chart:   config.DefaultGatewayChart,
		version: "1.14.2",
	}, fake.installs[0])

	assert.Equal(t, []string{"gloo-system/gloo", "gloo-system/gateway-proxy"}, waiter.waits,
		"install must wait for the gateway deployments")
}

func TestGatewayInstall_NamespaceOverride(t *testing.T) {
	fake := withFakeHelm(t)
	waiter := withFakeWaiter(t)
	withConfig(t, testConfig(""), nil)
	withFakeFiles(t, map[string][]byte{"kubeconfig": []byte("kc")})

	opts := GatewayInstallOptions{KubeconfigPath: "kubeconfig", Namespace: "edge"}
	require.NoError(t, GatewayInstall(context.Background(), "", opts))

	assert.Equal(t, "edge", fake.namespace)
	assert.Equal(t, []string{"edge/gloo", "edge/gateway-proxy"}, waiter.waits)
}

func TestGatewayInstall_MissingKubeconfig(t *testing.T) {
	fake := withFakeHelm(t)
	withFakeWaiter(t)
	withConfig(t, testConfig(""), nil)
	withFakeFiles(t, nil)

	err := GatewayInstall(context.Background(), "", GatewayInstallOptions{KubeconfigPath: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read kubeconfig")
	assert.Empty(t, fake.installs)
}

func TestGatewayInstall_HelmFailurePropagates(t *testing.T) {
	fake := withFakeHelm(t)
	fake.err = assert.AnError
	waiter := withFakeWaiter(t)
	withConfig(t, testConfig(""), nil)
	withFakeFiles(t, map[string][]byte{"kubeconfig": []byte("kc")})

	err := GatewayInstall(context.Background(), "", GatewayInstallOptions{KubeconfigPath: "kubeconfig"})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, waiter.waits, "a failed install must not wait for readiness")
}

func TestGatewayInstall_WaitFailurePropagates(t *testing.T) {
	withFakeHelm(t)
	waiter := withFakeWaiter(t)
	waiter.err = assert.AnError
	withConfig(t, testConfig(""), nil)
	withFakeFiles(t, map[string][]byte{"kubeconfig": []byte("kc")})

	err := GatewayInstall(context.Background(), "", GatewayInstallOptions{KubeconfigPath: "kubeconfig"})
	require.ErrorIs(t, err, assert.AnError)
}

func TestGatewayUninstall(t *testing.T) {
	fake := withFakeHelm(t)
	withConfig(t, testConfig(""), nil)
	withFakeFiles(t, map[string][]byte{"kubeconfig": []byte("kc")})

	opts := GatewayUninstallOptions{KubeconfigPath: "kubeconfig"}
	require.NoError(t, GatewayUninstall(context.Background(), "", opts))

	assert.Equal(t, []string{config.DefaultGatewayRelease}, fake.uninstalls)
}

func TestGatewayApply(t *testing.T) {
	fake := &fakeApplier{}
	orig := newK8sClient
	newK8sClient = func([]byte) (manifestApplier, error) { return fake, nil }
	t.Cleanup(func() { newK8sClient = orig })

	manifest := []byte("apiVersion: v1\nkind: Namespace\nmetadata:\n  name: apps\n")
	withFakeFiles(t, map[string][]byte{
		"kubeconfig":     []byte("kc"),
		"manifests.yaml": manifest,
	})

	require.NoError(t, GatewayApply(context.Background(), "kubeconfig", "manifests.yaml"))

	require.Len(t, fake.manifests, 1)
	assert.Equal(t, manifest, fake.manifests[0])
}

func TestGatewayApply_MissingManifest(t *testing.T) {
	fake := &fakeApplier{}
	orig := newK8sClient
	newK8sClient = func([]byte) (manifestApplier, error) { return fake, nil }
	t.Cleanup(func() { newK8sClient = orig })

	withFakeFiles(t, map[string][]byte{"kubeconfig": []byte("kc")})

	err := GatewayApply(context.Background(), "kubeconfig", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
	assert.Empty(t, fake.manifests)
}
