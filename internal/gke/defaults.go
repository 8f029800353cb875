package gke

import (
	"context"
	"fmt"

	"cloud.google.com/go/container/apiv1/containerpb"

	"github.com/day0ops/gkectl/internal/cluster"
)

// ResolveDefaults fills the create-only fields the caller left unset by
// querying the provider's server-side configuration for the request's
// location. The query is lazy: nothing is fetched when both fields are
// already set. An empty server-side default is a hard error rather than
// an empty string flowing into the create call.
func ResolveDefaults(ctx context.Context, src DefaultsSource, req *cluster.Request) error {
	if req.KubernetesVersion != "" && req.ImageType != "" {
		return nil
	}

	cfg, err := src.ServerConfig(ctx, req.Location())
	if err != nil {
		return err
	}

	if req.ImageType == "" {
		imageType := cfg.GetDefaultImageType()
		if imageType == "" {
			return fmt.Errorf("provider returned no default image type for %s", req.Location())
		}
		req.ImageType = imageType
	}

	if req.KubernetesVersion == "" {
		version := stableChannelDefault(cfg)
		if version == "" {
			return fmt.Errorf("no stable release channel default version for %s", req.Location())
		}
		req.KubernetesVersion = version
	}

	return nil
}

// stableChannelDefault returns the default version of the STABLE release
// channel, or the empty string when the location has none.
func stableChannelDefault(cfg *containerpb.ServerConfig) string {
	for _, ch := range cfg.GetChannels() {
		if ch.GetChannel() == containerpb.ReleaseChannel_STABLE {
			return ch.GetDefaultVersion()
		}
	}
	return ""
}
