package casref

import (
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/casref/types"
)

// Required reference attributes.
const (
	// AttrHosts is the comma-separated contact point list.
	AttrHosts = "hosts"
	// AttrClusterName keys the shared cluster handle.
	AttrClusterName = "clusterName"
	// AttrKeyspace names the keyspace the resolved handle operates on.
	AttrKeyspace = "keyspace"
)

// Optional reference attributes. Each maps onto one HostConfig field;
// absent attributes leave the driver default untouched.
const (
	AttrMaxActive                    = "maxActive"
	AttrMaxWaitTimeWhenExhausted     = "maxWaitTimeWhenExhausted"
	AttrLifo                         = "lifo"
	AttrUseFramedTransport           = "useFramedTransport"
	AttrMaxFrameSize                 = "maxFrameSize"
	AttrUseSocketKeepalive           = "useSocketKeepalive"
	AttrMaxConnectTimeMillis         = "maxConnectTimeMillis"
	AttrMaxLastSuccessTimeMillis     = "maxLastSuccessTimeMillis"
	AttrSocketTimeoutMillis          = "socketTimeoutMillis"
	AttrAutoDiscoverHosts            = "autoDiscoverHosts"
	AttrAutoDiscoveryDelaySeconds    = "autoDiscoveryDelayInSeconds"
	AttrRunAutoDiscoveryAtStartup    = "runAutoDiscoveryAtStartup"
	AttrRetryDownedHostDelaySeconds  = "retryDownedHostDelayInSeconds"
	AttrRetryDownedHostsQueueSize    = "retryDownedHostsQueueSize"
	AttrUseHostTimeoutTracker        = "useHostTimeoutTracker"
	AttrHostTimeoutCounter           = "hostTimeoutCounter"
	AttrHostTimeoutSuspensionSeconds = "hostTimeoutSuspensionDurationInSeconds"
	AttrHostTimeoutUnsuspendMillis   = "hostTimeoutUnsuspendCheckDelayMillis"
	AttrHostTimeoutWindowMillis      = "hostTimeoutWindowMillis"
)

// ParseReference coerces a reference's attributes into a typed cluster
// configuration and the target keyspace name.
//
// Coercion rules:
//   - booleans accept exactly "true" or "false" (case-sensitive)
//   - integer and millisecond attributes must parse as base-10 numbers
//   - the three required attributes must be present with non-empty content
//
// Gating rules:
//   - discovery sub-options are parsed only when autoDiscoverHosts=true
//   - host-timeout sub-options are parsed only when useHostTimeoutTracker=true
//   - a retryDownedHostDelayInSeconds below 1 disables retry; the queue
//     size is ignored in that case
//
// Parameters:
//   - ref: The reference to parse
//
// Returns:
//   - *types.HostConfig: The derived configuration
//   - string: The keyspace name
//   - error: *types.ConfigError on any missing or malformed attribute
func ParseReference(ref *Reference) (*types.HostConfig, string, error) {
	hosts, err := requiredAttr(ref, AttrHosts)
	if err != nil {
		return nil, "", err
	}
	clusterName, err := requiredAttr(ref, AttrClusterName)
	if err != nil {
		return nil, "", err
	}
	keyspace, err := requiredAttr(ref, AttrKeyspace)
	if err != nil {
		return nil, "", err
	}

	p := &attrParser{ref: ref}
	cfg := &types.HostConfig{
		Hosts:       splitHosts(hosts),
		ClusterName: clusterName,
	}

	cfg.MaxActive = p.intAttr(AttrMaxActive)
	cfg.MaxWaitWhenExhausted = p.millisAttr(AttrMaxWaitTimeWhenExhausted)
	cfg.Lifo = p.boolAttr(AttrLifo)
	cfg.UseFramedTransport = p.boolAttr(AttrUseFramedTransport)
	cfg.MaxFrameSize = p.intAttr(AttrMaxFrameSize)
	cfg.UseSocketKeepalive = p.boolAttr(AttrUseSocketKeepalive)
	cfg.MaxConnectTime = p.millisAttr(AttrMaxConnectTimeMillis)
	cfg.MaxLastSuccessTime = p.millisAttr(AttrMaxLastSuccessTimeMillis)
	cfg.SocketTimeout = p.millisAttr(AttrSocketTimeoutMillis)

	cfg.AutoDiscoverHosts = p.boolAttr(AttrAutoDiscoverHosts)
	if isTrue(cfg.AutoDiscoverHosts) {
		cfg.RunAutoDiscoveryAtStartup = p.boolAttr(AttrRunAutoDiscoveryAtStartup)
		cfg.AutoDiscoveryDelay = p.secondsAttr(AttrAutoDiscoveryDelaySeconds)
	}

	cfg.UseHostTimeoutTracker = p.boolAttr(AttrUseHostTimeoutTracker)
	if isTrue(cfg.UseHostTimeoutTracker) {
		cfg.HostTimeoutCounter = p.intAttr(AttrHostTimeoutCounter)
		cfg.HostTimeoutSuspensionDuration = p.secondsAttr(AttrHostTimeoutSuspensionSeconds)
		cfg.HostTimeoutUnsuspendCheckDelay = p.millisAttr(AttrHostTimeoutUnsuspendMillis)
		cfg.HostTimeoutWindow = p.millisAttr(AttrHostTimeoutWindowMillis)
	}

	if delay := p.intAttr(AttrRetryDownedHostDelaySeconds); delay != nil {
		if *delay < 1 {
			// Sub-second delays disable retry outright, never clamp.
			retry := false
			cfg.RetryDownedHosts = &retry
		} else {
			retry := true
			d := time.Duration(*delay) * time.Second
			cfg.RetryDownedHosts = &retry
			cfg.RetryDownedHostsDelay = &d
			cfg.RetryDownedHostsQueueSize = p.intAttr(AttrRetryDownedHostsQueueSize)
		}
	}

	if p.err != nil {
		return nil, "", p.err
	}

	return cfg, keyspace, nil
}

// requiredAttr fetches an attribute that must carry non-empty content.
func requiredAttr(ref *Reference, attr string) (string, error) {
	content, ok := ref.Get(attr)
	if !ok {
		return "", &types.ConfigError{
			Attr:   attr,
			Reason: "required attribute missing",
			Cause:  types.ErrMissingAttribute,
		}
	}
	return content, nil
}

// splitHosts splits a comma-separated contact point list, trimming
// whitespace and dropping empty entries.
func splitHosts(raw string) []string {
	parts := strings.Split(raw, ",")
	hosts := make([]string, 0, len(parts))
	for _, part := range parts {
		if host := strings.TrimSpace(part); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

func isTrue(v *bool) bool {
	return v != nil && *v
}

// attrParser coerces optional attributes, remembering the first failure.
//
// Accessors return nil both for absent attributes and after a previous
// failure, so call sites stay flat; the caller checks err once at the end.
type attrParser struct {
	ref *Reference
	err error
}

func (p *attrParser) boolAttr(attr string) *bool {
	content, ok := p.get(attr)
	if !ok {
		return nil
	}

	// Strict tokens: mixed-case or numeric booleans are configuration
	// mistakes, not alternate spellings.
	switch content {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		p.err = &types.ConfigError{
			Attr:   attr,
			Value:  content,
			Reason: `expected "true" or "false"`,
		}
		return nil
	}
}

func (p *attrParser) intAttr(attr string) *int {
	content, ok := p.get(attr)
	if !ok {
		return nil
	}

	v, err := strconv.Atoi(content)
	if err != nil {
		p.err = &types.ConfigError{
			Attr:   attr,
			Value:  content,
			Reason: "expected an integer",
			Cause:  err,
		}
		return nil
	}
	return &v
}

func (p *attrParser) secondsAttr(attr string) *time.Duration {
	v := p.intAttr(attr)
	if v == nil {
		return nil
	}
	d := time.Duration(*v) * time.Second
	return &d
}

func (p *attrParser) millisAttr(attr string) *time.Duration {
	content, ok := p.get(attr)
	if !ok {
		return nil
	}

	v, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		p.err = &types.ConfigError{
			Attr:   attr,
			Value:  content,
			Reason: "expected an integer number of milliseconds",
			Cause:  err,
		}
		return nil
	}
	d := time.Duration(v) * time.Millisecond
	return &d
}

func (p *attrParser) get(attr string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	return p.ref.Get(attr)
}
