package fetch

// RequestOptions carries transport-level knobs for a single request. The
// zero value means "no overrides".
//
// The record is applied as a shallow overlay during terminal resolution:
// any field set here wins over the value the builder computed. In
// particular, a non-nil Headers map replaces the ENTIRE merged header map
// accumulated through Header calls, not just colliding keys.
type RequestOptions struct {
	// Method overrides the builder's method when non-empty.
	Method string

	// Headers, when non-nil, replaces the merged header map wholesale.
	Headers map[string]string

	// Host overrides the Host header sent with the request.
	Host string
}

// overlay returns base with every non-zero field of o applied on top.
// This is deliberately a shallow overlay, never a deep merge.
func (base RequestOptions) overlay(o RequestOptions) RequestOptions {
	if o.Method != "" {
		base.Method = o.Method
	}
	if o.Headers != nil {
		base.Headers = o.Headers
	}
	if o.Host != "" {
		base.Host = o.Host
	}
	return base
}
