// Package hotspot builds the gateway handoff URL that completes network
// authorization after a visitor identifies themselves.
package hotspot

import (
	"net/url"

	"github.com/nuanu-wifi/backend/config"
)

// Gateway is the hotspot controller the portal hands clients to. The
// gateway login endpoint authorizes the client's MAC when called with the
// shared hotspot credentials.
type Gateway struct {
	ip       string
	username string
	password string
	dstURL   string
}

// NewGateway creates a gateway from configuration.
func NewGateway(cfg config.HotspotConfig) Gateway {
	return Gateway{
		ip:       cfg.GatewayIP,
		username: cfg.Username,
		password: cfg.Password,
		dstURL:   cfg.DstURL,
	}
}

// LoginURL returns the gateway login URL with embedded credentials and the
// post-login destination. The gateway serves plain HTTP on its LAN address.
func (g Gateway) LoginURL() string {
	q := url.Values{}
	q.Set("username", g.username)
	q.Set("password", g.password)
	q.Set("dst", g.dstURL)
	u := url.URL{
		Scheme:   "http",
		Host:     g.ip,
		Path:     "/login",
		RawQuery: q.Encode(),
	}
	return u.String()
}
