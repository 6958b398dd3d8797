package hotspot

import (
	"net/url"
	"testing"

	"github.com/nuanu-wifi/backend/config"
)

func TestLoginURL(t *testing.T) {
	g := NewGateway(config.HotspotConfig{
		GatewayIP: "172.19.20.1",
		Username:  "user",
		Password:  "p&ss w0rd",
		DstURL:    "https://nuanu.com/",
	})

	raw := g.LoginURL()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	if u.Scheme != "http" || u.Host != "172.19.20.1" || u.Path != "/login" {
		t.Errorf("unexpected base: %s", raw)
	}
	q := u.Query()
	if q.Get("username") != "user" {
		t.Errorf("username = %q", q.Get("username"))
	}
	if q.Get("password") != "p&ss w0rd" {
		t.Errorf("special characters not preserved: %q", q.Get("password"))
	}
	if q.Get("dst") != "https://nuanu.com/" {
		t.Errorf("dst = %q", q.Get("dst"))
	}
}
