package helpers

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// ESOptions configures the Elasticsearch client. Zero timeouts use 5s.
type ESOptions struct {
	Addrs       []string
	Username    string
	Password    string
	DialTimeout time.Duration
	HeaderWait  time.Duration
}

// NewESClient creates an Elasticsearch client with short timeouts and optional basic auth.
func NewESClient(opts ESOptions) (*elasticsearch.Client, error) {
	dial := opts.DialTimeout
	if dial <= 0 {
		dial = 5 * time.Second
	}
	wait := opts.HeaderWait
	if wait <= 0 {
		wait = 5 * time.Second
	}
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: opts.Addrs,
		Username:  opts.Username,
		Password:  opts.Password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: wait,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: dial}).DialContext,
		},
	})
}
