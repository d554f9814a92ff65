package main

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateSelfSignedCert(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CertFile: filepath.Join(dir, "server.crt"),
		KeyFile:  filepath.Join(dir, "server.key"),
		Hostname: "pilot-host",
	}

	if err := generateSelfSignedCert(cfg); err != nil {
		t.Fatalf("generateSelfSignedCert: %v", err)
	}

	certPEM, err := os.ReadFile(cfg.CertFile)
	if err != nil {
		t.Fatalf("cert not created: %v", err)
	}
	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		t.Fatal("cert file is not a CERTIFICATE PEM block")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		t.Fatalf("parse certificate: %v", err)
	}
	names := map[string]bool{}
	for _, n := range cert.DNSNames {
		names[n] = true
	}
	if !names["localhost"] || !names["pilot-host"] {
		t.Errorf("DNS names = %v, want localhost and pilot-host", cert.DNSNames)
	}

	keyPEM, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		t.Fatalf("key not created: %v", err)
	}
	if block, _ := pem.Decode(keyPEM); block == nil || block.Type != "RSA PRIVATE KEY" {
		t.Fatal("key file is not an RSA PRIVATE KEY PEM block")
	}
	info, err := os.Stat(cfg.KeyFile)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key file mode = %o, want 600", perm)
	}

	if _, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile); err != nil {
		t.Errorf("generated pair does not load: %v", err)
	}
}
