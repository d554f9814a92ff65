package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"time"
)

// generateSelfSignedCert writes a self-signed certificate and key to the
// configured paths. It is used for quick local TLS.
func generateSelfSignedCert(cfg Config) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("generate private key: %w", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"The Resilience Pilot"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost", cfg.Hostname},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}

	derCert, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	certOut, err := os.OpenFile(cfg.CertFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open cert file: %w", err)
	}
	defer certOut.Close()
	if err := pem.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: derCert}); err != nil {
		return fmt.Errorf("write cert PEM: %w", err)
	}

	keyOut, err := os.OpenFile(cfg.KeyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open key file: %w", err)
	}
	defer keyOut.Close()
	keyBytes := x509.MarshalPKCS1PrivateKey(privateKey)
	if err := pem.Encode(keyOut, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: keyBytes}); err != nil {
		return fmt.Errorf("write key PEM: %w", err)
	}

	return nil
}

// startServer runs the server, with TLS when enabled. A missing certificate
// is generated on the fly.
func (a *app) startServer(server *http.Server) error {
	if a.cfg.EnableTLS {
		if _, err := os.Stat(a.cfg.CertFile); os.IsNotExist(err) {
			a.log.Info().Msg("certificate not found, generating a self-signed one")
			if err := generateSelfSignedCert(a.cfg); err != nil {
				return err
			}
		}
		a.log.Info().Str("cert", a.cfg.CertFile).Msg("serving HTTPS")
		return server.ListenAndServeTLS(a.cfg.CertFile, a.cfg.KeyFile)
	}
	a.log.Info().Msg("serving HTTP with h2c")
	return server.ListenAndServe()
}
