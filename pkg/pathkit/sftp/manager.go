package sftpmanager

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

var (
	globalManager *Manager
	once          sync.Once
)

// Default configuration values
const (
	DefaultPort              = 22
	DefaultMaxIdleTime       = 5 * time.Minute
	DefaultConnectTimeout    = 10 * time.Second
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = 1 * time.Second
	DefaultKeepAliveInterval = 30 * time.Second
	DefaultMaxConnections    = 10
	DefaultCleanupInterval   = 2 * time.Minute
)

var ErrPoolExhausted = errors.New("connection pool limit reached")

// ConnectionDetails holds the information needed to establish an SFTP connection
type ConnectionDetails struct {
	Hostname string
	Port     int
	Username string
	Password string
	// KeyFile is a private key used instead of, or in addition to, the password
	KeyFile       string
	KeyPassphrase string
	// KnownHostsFile enables host key verification; without it any key is accepted
	KnownHostsFile    string
	ConnectTimeout    time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	KeepAliveInterval time.Duration
}

// String returns a unique string representation of the connection details
func (cd ConnectionDetails) String() string {
	return fmt.Sprintf("%s@%s:%d", cd.Username, cd.Hostname, cd.Port)
}

// applyDefaults sets default values for unspecified fields
func (cd *ConnectionDetails) applyDefaults() {
	if cd.Port == 0 {
		cd.Port = DefaultPort
	}
	if cd.ConnectTimeout == 0 {
		cd.ConnectTimeout = DefaultConnectTimeout
	}
	if cd.MaxRetries == 0 {
		cd.MaxRetries = DefaultMaxRetries
	}
	if cd.RetryDelay == 0 {
		cd.RetryDelay = DefaultRetryDelay
	}
	if cd.KeepAliveInterval == 0 {
		cd.KeepAliveInterval = DefaultKeepAliveInterval
	}
}

// authMethods builds the ssh auth chain: key first when configured, then password.
func (cd ConnectionDetails) authMethods() ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if cd.KeyFile != "" {
		pem, err := os.ReadFile(cd.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}

		var signer ssh.Signer
		if cd.KeyPassphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(pem, []byte(cd.KeyPassphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(pem)
		}
		if err != nil {
			return nil, fmt.Errorf("parse key file %s: %w", cd.KeyFile, err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	if cd.Password != "" {
		methods = append(methods, ssh.Password(cd.Password))
	}

	if len(methods) == 0 {
		return nil, fmt.Errorf("no credentials for %s", cd)
	}
	return methods, nil
}

func (cd ConnectionDetails) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if cd.KnownHostsFile == "" {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(cd.KnownHostsFile)
	if err != nil {
		return nil, fmt.Errorf("load known hosts: %w", err)
	}
	return callback, nil
}

// clientInfo holds the SFTP client and its last used timestamp
type clientInfo struct {
	client    *sftp.Client
	sshClient *ssh.Client
	lastUsed  time.Time
}

// ManagerConfig holds the configuration for the SFTP manager
type ManagerConfig struct {
	MaxIdleTime     time.Duration
	MaxConnections  int
	CleanupInterval time.Duration
	Logger          *log.Logger
}

// Manager handles SFTP client pooling and lifecycle
type Manager struct {
	clients map[string]*clientInfo
	mu      sync.Mutex
	config  ManagerConfig
	logger  *log.Logger
	done    chan struct{}
	closed  sync.Once
}

// NewManager creates a new Manager with the given configuration
func NewManager(config ManagerConfig) *Manager {
	if config.MaxIdleTime == 0 {
		config.MaxIdleTime = DefaultMaxIdleTime
	}
	if config.MaxConnections == 0 {
		config.MaxConnections = DefaultMaxConnections
	}
	if config.CleanupInterval == 0 {
		config.CleanupInterval = DefaultCleanupInterval
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stderr, "sftp: ", log.LstdFlags)
	}

	m := &Manager{
		clients: make(map[string]*clientInfo),
		config:  config,
		logger:  config.Logger,
		done:    make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// GetGlobalManager returns the global SFTP manager instance, creating it if needed
func GetGlobalManager() *Manager {
	once.Do(func() {
		globalManager = NewManager(ManagerConfig{})
	})
	return globalManager
}

// GetClient is a convenience function that uses the global manager
func GetClient(ctx context.Context, details ConnectionDetails) (*sftp.Client, error) {
	return GetGlobalManager().GetClient(ctx, details)
}

// GetClient returns a pooled SFTP client for the given connection details,
// dialing a new one with retries when none is alive. Callers must not Close
// the returned client; the manager owns it.
func (m *Manager) GetClient(ctx context.Context, details ConnectionDetails) (*sftp.Client, error) {
	details.applyDefaults()
	key := details.String()

	if client, ok := m.getExistingClient(key); ok {
		return client, nil
	}

	m.mu.Lock()
	full := len(m.clients) >= m.config.MaxConnections
	m.mu.Unlock()
	if full {
		return nil, fmt.Errorf("%w (%d)", ErrPoolExhausted, m.config.MaxConnections)
	}

	var err error
	for attempt := 0; attempt <= details.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var client *sftp.Client
		if client, err = m.createNewClient(details); err == nil {
			return client, nil
		}
		m.logger.Printf("connect %s attempt %d failed: %v", key, attempt+1, err)

		if attempt < details.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(details.RetryDelay):
			}
		}
	}
	return nil, fmt.Errorf("failed to create client after %d attempts: %w", details.MaxRetries+1, err)
}

func (m *Manager) getExistingClient(key string) (*sftp.Client, bool) {
	m.mu.Lock()
	info, exists := m.clients[key]
	if exists {
		info.lastUsed = time.Now()
	}
	m.mu.Unlock()

	if !exists {
		return nil, false
	}

	// a cheap round trip tells us whether the session is still alive
	if _, err := info.client.Getwd(); err == nil {
		return info.client, true
	}

	m.mu.Lock()
	if m.clients[key] == info {
		delete(m.clients, key)
	}
	m.mu.Unlock()
	m.closeInfo(key, info)

	return nil, false
}

func (m *Manager) createNewClient(details ConnectionDetails) (*sftp.Client, error) {
	auth, err := details.authMethods()
	if err != nil {
		return nil, err
	}
	hostKeyCallback, err := details.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	sshConfig := &ssh.ClientConfig{
		User:            details.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         details.ConnectTimeout,
	}

	sshClient, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", details.Hostname, details.Port), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	if details.KeepAliveInterval > 0 {
		go m.keepAlive(sshClient, details.KeepAliveInterval)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}

	m.mu.Lock()
	m.clients[details.String()] = &clientInfo{
		client:    sftpClient,
		sshClient: sshClient,
		lastUsed:  time.Now(),
	}
	m.mu.Unlock()

	return sftpClient, nil
}

func (m *Manager) keepAlive(client *ssh.Client, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, _, err := client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				return
			}
		case <-m.done:
			return
		}
	}
}

// cleanup periodically checks for and removes idle connections
func (m *Manager) cleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	idle := make(map[string]*clientInfo)
	for key, info := range m.clients {
		if now.Sub(info.lastUsed) > m.config.MaxIdleTime {
			idle[key] = info
			delete(m.clients, key)
		}
	}
	m.mu.Unlock()

	for key, info := range idle {
		m.closeInfo(key, info)
	}
}

func (m *Manager) closeInfo(key string, info *clientInfo) {
	if err := info.client.Close(); err != nil {
		m.logger.Printf("error closing SFTP client %s: %v", key, err)
	}
	if err := info.sshClient.Close(); err != nil {
		m.logger.Printf("error closing SSH client %s: %v", key, err)
	}
}

// Close closes all connections and stops the cleanup goroutine
func (m *Manager) Close() {
	m.closed.Do(func() { close(m.done) })

	m.mu.Lock()
	clients := m.clients
	m.clients = make(map[string]*clientInfo)
	m.mu.Unlock()

	for key, info := range clients {
		m.closeInfo(key, info)
	}
}

// Stats returns current connection statistics
func (m *Manager) Stats() map[string]time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := make(map[string]time.Time, len(m.clients))
	for key, info := range m.clients {
		stats[key] = info.lastUsed
	}
	return stats
}
