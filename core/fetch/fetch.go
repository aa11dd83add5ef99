// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fetch pulls deck files from a remote host over SFTP so kiosks can
// sync their content from a central share. Authentication prefers an
// explicit identity file and falls back to a running SSH agent.
package fetch

import (
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"github.com/showreelio/showreel/logging"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Spec is a parsed remote location of the form user@host:path.
// The port may be given as user@host:port:path or host:path (user defaults
// to the current user at the call site).
type Spec struct {
	User string
	Host string
	Path string
}

// ParseSpec splits a user@host:path string into its parts.
func ParseSpec(s string) (Spec, error) {
	var spec Spec
	rest := s
	if at := strings.Index(rest, "@"); at >= 0 {
		spec.User = rest[:at]
		rest = rest[at+1:]
	}
	colon := strings.Index(rest, ":")
	if colon <= 0 || colon == len(rest)-1 {
		return Spec{}, fmt.Errorf("invalid remote spec %q, want user@host:path", s)
	}
	spec.Host = rest[:colon]
	spec.Path = rest[colon+1:]
	if spec.User == "" {
		return Spec{}, fmt.Errorf("invalid remote spec %q, missing user", s)
	}
	return spec, nil
}

// Fetcher holds an open SSH and SFTP session to a remote deck source.
type Fetcher struct {
	client *ssh.Client
	sftp   *sftp.Client
}

// Options controls how Connect authenticates and verifies the remote host.
type Options struct {
	// IdentityFile is the path to a private key. Optional; the SSH agent
	// is used as a fallback or when no key is given.
	IdentityFile string
	// KnownHostsFile verifies the remote host key. Defaults to the user's
	// ~/.ssh/known_hosts when empty.
	KnownHostsFile string
	Timeout        time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return 10 * time.Second
	}
	return o.Timeout
}

func (o Options) hostKeyCallback() (ssh.HostKeyCallback, error) {
	khPath := o.KnownHostsFile
	if khPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory for known_hosts: %w", err)
		}
		khPath = filepath.Join(home, ".ssh", "known_hosts")
	}
	cb, err := knownhosts.New(khPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load known_hosts %s: %w", khPath, err)
	}
	return cb, nil
}

// Connect opens an SSH connection to the host named in spec and starts an
// SFTP session on it. An identity file is tried first; on authentication
// failure the SSH agent is used as a fallback.
func Connect(spec Spec, opts Options) (*Fetcher, error) {
	hostKeyCallback, err := opts.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	// Add port 22 if not specified.
	addr := spec.Host
	if _, _, err := net.SplitHostPort(spec.Host); err != nil {
		addr = net.JoinHostPort(spec.Host, "22")
	}

	var finalErr error

	if opts.IdentityFile != "" {
		keyBytes, err := os.ReadFile(opts.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read identity file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse private key: %w", err)
		}

		config := &ssh.ClientConfig{
			User:            spec.User,
			Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
			HostKeyCallback: hostKeyCallback,
			Timeout:         opts.timeout(),
		}

		client, err := ssh.Dial("tcp", addr, config)
		if err == nil {
			return newFetcher(client)
		}
		// Anything other than an auth failure will not be fixed by
		// retrying with the agent.
		if !strings.Contains(err.Error(), "unable to authenticate") {
			return nil, fmt.Errorf("connection with identity file failed: %w", err)
		}
		finalErr = err
	}

	agentClient := getSSHAgent()
	if agentClient == nil {
		if finalErr != nil {
			return nil, fmt.Errorf("identity file authentication failed, and no SSH agent available for fallback: %w", finalErr)
		}
		return nil, fmt.Errorf("no authentication method available (no identity file given and no ssh agent found)")
	}

	config := &ssh.ClientConfig{
		User:            spec.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeysCallback(agentClient.Signers)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         opts.timeout(),
	}

	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("connection with ssh agent failed: %w", err)
	}
	return newFetcher(client)
}

func newFetcher(client *ssh.Client) (*Fetcher, error) {
	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create sftp client: %w", err)
	}
	return &Fetcher{client: client, sftp: sftpClient}, nil
}

// Pull downloads deck files from the remote path into destDir and returns
// the local paths written. A remote directory is scanned for *.yaml and
// *.yml files; a remote file is downloaded as-is.
func (f *Fetcher) Pull(remotePath, destDir string) ([]string, error) {
	info, err := f.sftp.Stat(remotePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote path %s: %w", remotePath, err)
	}

	var remotes []string
	if info.IsDir() {
		entries, err := f.sftp.ReadDir(remotePath)
		if err != nil {
			return nil, fmt.Errorf("failed to list remote directory %s: %w", remotePath, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(path.Ext(e.Name()))
			if ext == ".yaml" || ext == ".yml" {
				remotes = append(remotes, path.Join(remotePath, e.Name()))
			}
		}
	} else {
		remotes = []string{remotePath}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	var written []string
	for _, remote := range remotes {
		local := filepath.Join(destDir, path.Base(remote))
		if err := f.pullFile(remote, local); err != nil {
			return written, err
		}
		logging.Debugf("fetched %s -> %s", remote, local)
		written = append(written, local)
	}
	return written, nil
}

// pullFile downloads one remote file, writing through a temporary file so a
// broken transfer never clobbers a good local deck.
func (f *Fetcher) pullFile(remote, local string) error {
	src, err := f.sftp.Open(remote)
	if err != nil {
		return fmt.Errorf("failed to open remote file %s: %w", remote, err)
	}
	defer src.Close()

	tmp := local + ".part"
	dst, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to download %s: %w", remote, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, local); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", local, err)
	}
	return nil
}

// Close closes the underlying SSH and SFTP clients.
func (f *Fetcher) Close() {
	if f.sftp != nil {
		f.sftp.Close()
	}
	if f.client != nil {
		f.client.Close()
	}
}
