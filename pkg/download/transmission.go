package download

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	nhttp "github.com/kasuboski/nyaaz/pkg/http"
	"github.com/kasuboski/nyaaz/pkg/logger"
)

type TransmissionClient struct {
	http    nhttp.HTTPClient
	url     *url.URL
	mutex   *sync.Mutex
	session string
}

type TransmissionRequest struct {
	Arguments any           `json:"arguments"`
	Tag       *int          `json:"tag,omitempty"`
	Method    torrentMethod `json:"method"`
}

type torrentMethod string

const (
	AddTorrentMethod torrentMethod = "torrent-add"

	rpcPath       = "/transmission/rpc"
	sessionHeader = "X-Transmission-Session-Id"
)

// NewTransmissionClient creates a client for the transmission server at uri.
// The rpc path is added when uri does not already end with it.
func NewTransmissionClient(http nhttp.HTTPClient, uri string) (*TransmissionClient, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid transmission uri %q: %w", uri, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid transmission uri %q: scheme and host are required", uri)
	}

	if !strings.HasSuffix(u.Path, rpcPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + rpcPath
	}

	return &TransmissionClient{
		http:  http,
		url:   u,
		mutex: new(sync.Mutex),
	}, nil
}

type AddTorrentPayload struct {
	DownloadDir string `json:"download-dir,omitempty"`
	Filename    string `json:"filename"`
}

// AddTorrentResponse represents a response from a torrent-add rpc call
type AddTorrentResponse struct {
	Result    string                      `json:"result"`
	Arguments AddTorrentResponseArguments `json:"arguments"`
}

// AddTorrentResponseArguments contains the details about the added torrent.
// Only one of the fields is set.
type AddTorrentResponseArguments struct {
	TorrentAdded     *AddedTorrent `json:"torrent-added,omitempty"`
	TorrentDuplicate *AddedTorrent `json:"torrent-duplicate,omitempty"`
}

// Add submits a magnet link or torrent url
func (c *TransmissionClient) Add(ctx context.Context, request AddRequest) (*AddedTorrent, error) {
	log := logger.FromCtx(ctx)

	if request.URI == "" {
		return nil, errors.New("torrent uri is empty")
	}

	transmissionRequest := &TransmissionRequest{
		Method: AddTorrentMethod,
		Arguments: AddTorrentPayload{
			DownloadDir: request.DownloadDir,
			Filename:    request.URI,
		},
	}

	b, err := json.Marshal(transmissionRequest)
	if err != nil {
		return nil, err
	}

	b, err = c.do(ctx, b)
	if err != nil {
		return nil, err
	}

	var response AddTorrentResponse
	err = json.Unmarshal(b, &response)
	if err != nil {
		return nil, err
	}

	if response.Result != "success" {
		return nil, fmt.Errorf("unexpected result: %v", response.Result)
	}

	switch {
	case response.Arguments.TorrentAdded != nil:
		log.Debugw("added torrent", "id", response.Arguments.TorrentAdded.ID, "name", response.Arguments.TorrentAdded.Name)
		return response.Arguments.TorrentAdded, nil
	case response.Arguments.TorrentDuplicate != nil:
		added := response.Arguments.TorrentDuplicate
		added.Duplicate = true
		log.Debugw("torrent already added", "id", added.ID, "name", added.Name)
		return added, nil
	default:
		return nil, errors.New("response did not describe the torrent")
	}
}

func (c *TransmissionClient) do(ctx context.Context, body []byte, retry ...bool) ([]byte, error) {
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url.String(), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, c.getSessionID())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	// need to get a new session id from the response if 409
	case http.StatusConflict:
		// only one new session per request
		if len(retry) != 0 && retry[0] {
			return nil, errors.New("session id is invalid after retry")
		}

		session := resp.Header.Get(sessionHeader)
		if session == "" {
			return nil, errors.New("session id is empty")
		}

		c.setSessionID(session)
		return c.do(ctx, body, true)

	case http.StatusOK:
		return io.ReadAll(resp.Body)

	default:
		return nil, fmt.Errorf("unexpected status code: %v", resp.Status)
	}
}

func (c *TransmissionClient) setSessionID(id string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.session = id
}

func (c *TransmissionClient) getSessionID() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.session
}
