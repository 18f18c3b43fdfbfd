// Package extension is the client of the Keplr compatible wallet bridge.
package extension

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/pkg/errors"

	"github.com/CoreumFoundation/explorer-kit/signer"
)

const (
	enablePath    = "/enable"
	accountsPath  = "/accounts"
	signAminoPath = "/sign-amino"
)

// Config is the wallet bridge client config.
type Config struct {
	URL            string
	RequestTimeout time.Duration
}

// DefaultConfig returns default Config.
func DefaultConfig() Config {
	return Config{
		URL:            "http://localhost:8090",
		RequestTimeout: 2 * time.Minute,
	}
}

type chainRequest struct {
	ChainID string `json:"chainId"`
}

type accountsResponse struct {
	Accounts []signer.AccountData `json:"accounts"`
}

type signAminoRequest struct {
	ChainID string            `json:"chainId"`
	Signer  string            `json:"signer"`
	SignDoc signer.StdSignDoc `json:"signDoc"`
}

var (
	_ signer.Extension          = &Client{}
	_ signer.OfflineAminoSigner = &AminoSigner{}
)

// Client is the wallet bridge client.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient returns new instance of the Client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// Enable asks the wallet to enable the chain. A bridge which can't be reached is reported as
// signer.ErrExtensionNotInstalled.
func (c *Client) Enable(ctx context.Context, chainID string) error {
	if err := c.post(ctx, enablePath, chainRequest{ChainID: chainID}, nil); err != nil {
		if ctx.Err() == nil && isUnreachable(err) {
			return errorsmod.Wrapf(
				signer.ErrExtensionNotInstalled, "wallet bridge is unreachable, url:%s, err:%v", c.cfg.URL, err,
			)
		}
		return errors.Wrapf(err, "failed to enable chain in the wallet, chainID:%s", chainID)
	}

	return nil
}

// OfflineSignerOnlyAmino returns the amino signer of the chain.
func (c *Client) OfflineSignerOnlyAmino(_ context.Context, chainID string) (signer.OfflineAminoSigner, error) {
	return &AminoSigner{
		client:  c,
		chainID: chainID,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody any, res any) error {
	var decoder func([]byte) error
	if res != nil {
		decoder = func(data []byte) error {
			if err := json.Unmarshal(data, res); err != nil {
				return errors.Wrapf(err, "failed to decode response, body:%s", string(data))
			}
			return nil
		}
	}

	return doJSON(ctx, c.httpClient, http.MethodPost, strings.TrimRight(c.cfg.URL, "/")+path, reqBody, decoder)
}

// isUnreachable reports whether the request failed before any response, apart from the timeouts.
func isUnreachable(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) && !urlErr.Timeout()
}

// AminoSigner is the wallet amino signer of the chain.
type AminoSigner struct {
	client  *Client
	chainID string
}

// GetAccounts returns the wallet accounts of the chain.
func (s *AminoSigner) GetAccounts(ctx context.Context) ([]signer.AccountData, error) {
	var res accountsResponse
	if err := s.client.post(ctx, accountsPath, chainRequest{ChainID: s.chainID}, &res); err != nil {
		return nil, errors.Wrapf(err, "failed to get wallet accounts, chainID:%s", s.chainID)
	}

	return res.Accounts, nil
}

// SignAmino asks the wallet to sign the sign doc.
func (s *AminoSigner) SignAmino(
	ctx context.Context,
	signerAddress string,
	signDoc signer.StdSignDoc,
) (signer.AminoSignResponse, error) {
	var res signer.AminoSignResponse
	if err := s.client.post(ctx, signAminoPath, signAminoRequest{
		ChainID: s.chainID,
		Signer:  signerAddress,
		SignDoc: signDoc,
	}, &res); err != nil {
		return signer.AminoSignResponse{}, errors.Wrapf(
			err, "failed to sign with the wallet, chainID:%s, signer:%s", s.chainID, signerAddress,
		)
	}

	return res, nil
}
